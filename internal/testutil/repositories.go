package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/lms-api/internal/application/ports"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
)

var (
	_ repository.AdminRepository      = (*AdminRepo)(nil)
	_ repository.CompanyRepository    = (*CompanyRepo)(nil)
	_ repository.EmployeeRepository   = (*EmployeeRepo)(nil)
	_ repository.IndividualRepository = (*IndividualRepo)(nil)
	_ ports.ProvisioningTx            = (*TxRunner)(nil)
)

// table tabla en memoria de una variante de cuenta; conserva el orden de inserción.
type table[T any] struct {
	mu      sync.RWMutex
	rows    map[string]*T
	order   []string
	account func(*T) *entity.Account
}

func newTable[T any](account func(*T) *entity.Account) *table[T] {
	return &table[T]{rows: make(map[string]*T), account: account}
}

func (t *table[T]) insert(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	acc := t.account(row)
	for _, r := range t.rows {
		if t.account(r).Email == acc.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *row
	t.rows[acc.ID] = &cp
	t.order = append(t.order, acc.ID)
	return nil
}

func (t *table[T]) get(id string) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.rows[id]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

func (t *table[T]) replace(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.account(row).ID
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	cp := *row
	t.rows[id] = &cp
	return nil
}

func (t *table[T]) mutate(id string, fn func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	fn(r)
	return nil
}

func (t *table[T]) remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// filter devuelve copias en orden de inserción de las filas que cumplen keep.
func (t *table[T]) filter(keep func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		r := t.rows[id]
		if keep == nil || keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out
}

func page[T any](rows []*T, limit, offset int) []*T {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func (t *table[T]) FindAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	rows := t.filter(func(r *T) bool { return t.account(r).Email == email })
	if len(rows) == 0 {
		return nil, nil
	}
	return t.account(rows[0]), nil
}

func (t *table[T]) FindAccountByID(_ context.Context, id string) (*entity.Account, error) {
	r := t.get(id)
	if r == nil {
		return nil, nil
	}
	return t.account(r), nil
}

func (t *table[T]) UpdatePassword(_ context.Context, id, hash string) error {
	return t.mutate(id, func(r *T) { t.account(r).PasswordHash = hash })
}

func (t *table[T]) MarkVerified(_ context.Context, id string) error {
	return t.mutate(id, func(r *T) { t.account(r).IsVerified = true })
}

func (t *table[T]) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	return t.mutate(id, func(r *T) { t.account(r).LastLogin = &at })
}

// ──────────────────────────────────────────────────────────────────────────────
// Variantes
// ──────────────────────────────────────────────────────────────────────────────

// AdminRepo repositorio de admins en memoria.
type AdminRepo struct{ *table[entity.Admin] }

func NewAdminRepo() *AdminRepo {
	return &AdminRepo{newTable(func(a *entity.Admin) *entity.Account { return &a.Account })}
}

func (r *AdminRepo) Create(_ context.Context, a *entity.Admin) error { return r.insert(a) }
func (r *AdminRepo) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	return r.get(id), nil
}
func (r *AdminRepo) Update(_ context.Context, a *entity.Admin) error { return r.replace(a) }

// CompanyRepo repositorio de empresas en memoria. Con Employees definido, Delete respeta
// la foreign key de employees.company_id igual que Postgres.
type CompanyRepo struct {
	*table[entity.Company]
	Employees *EmployeeRepo
}

func NewCompanyRepo() *CompanyRepo {
	return &CompanyRepo{table: newTable(func(c *entity.Company) *entity.Account { return &c.Account })}
}

func (r *CompanyRepo) Create(_ context.Context, c *entity.Company) error { return r.insert(c) }
func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.get(id), nil
}
func (r *CompanyRepo) Update(_ context.Context, c *entity.Company) error { return r.replace(c) }
func (r *CompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	return page(r.filter(nil), limit, offset), nil
}
func (r *CompanyRepo) Count(_ context.Context) (int, error) { return len(r.filter(nil)), nil }
func (r *CompanyRepo) Delete(_ context.Context, id string) error {
	if r.Employees != nil && len(r.Employees.filter(inCompany(id))) > 0 {
		return domain.ErrConflict
	}
	return r.remove(id)
}
func (r *CompanyRepo) UpdateStatus(_ context.Context, id, status string) error {
	return r.mutate(id, func(c *entity.Company) { c.Status = status })
}
func (r *CompanyRepo) UpdatePlan(_ context.Context, id, plan string, maxEmployees int) error {
	return r.mutate(id, func(c *entity.Company) {
		c.Plan = plan
		c.MaxEmployees = maxEmployees
	})
}

// EmployeeRepo repositorio de empleados en memoria.
type EmployeeRepo struct{ *table[entity.Employee] }

func NewEmployeeRepo() *EmployeeRepo {
	return &EmployeeRepo{newTable(func(e *entity.Employee) *entity.Account { return &e.Account })}
}

func inCompany(companyID string) func(*entity.Employee) bool {
	return func(e *entity.Employee) bool { return companyID == "" || e.CompanyID == companyID }
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error { return r.insert(e) }
func (r *EmployeeRepo) GetByID(_ context.Context, id, companyID string) (*entity.Employee, error) {
	e := r.get(id)
	if e == nil || !inCompany(companyID)(e) {
		return nil, nil
	}
	return e, nil
}
func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error { return r.replace(e) }
func (r *EmployeeRepo) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	return page(r.filter(inCompany(companyID)), limit, offset), nil
}
func (r *EmployeeRepo) Count(_ context.Context, companyID string) (int, error) {
	return len(r.filter(inCompany(companyID))), nil
}
func (r *EmployeeRepo) Delete(_ context.Context, id, companyID string) error {
	if e := r.get(id); e == nil || !inCompany(companyID)(e) {
		return domain.ErrNotFound
	}
	return r.remove(id)
}
func (r *EmployeeRepo) UpdateStatus(_ context.Context, id, companyID, status string) error {
	if e := r.get(id); e == nil || !inCompany(companyID)(e) {
		return domain.ErrNotFound
	}
	return r.mutate(id, func(e *entity.Employee) { e.Status = status })
}

// IndividualRepo repositorio de individuals en memoria.
type IndividualRepo struct{ *table[entity.Individual] }

func NewIndividualRepo() *IndividualRepo {
	return &IndividualRepo{newTable(func(i *entity.Individual) *entity.Account { return &i.Account })}
}

func (r *IndividualRepo) Create(_ context.Context, i *entity.Individual) error { return r.insert(i) }
func (r *IndividualRepo) GetByID(_ context.Context, id string) (*entity.Individual, error) {
	return r.get(id), nil
}
func (r *IndividualRepo) Update(_ context.Context, i *entity.Individual) error { return r.replace(i) }
func (r *IndividualRepo) List(_ context.Context, limit, offset int) ([]*entity.Individual, error) {
	return page(r.filter(nil), limit, offset), nil
}
func (r *IndividualRepo) Count(_ context.Context) (int, error)      { return len(r.filter(nil)), nil }
func (r *IndividualRepo) Delete(_ context.Context, id string) error { return r.remove(id) }
func (r *IndividualRepo) UpdateStatus(_ context.Context, id, status string) error {
	return r.mutate(id, func(i *entity.Individual) { i.Status = status })
}

// TxRunner implementación en memoria de ports.ProvisioningTx: serializa las llamadas con un mutex.
type TxRunner struct {
	mu    sync.Mutex
	repos Repos
	Calls int
}

func NewTxRunner(repos Repos) *TxRunner { return &TxRunner{repos: repos} }

func (r *TxRunner) WithCompanyLock(ctx context.Context, companyID string, fn func(repository.CompanyRepository, repository.EmployeeRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if c, _ := r.repos.Companies.GetByID(ctx, companyID); c == nil {
		return domain.ErrNotFound
	}
	return fn(r.repos.Companies, r.repos.Employees)
}
