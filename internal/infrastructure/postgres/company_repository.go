package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = accountColumns + `, username, company_code, industry, description, website, address, plan, max_employees`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	accountTable
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{accountTable{q: q, name: "companies"}}
}

func companyDest(c *entity.Company) []any {
	return append(accountDest(&c.Account),
		&c.Username, &c.CompanyCode, &c.Industry, &c.Description, &c.Website, &c.Address, &c.Plan, &c.MaxEmployees)
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	args := append(accountArgs(&c.Account),
		c.Username, c.CompanyCode, c.Industry, c.Description, c.Website, c.Address, c.Plan, c.MaxEmployees)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	if err := r.q.QueryRow(ctx, query, id).Scan(companyDest(&c)...); err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return &c, nil
}

// Update actualiza el perfil (no toca plan, estado ni credenciales).
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET full_name = $2, phone = $3, username = $4, industry = $5,
			description = $6, website = $7, address = $8, updated_at = $9
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update company", query,
		c.ID, c.FullName, c.Phone, c.Username, c.Industry, c.Description, c.Website, c.Address, c.UpdatedAt)
}

// List devuelve una página ordenada por fecha de creación.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(companyDest(&c)...); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CompanyRepo) Count(ctx context.Context) (int, error) {
	return r.count(ctx, "")
}

func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *CompanyRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.updateStatus(ctx, id, status)
}

// UpdatePlan cambia plan y cupo de empleados.
func (r *CompanyRepo) UpdatePlan(ctx context.Context, id, plan string, maxEmployees int) error {
	query := `UPDATE companies SET plan = $2, max_employees = $3, updated_at = NOW() WHERE id = $1`
	return execAffecting(ctx, r.q, "update plan", query, id, plan, maxEmployees)
}
