package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = accountColumns + `, company_id, emp_id, department, job_title, gender, date_of_birth, address, description`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// Un companyID vacío no filtra por empresa (vista de admin).
type EmployeeRepo struct {
	accountTable
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{accountTable{q: q, name: "employees"}}
}

func employeeDest(e *entity.Employee) []any {
	return append(accountDest(&e.Account),
		&e.CompanyID, &e.EmpID, &e.Department, &e.JobTitle, &e.Gender, &e.DateOfBirth, &e.Address, &e.Description)
}

// scopeByCompany agrega el filtro de empresa como siguiente placeholder.
func scopeByCompany(where string, args []any, companyID string) (string, []any) {
	if companyID == "" {
		return where, args
	}
	args = append(args, companyID)
	return where + " AND company_id = $" + strconv.Itoa(len(args)), args
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	args := append(accountArgs(&e.Account),
		e.CompanyID, e.EmpID, e.Department, e.JobTitle, e.Gender, e.DateOfBirth, e.Address, e.Description)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado; (nil, nil) si no existe o pertenece a otra empresa.
func (r *EmployeeRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Employee, error) {
	where, args := scopeByCompany("WHERE id = $1", []any{id}, companyID)
	query := `SELECT ` + employeeColumns + ` FROM employees ` + where
	var e entity.Employee
	if err := r.q.QueryRow(ctx, query, args...).Scan(employeeDest(&e)...); err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return &e, nil
}

// Update actualiza el perfil; company_id no cambia.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET full_name = $2, phone = $3, department = $4, job_title = $5,
			gender = $6, date_of_birth = $7, address = $8, description = $9, updated_at = $10
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update employee", query,
		e.ID, e.FullName, e.Phone, e.Department, e.JobTitle, e.Gender, e.DateOfBirth, e.Address, e.Description, e.UpdatedAt)
}

// List devuelve una página de empleados ordenada por fecha de creación.
func (r *EmployeeRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	where, args := scopeByCompany("WHERE TRUE", nil, companyID)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM employees %s ORDER BY created_at, id LIMIT $%d OFFSET $%d`,
		employeeColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(employeeDest(&e)...); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil && !isInvalidID(err) {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return list, nil
}

func (r *EmployeeRepo) Count(ctx context.Context, companyID string) (int, error) {
	where, args := scopeByCompany("WHERE TRUE", nil, companyID)
	return r.count(ctx, where, args...)
}

func (r *EmployeeRepo) Delete(ctx context.Context, id, companyID string) error {
	where, args := scopeByCompany("WHERE id = $1", []any{id}, companyID)
	return execAffecting(ctx, r.q, "delete employee", `DELETE FROM employees `+where, args...)
}

func (r *EmployeeRepo) UpdateStatus(ctx context.Context, id, companyID, status string) error {
	where, args := scopeByCompany("WHERE id = $1", []any{id, status}, companyID)
	query := `UPDATE employees SET status = $2, updated_at = NOW() ` + where
	return execAffecting(ctx, r.q, "update employee status", query, args...)
}
