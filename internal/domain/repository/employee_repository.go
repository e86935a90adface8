package repository

import (
	"context"

	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
// companyID vacío significa "cualquier empresa" (rutas de admin y perfil propio);
// con valor, toda lectura y mutación se filtra por esa empresa.
type EmployeeRepository interface {
	AccountRepository
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id, companyID string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error)
	Count(ctx context.Context, companyID string) (int, error)
	Delete(ctx context.Context, id, companyID string) error
	UpdateStatus(ctx context.Context, id, companyID, status string) error
}
