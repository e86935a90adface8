package repository

import (
	"context"

	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	AccountRepository
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Count(ctx context.Context) (int, error)
	// Delete, UpdateStatus y UpdatePlan devuelven domain.ErrNotFound si no afectan filas.
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePlan(ctx context.Context, id, plan string, maxEmployees int) error
}
