package repository

import (
	"context"

	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
type AdminRepository interface {
	AccountRepository
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	Update(ctx context.Context, admin *entity.Admin) error
}
