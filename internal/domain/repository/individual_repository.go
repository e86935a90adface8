package repository

import (
	"context"

	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// IndividualRepository define el puerto de persistencia para Individual.
type IndividualRepository interface {
	AccountRepository
	Create(ctx context.Context, individual *entity.Individual) error
	GetByID(ctx context.Context, id string) (*entity.Individual, error)
	Update(ctx context.Context, individual *entity.Individual) error
	List(ctx context.Context, limit, offset int) ([]*entity.Individual, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
}
