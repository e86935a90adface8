package repository

import (
	"context"
	"time"

	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// AccountRepository capacidad común a las cuatro tablas de cuentas; la usa el resolver de login
// y los flujos de contraseña/verificación sin conocer la variante concreta.
// Los Find* devuelven (nil, nil) si no existe la fila.
type AccountRepository interface {
	FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindAccountByID(ctx context.Context, id string) (*entity.Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	MarkVerified(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
