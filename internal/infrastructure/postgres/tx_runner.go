package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/lms-api/internal/application/ports"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/repository"
)

var _ ports.ProvisioningTx = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// WithCompanyLock inicia una transacción, bloquea la fila de la empresa (FOR UPDATE) y ejecuta fn
// con repos atados a la tx. Las altas concurrentes de una misma empresa quedan serializadas.
func (r *TxRunner) WithCompanyLock(ctx context.Context, companyID string, fn func(
	companies repository.CompanyRepository,
	employees repository.EmployeeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	if err := tx.QueryRow(ctx, `SELECT id FROM companies WHERE id = $1 FOR UPDATE`, companyID).Scan(&id); err != nil {
		if isMissing(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock company: %w", err)
	}

	if err := fn(NewCompanyRepository(tx), NewEmployeeRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
