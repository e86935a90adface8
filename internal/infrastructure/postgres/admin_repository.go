package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	accountTable
}

// NewAdminRepository construye el adaptador de persistencia para admins. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{accountTable{q: q, name: "admins"}}
}

// Create persiste un nuevo admin.
func (r *AdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	query := `
		INSERT INTO admins (` + accountColumns + `, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	args := append(accountArgs(&a.Account), a.Address)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID obtiene un admin por ID; (nil, nil) si no existe.
func (r *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	query := `SELECT ` + accountColumns + `, address FROM admins WHERE id = $1`
	var a entity.Admin
	dest := append(accountDest(&a.Account), &a.Address)
	if err := r.q.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by id: %w", err)
	}
	return &a, nil
}

// Update actualiza los datos de perfil.
func (r *AdminRepo) Update(ctx context.Context, a *entity.Admin) error {
	query := `
		UPDATE admins SET full_name = $2, phone = $3, address = $4, updated_at = $5
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update admin", query,
		a.ID, a.FullName, a.Phone, a.Address, a.UpdatedAt)
}
