package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// Columnas comunes a las cuatro tablas de cuentas, en el orden de accountDest.
const accountColumns = `id, email, password_hash, full_name, phone, role, account_type, status, is_verified, last_login, created_at, updated_at`

func accountDest(a *entity.Account) []any {
	return []any{
		&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.Phone, &a.Role, &a.AccountType,
		&a.Status, &a.IsVerified, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt,
	}
}

func accountArgs(a *entity.Account) []any {
	return []any{
		a.ID, a.Email, a.PasswordHash, a.FullName, a.Phone, a.Role, a.AccountType,
		a.Status, a.IsVerified, a.LastLogin, a.CreatedAt, a.UpdatedAt,
	}
}

// accountTable implementa repository.AccountRepository sobre una tabla concreta.
// name nunca viene del usuario.
type accountTable struct {
	q    Querier
	name string
}

func (t accountTable) findAccount(ctx context.Context, op, where string, arg any) (*entity.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, accountColumns, t.name, where)
	var a entity.Account
	if err := t.q.QueryRow(ctx, query, arg).Scan(accountDest(&a)...); err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s: %w", op, t.name, err)
	}
	return &a, nil
}

func (t accountTable) FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return t.findAccount(ctx, "find account by email", "email", email)
}

func (t accountTable) FindAccountByID(ctx context.Context, id string) (*entity.Account, error) {
	return t.findAccount(ctx, "find account by id", "id", id)
}

func (t accountTable) UpdatePassword(ctx context.Context, id, hash string) error {
	query := fmt.Sprintf(`UPDATE %s SET password_hash = $2, updated_at = NOW() WHERE id = $1`, t.name)
	return execAffecting(ctx, t.q, "update password", query, id, hash)
}

func (t accountTable) MarkVerified(ctx context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET is_verified = TRUE, updated_at = NOW() WHERE id = $1`, t.name)
	return execAffecting(ctx, t.q, "mark verified", query, id)
}

func (t accountTable) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET last_login = $2 WHERE id = $1`, t.name)
	return execAffecting(ctx, t.q, "touch last login", query, id, at)
}

func (t accountTable) count(ctx context.Context, where string, args ...any) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, t.name, where)
	var n int
	if err := t.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		if isInvalidID(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

func (t accountTable) updateStatus(ctx context.Context, id, status string) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $2, updated_at = NOW() WHERE id = $1`, t.name)
	return execAffecting(ctx, t.q, "update status", query, id, status)
}

func (t accountTable) delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name)
	return execAffecting(ctx, t.q, "delete", query, id)
}
