package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
)

var _ repository.IndividualRepository = (*IndividualRepo)(nil)

const individualColumns = accountColumns + `, job_title, institute, course, gender, date_of_birth, address, description`

// IndividualRepo implementación del puerto IndividualRepository sobre PostgreSQL.
type IndividualRepo struct {
	accountTable
}

// NewIndividualRepository construye el adaptador de persistencia para individuals. Pasar pool o tx (Querier).
func NewIndividualRepository(q Querier) *IndividualRepo {
	return &IndividualRepo{accountTable{q: q, name: "individuals"}}
}

func individualDest(i *entity.Individual) []any {
	return append(accountDest(&i.Account),
		&i.JobTitle, &i.Institute, &i.Course, &i.Gender, &i.DateOfBirth, &i.Address, &i.Description)
}

func (r *IndividualRepo) Create(ctx context.Context, i *entity.Individual) error {
	query := `
		INSERT INTO individuals (` + individualColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	args := append(accountArgs(&i.Account),
		i.JobTitle, i.Institute, i.Course, i.Gender, i.DateOfBirth, i.Address, i.Description)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert individual: %w", err)
	}
	return nil
}

func (r *IndividualRepo) GetByID(ctx context.Context, id string) (*entity.Individual, error) {
	query := `SELECT ` + individualColumns + ` FROM individuals WHERE id = $1`
	var i entity.Individual
	if err := r.q.QueryRow(ctx, query, id).Scan(individualDest(&i)...); err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get individual by id: %w", err)
	}
	return &i, nil
}

func (r *IndividualRepo) Update(ctx context.Context, i *entity.Individual) error {
	query := `
		UPDATE individuals SET full_name = $2, phone = $3, job_title = $4, institute = $5, course = $6,
			gender = $7, date_of_birth = $8, address = $9, description = $10, updated_at = $11
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update individual", query,
		i.ID, i.FullName, i.Phone, i.JobTitle, i.Institute, i.Course, i.Gender, i.DateOfBirth, i.Address, i.Description, i.UpdatedAt)
}

func (r *IndividualRepo) List(ctx context.Context, limit, offset int) ([]*entity.Individual, error) {
	query := `SELECT ` + individualColumns + ` FROM individuals ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list individuals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Individual
	for rows.Next() {
		var i entity.Individual
		if err := rows.Scan(individualDest(&i)...); err != nil {
			return nil, fmt.Errorf("scan individual: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

func (r *IndividualRepo) Count(ctx context.Context) (int, error) {
	return r.count(ctx, "")
}

func (r *IndividualRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *IndividualRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.updateStatus(ctx, id, status)
}
