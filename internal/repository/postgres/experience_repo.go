package postgres

import (
	"context"
	"errors"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceColumns = `id, user_id, company_name, job_title, start_date, end_date, description, created_at, updated_at`

func (r *experienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	query := `INSERT INTO experiences (` + experienceColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		exp.ID, exp.UserID, exp.CompanyName, exp.JobTitle,
		exp.StartDate, exp.EndDate, exp.Description, exp.CreatedAt, exp.UpdatedAt,
	)
	return err
}

func (r *experienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	var exp domain.Experience
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exp.ID, &exp.UserID, &exp.CompanyName, &exp.JobTitle,
		&exp.StartDate, &exp.EndDate, &exp.Description, &exp.CreatedAt, &exp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &exp, nil
}

func (r *experienceRepo) ListByUser(ctx context.Context, userID string) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE user_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exps []domain.Experience
	for rows.Next() {
		var exp domain.Experience
		if err := rows.Scan(
			&exp.ID, &exp.UserID, &exp.CompanyName, &exp.JobTitle,
			&exp.StartDate, &exp.EndDate, &exp.Description, &exp.CreatedAt, &exp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		exps = append(exps, exp)
	}
	return exps, rows.Err()
}

func (r *experienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	query := `UPDATE experiences
              SET company_name = $2, job_title = $3, start_date = $4, end_date = $5, description = $6, updated_at = $7
              WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		exp.ID, exp.CompanyName, exp.JobTitle, exp.StartDate, exp.EndDate, exp.Description, exp.UpdatedAt,
	)
	return err
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	return err
}
