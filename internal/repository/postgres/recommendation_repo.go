package postgres

import (
	"context"
	"errors"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recommendationRepo struct {
	db *pgxpool.Pool
}

func NewRecommendationRepository(db *pgxpool.Pool) domain.RecommendationRepository {
	return &recommendationRepo{db: db}
}

const recommendationColumns = `id, talent_id, contractor_id, contractor_name, message, status, last_modified_date`

func (r *recommendationRepo) Create(ctx context.Context, rec *domain.Recommendation) error {
	query := `INSERT INTO recommendations (` + recommendationColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.TalentID, rec.ContractorID, rec.ContractorName,
		rec.Message, rec.Status, rec.LastModifiedDate,
	)
	return err
}

func (r *recommendationRepo) GetByID(ctx context.Context, id string) (*domain.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE id = $1`
	var rec domain.Recommendation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.TalentID, &rec.ContractorID, &rec.ContractorName,
		&rec.Message, &rec.Status, &rec.LastModifiedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepo) ListByTalent(ctx context.Context, talentID string) ([]domain.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE talent_id = $1`
	return r.list(ctx, query, talentID)
}

func (r *recommendationRepo) ListByTalentAndStatus(ctx context.Context, talentID string, status domain.RecommendationStatus) ([]domain.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE talent_id = $1 AND status = $2`
	return r.list(ctx, query, talentID, status)
}

func (r *recommendationRepo) list(ctx context.Context, query string, args ...any) ([]domain.Recommendation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.Recommendation
	for rows.Next() {
		var rec domain.Recommendation
		if err := rows.Scan(
			&rec.ID, &rec.TalentID, &rec.ContractorID, &rec.ContractorName,
			&rec.Message, &rec.Status, &rec.LastModifiedDate,
		); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *recommendationRepo) Update(ctx context.Context, rec *domain.Recommendation) error {
	query := `UPDATE recommendations
              SET contractor_id = $2, contractor_name = $3, message = $4, status = $5, last_modified_date = $6
              WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.ContractorID, rec.ContractorName, rec.Message, rec.Status, rec.LastModifiedDate,
	)
	return err
}

func (r *recommendationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM recommendations WHERE id = $1`, id)
	return err
}
