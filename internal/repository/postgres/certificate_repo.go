package postgres

import (
	"context"
	"errors"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type certificateRepo struct {
	db *pgxpool.Pool
}

func NewCertificateRepository(db *pgxpool.Pool) domain.CertificateRepository {
	return &certificateRepo{db: db}
}

const certificateColumns = `id, user_id, certificate_type, certificate_name, issuer, issued_date, expires_date, created_at, updated_at`

func (r *certificateRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	query := `INSERT INTO certificates (` + certificateColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		cert.ID, cert.UserID, cert.CertificateType, cert.CertificateName,
		cert.Issuer, cert.IssuedDate, cert.ExpiresDate, cert.CreatedAt, cert.UpdatedAt,
	)
	return err
}

func (r *certificateRepo) GetByID(ctx context.Context, id string) (*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE id = $1`
	var cert domain.Certificate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cert.ID, &cert.UserID, &cert.CertificateType, &cert.CertificateName,
		&cert.Issuer, &cert.IssuedDate, &cert.ExpiresDate, &cert.CreatedAt, &cert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

func (r *certificateRepo) ListByUser(ctx context.Context, userID string) ([]domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE user_id = $1 ORDER BY issued_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []domain.Certificate
	for rows.Next() {
		var cert domain.Certificate
		if err := rows.Scan(
			&cert.ID, &cert.UserID, &cert.CertificateType, &cert.CertificateName,
			&cert.Issuer, &cert.IssuedDate, &cert.ExpiresDate, &cert.CreatedAt, &cert.UpdatedAt,
		); err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	return certs, rows.Err()
}

func (r *certificateRepo) Update(ctx context.Context, cert *domain.Certificate) error {
	query := `UPDATE certificates
              SET certificate_type = $2, certificate_name = $3, issuer = $4, issued_date = $5, expires_date = $6, updated_at = $7
              WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		cert.ID, cert.CertificateType, cert.CertificateName, cert.Issuer,
		cert.IssuedDate, cert.ExpiresDate, cert.UpdatedAt,
	)
	return err
}

func (r *certificateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	return err
}
