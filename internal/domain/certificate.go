package domain

import (
	"context"
	"time"
)

// Certificate is a certification entry owned by a user.
type Certificate struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id" validate:"required"`
	CertificateType string     `json:"certificate_type" validate:"required,max=100"`
	CertificateName string     `json:"certificate_name" validate:"required,max=200"`
	Issuer          string     `json:"issuer,omitempty" validate:"max=200"`
	IssuedDate      time.Time  `json:"issued_date" validate:"required"`
	ExpiresDate     *time.Time `json:"expires_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CertificateRepository interface {
	Create(ctx context.Context, cert *Certificate) error
	GetByID(ctx context.Context, id string) (*Certificate, error)
	ListByUser(ctx context.Context, userID string) ([]Certificate, error)
	Update(ctx context.Context, cert *Certificate) error
	Delete(ctx context.Context, id string) error
}

type CertificateUsecase interface {
	Create(ctx context.Context, actingPrincipalID string, cert *Certificate) (*Certificate, error)
	GetByUserID(ctx context.Context, userID string) ([]Certificate, error)
	Update(ctx context.Context, actingPrincipalID, id string, cert *Certificate) (*Certificate, error)
	Delete(ctx context.Context, actingPrincipalID, id string) error
}
