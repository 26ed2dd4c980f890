package domain

import (
	"context"
	"time"
)

// Experience is a work-history entry owned by a user.
type Experience struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id" validate:"required"`
	CompanyName string     `json:"company_name" validate:"required,max=200"`
	JobTitle    string     `json:"job_title" validate:"required,max=200"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil means ongoing
	Description string     `json:"description,omitempty" validate:"max=4000"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ExperienceRepository interface {
	Create(ctx context.Context, exp *Experience) error
	GetByID(ctx context.Context, id string) (*Experience, error)
	ListByUser(ctx context.Context, userID string) ([]Experience, error)
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id string) error
}

type ExperienceUsecase interface {
	Create(ctx context.Context, actingPrincipalID string, exp *Experience) (*Experience, error)
	GetByUserID(ctx context.Context, userID string) ([]Experience, error)
	Update(ctx context.Context, actingPrincipalID, id string, exp *Experience) (*Experience, error)
	Delete(ctx context.Context, actingPrincipalID, id string) error
}
