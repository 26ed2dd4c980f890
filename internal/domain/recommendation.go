package domain

import (
	"context"
	"time"
)

type RecommendationStatus string

const (
	StatusPending  RecommendationStatus = "PENDING"
	StatusAccepted RecommendationStatus = "ACCEPTED"
	StatusDeclined RecommendationStatus = "DECLINED"
)

// AllRecommendationStatuses returns every defined status, in declaration
// order. Grouped reads are total over this set.
func AllRecommendationStatuses() []RecommendationStatus {
	return []RecommendationStatus{StatusPending, StatusAccepted, StatusDeclined}
}

func (s RecommendationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// Recommendation is a contractor's endorsement of a talent. The talent owns
// the record: only the principal matching TalentID may change its status or
// delete it. ContractorID is an opaque number, not a reference to a User.
type Recommendation struct {
	ID               string               `json:"id"`
	TalentID         string               `json:"talent_id" validate:"required"`
	ContractorID     int64                `json:"contractor_id" validate:"required"`
	ContractorName   string               `json:"contractor_name" validate:"required"`
	Message          string               `json:"message" validate:"required,min=1,max=4000"`
	Status           RecommendationStatus `json:"status" validate:"required,oneof=PENDING ACCEPTED DECLINED"`
	LastModifiedDate time.Time            `json:"last_modified_date"`
}

// CreateRecommendationInput is the creation payload. Any status supplied by
// the caller is ignored; new records always start PENDING.
type CreateRecommendationInput struct {
	TalentID       string `json:"talent_id" validate:"required"`
	ContractorID   int64  `json:"contractor_id" validate:"required"`
	ContractorName string `json:"contractor_name" validate:"required"`
	Message        string `json:"message" validate:"required,min=1,max=4000"`
}

type RecommendationRepository interface {
	Create(ctx context.Context, rec *Recommendation) error
	GetByID(ctx context.Context, id string) (*Recommendation, error)
	ListByTalent(ctx context.Context, talentID string) ([]Recommendation, error)
	ListByTalentAndStatus(ctx context.Context, talentID string, status RecommendationStatus) ([]Recommendation, error)
	Update(ctx context.Context, rec *Recommendation) error
	Delete(ctx context.Context, id string) error
}

type RecommendationUsecase interface {
	Create(ctx context.Context, input CreateRecommendationInput) (*Recommendation, error)
	GetByID(ctx context.Context, id string) (*Recommendation, error)
	GetByTalentID(ctx context.Context, talentID string) ([]Recommendation, error)
	GetByTalentIDAndStatus(ctx context.Context, talentID string, status RecommendationStatus) ([]Recommendation, error)
	GetByTalentIDGroupedByStatus(ctx context.Context, talentID string) (map[RecommendationStatus][]Recommendation, error)
	EditStatusByID(ctx context.Context, actingPrincipalID, id string, status RecommendationStatus) (*Recommendation, error)
	DeleteByID(ctx context.Context, actingPrincipalID, id string) (*Recommendation, error)
}
