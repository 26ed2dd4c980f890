package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type recommendationUsecase struct {
	recRepo  domain.RecommendationRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewRecommendationUsecase(recRepo domain.RecommendationRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.RecommendationUsecase {
	return &recommendationUsecase{
		recRepo:  recRepo,
		userRepo: userRepo,
		validate: validate,
	}
}

// checkTalentOwnership is the authorization gate for mutations: the acting
// principal must be the talent that owns the record. Pure comparison, no
// store access.
func checkTalentOwnership(actingPrincipalID, talentID, message string) error {
	if actingPrincipalID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if actingPrincipalID != talentID {
		return apperror.Forbidden(message)
	}
	return nil
}

func (u *recommendationUsecase) Create(ctx context.Context, input domain.CreateRecommendationInput) (*domain.Recommendation, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	// ContractorID is an opaque number, not a User reference, so the
	// self-recommendation check compares its decimal rendering.
	if strconv.FormatInt(input.ContractorID, 10) == input.TalentID {
		return nil, apperror.BadRequest("Contractor cannot recommend themselves")
	}

	talent, err := u.userRepo.GetByID(ctx, input.TalentID)
	if err != nil {
		return nil, err
	}
	if talent == nil {
		return nil, apperror.NotFound(fmt.Sprintf("User not found with id: %s", input.TalentID))
	}

	rec := &domain.Recommendation{
		ID:               uuid.NewString(),
		TalentID:         talent.ID,
		ContractorID:     input.ContractorID,
		ContractorName:   input.ContractorName,
		Message:          input.Message,
		Status:           domain.StatusPending, // always PENDING on creation
		LastModifiedDate: time.Now(),
	}
	if err := u.validate.Struct(rec); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := u.recRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recommendationUsecase) GetByID(ctx context.Context, id string) (*domain.Recommendation, error) {
	rec, err := u.recRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Recommendation not found with id: %s", id))
	}
	return rec, nil
}

// resolveTalent enforces the user-existence precondition shared by the
// talent-scoped reads.
func (u *recommendationUsecase) resolveTalent(ctx context.Context, talentID string) (*domain.User, error) {
	talent, err := u.userRepo.GetByID(ctx, talentID)
	if err != nil {
		return nil, err
	}
	if talent == nil {
		return nil, apperror.NotFound(fmt.Sprintf("User not found with id: %s", talentID))
	}
	return talent, nil
}

func (u *recommendationUsecase) GetByTalentID(ctx context.Context, talentID string) ([]domain.Recommendation, error) {
	if _, err := u.resolveTalent(ctx, talentID); err != nil {
		return nil, err
	}
	recs, err := u.recRepo.ListByTalent(ctx, talentID)
	if err != nil {
		return nil, err
	}
	// Zero recommendations for an existing talent is a valid empty result,
	// not an error.
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	return recs, nil
}

func (u *recommendationUsecase) GetByTalentIDAndStatus(ctx context.Context, talentID string, status domain.RecommendationStatus) ([]domain.Recommendation, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid status: %s", status))
	}
	if _, err := u.resolveTalent(ctx, talentID); err != nil {
		return nil, err
	}
	recs, err := u.recRepo.ListByTalentAndStatus(ctx, talentID, status)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	return recs, nil
}

func (u *recommendationUsecase) GetByTalentIDGroupedByStatus(ctx context.Context, talentID string) (map[domain.RecommendationStatus][]domain.Recommendation, error) {
	if _, err := u.resolveTalent(ctx, talentID); err != nil {
		return nil, err
	}
	recs, err := u.recRepo.ListByTalent(ctx, talentID)
	if err != nil {
		return nil, err
	}

	// Grouping is total over the status enum: every status gets an entry,
	// empty statuses included.
	grouped := make(map[domain.RecommendationStatus][]domain.Recommendation, 3)
	for _, status := range domain.AllRecommendationStatuses() {
		grouped[status] = []domain.Recommendation{}
	}
	for _, rec := range recs {
		grouped[rec.Status] = append(grouped[rec.Status], rec)
	}
	return grouped, nil
}

func (u *recommendationUsecase) EditStatusByID(ctx context.Context, actingPrincipalID, id string, status domain.RecommendationStatus) (*domain.Recommendation, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid status: %s", status))
	}

	rec, err := u.recRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Recommendation with ID %s not found", id))
	}

	if err := checkTalentOwnership(actingPrincipalID, rec.TalentID, "You are not allowed to edit this experience."); err != nil {
		return nil, err
	}

	// Transitions are free-form: any status may move to any other.
	rec.Status = status
	rec.LastModifiedDate = time.Now()
	if err := u.validate.Struct(rec); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := u.recRepo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recommendationUsecase) DeleteByID(ctx context.Context, actingPrincipalID, id string) (*domain.Recommendation, error) {
	rec, err := u.recRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Recommendation with id %s not found.", id))
	}

	if err := checkTalentOwnership(actingPrincipalID, rec.TalentID, "You are not allowed to delete this recommendation."); err != nil {
		return nil, err
	}

	if err := u.recRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	// The record is gone; its last known state is echoed back for
	// confirmation responses.
	return rec, nil
}
