package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type experienceUsecase struct {
	repo     domain.ExperienceRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		repo:     repo,
		userRepo: userRepo,
		validate: validate,
	}
}

func (u *experienceUsecase) Create(ctx context.Context, actingPrincipalID string, exp *domain.Experience) (*domain.Experience, error) {
	if actingPrincipalID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	// Records are always created under the acting principal, whatever the
	// payload claims.
	exp.UserID = actingPrincipalID
	exp.ID = uuid.NewString()
	now := time.Now()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	if err := u.validate.Struct(exp); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := u.repo.Create(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) GetByUserID(ctx context.Context, userID string) ([]domain.Experience, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound(fmt.Sprintf("User not found with id: %s", userID))
	}

	exps, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	return exps, nil
}

func (u *experienceUsecase) Update(ctx context.Context, actingPrincipalID, id string, in *domain.Experience) (*domain.Experience, error) {
	exp, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Experience with ID %s not found", id))
	}

	if err := checkTalentOwnership(actingPrincipalID, exp.UserID, "You are not allowed to edit this experience."); err != nil {
		return nil, err
	}

	exp.CompanyName = in.CompanyName
	exp.JobTitle = in.JobTitle
	exp.StartDate = in.StartDate
	exp.EndDate = in.EndDate
	exp.Description = in.Description
	exp.UpdatedAt = time.Now()

	if err := u.validate.Struct(exp); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := u.repo.Update(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, actingPrincipalID, id string) error {
	exp, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if exp == nil {
		return apperror.NotFound(fmt.Sprintf("Experience with id %s not found.", id))
	}

	if err := checkTalentOwnership(actingPrincipalID, exp.UserID, "You are not allowed to delete this experience."); err != nil {
		return err
	}

	return u.repo.Delete(ctx, id)
}
