package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	repo     domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(repo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *userUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound(fmt.Sprintf("User not found with id: %s", id))
	}
	return user, nil
}

// UpdateProfile applies a sparse patch to the target user. The proposed full
// state is validated before anything is persisted, so the store never holds
// an invalid record.
func (u *userUsecase) UpdateProfile(ctx context.Context, actingPrincipalID, targetID string, patch *domain.UserUpdate) (*domain.User, error) {
	if actingPrincipalID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if actingPrincipalID != targetID {
		return nil, apperror.Forbidden("You can only edit your own profile")
	}

	user, err := u.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound(fmt.Sprintf("User not found with id: %s", targetID))
	}

	// Work on a copy so the loaded record is never mutated ahead of
	// validation.
	updated := *user
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.NIK != nil {
		updated.NIK = *patch.NIK
	}
	if patch.Skills != nil {
		updated.Skills = *patch.Skills
	}
	if patch.Location != nil {
		updated.Location = *patch.Location
	}
	if patch.HourlyRate != nil {
		updated.HourlyRate = patch.HourlyRate
	}
	if patch.Password != nil {
		if err := auth.ValidatePassword(*patch.Password); err != nil {
			return nil, apperror.BadRequest("Failed to update user: " + err.Error())
		}
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		updated.Password = hash
	}

	if err := u.validate.Struct(&updated); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return nil, apperror.BadRequest("Failed to update user: " + strings.Join(msgs, "; "))
	}

	updated.UpdatedAt = time.Now()
	if err := u.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (u *userUsecase) Delete(ctx context.Context, actingPrincipalID, targetID string) error {
	if actingPrincipalID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if actingPrincipalID != targetID {
		return apperror.Forbidden("You can only delete your own account")
	}

	user, err := u.repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound(fmt.Sprintf("User not found with id: %s", targetID))
	}
	return u.repo.Delete(ctx, targetID)
}
