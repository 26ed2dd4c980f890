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

type certificateUsecase struct {
	repo     domain.CertificateRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewCertificateUsecase(repo domain.CertificateRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.CertificateUsecase {
	return &certificateUsecase{
		repo:     repo,
		userRepo: userRepo,
		validate: validate,
	}
}

func (u *certificateUsecase) Create(ctx context.Context, actingPrincipalID string, cert *domain.Certificate) (*domain.Certificate, error) {
	if actingPrincipalID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	cert.UserID = actingPrincipalID
	cert.ID = uuid.NewString()
	now := time.Now()
	cert.CreatedAt = now
	cert.UpdatedAt = now

	if err := u.validate.Struct(cert); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := u.repo.Create(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (u *certificateUsecase) GetByUserID(ctx context.Context, userID string) ([]domain.Certificate, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound(fmt.Sprintf("User not found with id: %s", userID))
	}

	certs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if certs == nil {
		certs = []domain.Certificate{}
	}
	return certs, nil
}

func (u *certificateUsecase) Update(ctx context.Context, actingPrincipalID, id string, in *domain.Certificate) (*domain.Certificate, error) {
	cert, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Certificate with ID %s not found", id))
	}

	if err := checkTalentOwnership(actingPrincipalID, cert.UserID, "You are not allowed to edit this certificate."); err != nil {
		return nil, err
	}

	cert.CertificateType = in.CertificateType
	cert.CertificateName = in.CertificateName
	cert.Issuer = in.Issuer
	cert.IssuedDate = in.IssuedDate
	cert.ExpiresDate = in.ExpiresDate
	cert.UpdatedAt = time.Now()

	if err := u.validate.Struct(cert); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := u.repo.Update(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (u *certificateUsecase) Delete(ctx context.Context, actingPrincipalID, id string) error {
	cert, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cert == nil {
		return apperror.NotFound(fmt.Sprintf("Certificate with id %s not found.", id))
	}

	if err := checkTalentOwnership(actingPrincipalID, cert.UserID, "You are not allowed to delete this certificate."); err != nil {
		return err
	}

	return u.repo.Delete(ctx, id)
}
