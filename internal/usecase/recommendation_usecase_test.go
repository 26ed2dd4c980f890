package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockRecommendationRepo struct {
	mock.Mock
}

func (m *MockRecommendationRepo) Create(ctx context.Context, rec *domain.Recommendation) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *MockRecommendationRepo) GetByID(ctx context.Context, id string) (*domain.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}
func (m *MockRecommendationRepo) ListByTalent(ctx context.Context, talentID string) ([]domain.Recommendation, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}
func (m *MockRecommendationRepo) ListByTalentAndStatus(ctx context.Context, talentID string, status domain.RecommendationStatus) ([]domain.Recommendation, error) {
	args := m.Called(ctx, talentID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}
func (m *MockRecommendationRepo) Update(ctx context.Context, rec *domain.Recommendation) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *MockRecommendationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newRecommendationUC(recRepo *MockRecommendationRepo, userRepo *MockUserRepo) domain.RecommendationUsecase {
	return usecase.NewRecommendationUsecase(recRepo, userRepo, validator.New())
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestRecommendationCreate(t *testing.T) {
	talent := &domain.User{ID: "talent-1", Email: "talent@example.com", Name: "Talent"}

	t.Run("Should force status to PENDING on creation", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "talent-1").Return(talent, nil)
		recRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Recommendation")).Return(nil)

		uc := newRecommendationUC(recRepo, userRepo)
		rec, err := uc.Create(context.Background(), domain.CreateRecommendationInput{
			TalentID:       "talent-1",
			ContractorID:   42,
			ContractorName: "Acme Corp",
			Message:        "Great to work with",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, rec.Status)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.LastModifiedDate.After(time.Now()))
		recRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.Recommendation"))
	})

	t.Run("Should reject self-recommendation", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.Create(context.Background(), domain.CreateRecommendationInput{
			TalentID:       "1",
			ContractorID:   1,
			ContractorName: "Self",
			Message:        "I am great",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Contractor cannot recommend themselves")
		recRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should accept a 4000 character message and reject 4001", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "talent-1").Return(talent, nil)
		recRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		uc := newRecommendationUC(recRepo, userRepo)

		_, err := uc.Create(context.Background(), domain.CreateRecommendationInput{
			TalentID:       "talent-1",
			ContractorID:   42,
			ContractorName: "Acme Corp",
			Message:        strings.Repeat("a", 4000),
		})
		assert.NoError(t, err)

		_, err = uc.Create(context.Background(), domain.CreateRecommendationInput{
			TalentID:       "talent-1",
			ContractorID:   42,
			ContractorName: "Acme Corp",
			Message:        strings.Repeat("a", 4001),
		})
		assert.Error(t, err)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("Should fail when the talent does not exist", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.Create(context.Background(), domain.CreateRecommendationInput{
			TalentID:       "ghost",
			ContractorID:   42,
			ContractorName: "Acme Corp",
			Message:        "msg",
		})

		assert.Error(t, err)
		assert.Equal(t, 404, appErrorCode(t, err))
		assert.Contains(t, err.Error(), "User not found with id: ghost")
	})
}

func TestRecommendationGetByID(t *testing.T) {
	t.Run("Should return NotFound with the id in the message", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		recRepo.On("GetByID", mock.Anything, "non-existent").Return(nil, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.GetByID(context.Background(), "non-existent")

		assert.Error(t, err)
		assert.Equal(t, 404, appErrorCode(t, err))
		assert.Contains(t, err.Error(), "non-existent")
	})
}

func TestRecommendationGetByTalentID(t *testing.T) {
	talent1 := &domain.User{ID: "talent-1"}

	t.Run("Should return the complete set for the talent", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "talent-1").Return(talent1, nil)
		recRepo.On("ListByTalent", mock.Anything, "talent-1").Return([]domain.Recommendation{
			{ID: "r1", TalentID: "talent-1", Status: domain.StatusPending},
			{ID: "r2", TalentID: "talent-1", Status: domain.StatusAccepted},
		}, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		recs, err := uc.GetByTalentID(context.Background(), "talent-1")

		assert.NoError(t, err)
		assert.Len(t, recs, 2)
		ids := []string{recs[0].ID, recs[1].ID}
		assert.ElementsMatch(t, []string{"r1", "r2"}, ids)
	})

	t.Run("Should treat zero recommendations as an empty success", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "talent-1").Return(talent1, nil)
		recRepo.On("ListByTalent", mock.Anything, "talent-1").Return(nil, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		recs, err := uc.GetByTalentID(context.Background(), "talent-1")

		assert.NoError(t, err)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})

	t.Run("Should fail when the talent does not exist", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.GetByTalentID(context.Background(), "ghost")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found with id: ghost")
	})
}

func TestRecommendationGetByTalentIDAndStatus(t *testing.T) {
	t.Run("Should reject an unknown status", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.GetByTalentIDAndStatus(context.Background(), "talent-1", "MAYBE")

		assert.Error(t, err)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("Should filter by talent and status", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "talent-1").Return(&domain.User{ID: "talent-1"}, nil)
		recRepo.On("ListByTalentAndStatus", mock.Anything, "talent-1", domain.StatusAccepted).
			Return([]domain.Recommendation{{ID: "r2", Status: domain.StatusAccepted}}, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		recs, err := uc.GetByTalentIDAndStatus(context.Background(), "talent-1", domain.StatusAccepted)

		assert.NoError(t, err)
		assert.Len(t, recs, 1)
		assert.Equal(t, "r2", recs[0].ID)
	})
}

func TestRecommendationGroupedByStatus(t *testing.T) {
	t.Run("Should include every status even when empty", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "talent-1").Return(&domain.User{ID: "talent-1"}, nil)
		recRepo.On("ListByTalent", mock.Anything, "talent-1").Return([]domain.Recommendation{
			{ID: "r1", Status: domain.StatusPending},
			{ID: "r2", Status: domain.StatusPending},
			{ID: "r3", Status: domain.StatusDeclined},
		}, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		grouped, err := uc.GetByTalentIDGroupedByStatus(context.Background(), "talent-1")

		assert.NoError(t, err)
		assert.Len(t, grouped, 3)
		assert.Len(t, grouped[domain.StatusPending], 2)
		assert.Len(t, grouped[domain.StatusAccepted], 0)
		assert.NotNil(t, grouped[domain.StatusAccepted])
		assert.Len(t, grouped[domain.StatusDeclined], 1)
	})
}

func TestRecommendationEditStatus(t *testing.T) {
	existing := func() *domain.Recommendation {
		return &domain.Recommendation{
			ID:               "rec-1",
			TalentID:         "talent-1",
			ContractorID:     42,
			ContractorName:   "Acme Corp",
			Message:          "solid work",
			Status:           domain.StatusPending,
			LastModifiedDate: time.Now().Add(-time.Hour),
		}
	}

	t.Run("Should succeed for the owning talent", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		recRepo.On("GetByID", mock.Anything, "rec-1").Return(existing(), nil)
		recRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Recommendation")).Return(nil)

		uc := newRecommendationUC(recRepo, userRepo)
		rec, err := uc.EditStatusByID(context.Background(), "talent-1", "rec-1", domain.StatusAccepted)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, rec.Status)
		assert.False(t, rec.LastModifiedDate.After(time.Now()))
	})

	t.Run("Should fail with Forbidden for a non-owner and leave status unchanged", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		rec := existing()
		recRepo.On("GetByID", mock.Anything, "rec-1").Return(rec, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.EditStatusByID(context.Background(), "intruder", "rec-1", domain.StatusAccepted)

		assert.Error(t, err)
		assert.Equal(t, 403, appErrorCode(t, err))
		assert.Contains(t, err.Error(), "You are not allowed to edit this experience.")
		assert.Equal(t, domain.StatusPending, rec.Status)
		recRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should allow free-form transitions, including backwards", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		rec := existing()
		rec.Status = domain.StatusAccepted
		recRepo.On("GetByID", mock.Anything, "rec-1").Return(rec, nil)
		recRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		uc := newRecommendationUC(recRepo, userRepo)
		updated, err := uc.EditStatusByID(context.Background(), "talent-1", "rec-1", domain.StatusPending)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, updated.Status)
	})

	t.Run("Should fail with NotFound for a missing recommendation", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		recRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.EditStatusByID(context.Background(), "talent-1", "ghost", domain.StatusAccepted)

		assert.Error(t, err)
		assert.Equal(t, 404, appErrorCode(t, err))
		assert.Contains(t, err.Error(), "Recommendation with ID ghost not found")
	})
}

func TestRecommendationDelete(t *testing.T) {
	existing := &domain.Recommendation{
		ID:       "rec-1",
		TalentID: "talent-1",
		Status:   domain.StatusPending,
	}

	t.Run("Should delete and echo the last known state", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		recRepo.On("GetByID", mock.Anything, "rec-1").Return(existing, nil)
		recRepo.On("Delete", mock.Anything, "rec-1").Return(nil)

		uc := newRecommendationUC(recRepo, userRepo)
		rec, err := uc.DeleteByID(context.Background(), "talent-1", "rec-1")

		assert.NoError(t, err)
		assert.Equal(t, "rec-1", rec.ID)
		recRepo.AssertCalled(t, "Delete", mock.Anything, "rec-1")
	})

	t.Run("Should fail with Forbidden for a non-owner", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		recRepo.On("GetByID", mock.Anything, "rec-1").Return(existing, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.DeleteByID(context.Background(), "intruder", "rec-1")

		assert.Error(t, err)
		assert.Equal(t, 403, appErrorCode(t, err))
		recRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should fail with NotFound for a missing recommendation", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		userRepo := new(MockUserRepo)
		recRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		uc := newRecommendationUC(recRepo, userRepo)
		_, err := uc.DeleteByID(context.Background(), "talent-1", "ghost")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Recommendation with id ghost not found.")
	})
}
