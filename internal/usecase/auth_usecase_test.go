package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestAuthRegister(t *testing.T) {
	t.Run("Should store a hash, never the plaintext password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEqual(t, "supersecret", u.Password)
			assert.True(t, auth.CheckPasswordHash("supersecret", u.Password))
			assert.NotEmpty(t, u.ID)
		})

		uc := usecase.NewAuthUsecase(repo, newTokenManager(), newValidator())
		user, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "new@example.com",
			Password: "supersecret",
			Name:     "New Talent",
		})

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("Should reject a duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: "u1"}, nil)

		uc := usecase.NewAuthUsecase(repo, newTokenManager(), newValidator())
		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "taken@example.com",
			Password: "supersecret",
			Name:     "Dup",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a short password", func(t *testing.T) {
		repo := new(MockUserRepo)

		uc := usecase.NewAuthUsecase(repo, newTokenManager(), newValidator())
		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "new@example.com",
			Password: "short",
			Name:     "New Talent",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, appErrorCode(t, err))
	})
}

func TestAuthLogin(t *testing.T) {
	hash, _ := auth.HashPassword("correct-horse")
	stored := &domain.User{ID: "user-1", Email: "talent@example.com", Password: hash, Name: "Jane"}

	t.Run("Should issue a token whose subject is the user id", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "talent@example.com").Return(stored, nil)

		tokens := newTokenManager()
		uc := usecase.NewAuthUsecase(repo, tokens, newValidator())
		token, user, err := uc.Login(context.Background(), "talent@example.com", "correct-horse")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)

		sub, err := tokens.ExtractSubject(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", sub)
		assert.True(t, tokens.IsValid(token, "user-1"))
	})

	t.Run("Should reject a wrong password with Unauthorized", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "talent@example.com").Return(stored, nil)

		uc := usecase.NewAuthUsecase(repo, newTokenManager(), newValidator())
		_, _, err := uc.Login(context.Background(), "talent@example.com", "wrong")

		assert.Error(t, err)
		assert.Equal(t, 401, appErrorCode(t, err))
	})

	t.Run("Should reject an unknown email the same way", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		uc := usecase.NewAuthUsecase(repo, newTokenManager(), newValidator())
		_, _, err := uc.Login(context.Background(), "ghost@example.com", "whatever")

		assert.Error(t, err)
		assert.Equal(t, 401, appErrorCode(t, err))
		assert.Contains(t, err.Error(), "Invalid email or password")
	})
}
