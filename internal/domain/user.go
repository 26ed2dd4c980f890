package domain

import (
	"context"
	"time"
)

// User is a talent or contractor account. The ID is assigned once at
// registration and never changes.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email" validate:"required,email"`
	Password   string    `json:"-"` // bcrypt hash, never serialized
	Name       string    `json:"name" validate:"required,max=100,valid_name"`
	Phone      string    `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	NIK        string    `json:"nik,omitempty" validate:"omitempty,nik"`
	Skills     string    `json:"skills,omitempty"`
	Location   string    `json:"location,omitempty"`
	HourlyRate *float64  `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserUpdate is a sparse profile patch. Nil fields are left untouched.
type UserUpdate struct {
	Email      *string  `json:"email"`
	Password   *string  `json:"password"`
	Name       *string  `json:"name"`
	Phone      *string  `json:"phone"`
	NIK        *string  `json:"nik"`
	Skills     *string  `json:"skills"`
	Location   *string  `json:"location"`
	HourlyRate *float64 `json:"hourly_rate"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

type UserUsecase interface {
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, actingPrincipalID, targetID string, patch *UserUpdate) (*User, error)
	Delete(ctx context.Context, actingPrincipalID, targetID string) error
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=100,valid_name"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
