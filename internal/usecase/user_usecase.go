// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput carries the issued access token after registration or login.
type AuthOutput struct {
	AccessToken string `json:"access_token"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new account and returns a fresh access token.
	// A duplicate email fails with the Conflict application error and
	// creates no second record.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and returns a fresh access token.
	// A missing account and a wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ListUsers returns registered users in insertion order.
	ListUsers(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// GetUser returns a single user by id.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
