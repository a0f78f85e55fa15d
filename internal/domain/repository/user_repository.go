// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// Create persists a new user. A duplicate email surfaces as the
	// Conflict application error, even when two registrations race past
	// the existence check; the backend's unique index is the real
	// enforcement point.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// The comparison is case-sensitive.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users in insertion order, skipping offset rows and
	// returning at most limit.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)
}
