package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// Create persists a new task with its owner already set.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a single task by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// ListByOwner returns every task owned by the given user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// Update applies the patch's present fields to the stored task and
	// returns the updated value. Absent fields are left untouched.
	Update(ctx context.Context, id uuid.UUID, patch entity.TaskPatch) (*entity.Task, error)

	// Delete removes the task and returns its prior value.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Task, error)
}
