package usecase

import (
	"context"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task. Status is
// optional and defaults to pending.
type CreateTaskInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

// UpdateTaskInput is a partial update: only non-nil fields are applied,
// absent fields leave the stored values untouched.
type UpdateTaskInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

// TaskUsecase defines the interface for task-related business operations.
//
// Update and Delete address tasks by id alone and do not verify that the
// caller owns the task; once authenticated, any user may mutate any task.
// This mirrors the behavior the service has always had and is a documented
// gap for the adopting team to resolve, not an invariant to rely on.
type TaskUsecase interface {
	// CreateTask validates the fields and persists a new task owned by
	// ownerID.
	CreateTask(ctx context.Context, ownerID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)

	// ListTasks returns every task owned by ownerID.
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// UpdateTask applies the partial update to the task with the given id.
	UpdateTask(ctx context.Context, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)

	// DeleteTask removes the task and returns its prior value.
	DeleteTask(ctx context.Context, taskID uuid.UUID) (*entity.Task, error)
}
