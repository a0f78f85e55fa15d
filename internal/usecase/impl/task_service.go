package impl

import (
	"context"
	"log/slog"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(taskRepo repository.TaskRepository, logger *slog.Logger) usecase.TaskUsecase {
	return &taskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask validates the fields and persists a new task owned by ownerID.
// An unset status defaults to pending.
func (srv *taskService) CreateTask(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("task name is required")
	}

	status := entity.StatusPending
	if input.Status != "" {
		status = entity.TaskStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task status: " + input.Status)
		}
	}

	task := &entity.Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.logger.Warn("Failed to create task", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Task created", slog.Any("taskID", task.ID), slog.Any("ownerID", ownerID))

	return task, nil
}

// ListTasks returns every task owned by ownerID.
func (srv *taskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// UpdateTask applies the partial update to the task with the given id.
// Fields absent from the input leave the stored values untouched; an
// all-absent input returns the task unchanged. Ownership is not verified
// here (see the TaskUsecase contract).
func (srv *taskService) UpdateTask(ctx context.Context, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	if input == nil {
		input = &usecase.UpdateTaskInput{}
	}

	patch := entity.TaskPatch{
		Name:        input.Name,
		Description: input.Description,
		DueDate:     input.DueDate,
	}

	if input.Name != nil && *input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("task name cannot be cleared")
	}

	if input.Status != nil {
		status := entity.TaskStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task status: " + *input.Status)
		}
		patch.Status = &status
	}

	if patch.IsEmpty() {
		task, err := srv.taskRepo.FindByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return nil, domainerrors.ErrTaskNotFound.WrapMessage("update failed")
			}

			return nil, errors.Wrap(err, "failed to load task")
		}

		return task, nil
	}

	task, err := srv.taskRepo.Update(ctx, taskID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("update failed")
		}

		return nil, errors.Wrap(err, "failed to update task")
	}

	srv.logger.Debug("Task updated", slog.Any("taskID", taskID))

	return task, nil
}

// DeleteTask removes the task and returns its prior value. A repeated
// delete of the same id reports NotFound. Ownership is not verified here
// (see the TaskUsecase contract).
func (srv *taskService) DeleteTask(ctx context.Context, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("delete failed")
		}

		return nil, errors.Wrap(err, "failed to delete task")
	}

	srv.logger.Debug("Task deleted", slog.Any("taskID", taskID))

	return task, nil
}
