package handler

import (
	"log/slog"
	"net/http"

	"taskhub/internal/delivery/http/response"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTask creates a task owned by the user named in the path.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var input *usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", validationMessage(err))
	}

	task, err := h.uc.CreateTask(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task, "Task created successfully")
}

// ListTasks returns every task owned by the user named in the path.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "Tasks retrieved successfully")
}

// UpdateTask applies a partial update to the task named in the path.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	taskID, err := uuid.Parse(c.Param("taskID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task id")
	}

	var input *usecase.UpdateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	// An empty body binds to nil; it means "change nothing".
	if input == nil {
		input = &usecase.UpdateTaskInput{}
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task updated successfully")
}

// DeleteTask removes the task named in the path and returns its prior value.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	taskID, err := uuid.Parse(c.Param("taskID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task id")
	}

	task, err := h.uc.DeleteTask(c.Request().Context(), taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task deleted successfully")
}
