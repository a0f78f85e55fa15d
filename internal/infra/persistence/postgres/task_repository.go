package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task entity.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("task owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.CreatedAt = taskM.CreatedAt

	return nil
}

// FindByID retrieves a single task by its unique ID.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&taskM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// ListByOwner returns every task owned by the given user, oldest first.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []model.TaskModel

	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&taskModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by owner")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, toTaskDomain(&taskModels[i]))
	}

	return tasks, nil
}

// Update applies the patch's present fields to the stored task and returns
// the updated value. The column map is built only from non-nil patch fields,
// so untouched columns are never written. OwnerID is deliberately not
// patchable; ownership is set once at creation.
func (repo *taskRepository) Update(ctx context.Context, id uuid.UUID, patch entity.TaskPatch) (*entity.Task, error) {
	columns := map[string]any{}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.DueDate != nil {
		columns["due_date"] = *patch.DueDate
	}
	if patch.Status != nil {
		columns["status"] = patch.Status.String()
	}

	if len(columns) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.TaskModel{}).
			Where("id = ?", id).
			Updates(columns)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrTaskNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the task and returns its prior value. Deleting a missing
// task reports ErrTaskNotFound, so a second delete of the same id fails.
func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	prior, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTaskNotFound
	}

	return prior, nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		DueDate:     data.DueDate,
		Status:      entity.TaskStatus(data.Status),
		CreatedAt:   data.CreatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		DueDate:     data.DueDate,
		Status:      data.Status.String(),
	}
}
