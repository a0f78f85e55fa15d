package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table. OwnerID references users.id and is
// never updated after insert.
type TaskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	DueDate     string    `gorm:"type:varchar(64)"`
	Status      string    `gorm:"type:varchar(32);not null;default:pending"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
