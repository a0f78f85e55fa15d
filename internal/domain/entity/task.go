package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the closed set of states a task can be in.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}

	return false
}

// String returns the wire representation of the status.
func (s TaskStatus) String() string {
	return string(s)
}

// Task is a unit of work owned by exactly one user. Ownership is set at
// creation and never transferred.
type Task struct {
	ID          uuid.UUID  // Unique identifier, generated once at creation.
	OwnerID     uuid.UUID  // The user this task belongs to.
	Name        string     // Required short text.
	Description string     // Optional free text.
	DueDate     string     // Optional date-like string; no format is enforced.
	Status      TaskStatus // Defaults to StatusPending when unset.
	CreatedAt   time.Time  // Timestamp captured at creation.
}

// TaskPatch describes a partial update. Only non-nil fields are applied,
// so a caller can change one field without clobbering the rest.
type TaskPatch struct {
	Name        *string
	Description *string
	DueDate     *string
	Status      *TaskStatus
}

// IsEmpty reports whether the patch carries no changes at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.DueDate == nil && p.Status == nil
}

// Apply copies the patch's present fields onto the task, leaving absent
// fields untouched.
func (p TaskPatch) Apply(task *Task) {
	if p.Name != nil {
		task.Name = *p.Name
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.DueDate != nil {
		task.DueDate = *p.DueDate
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
}
