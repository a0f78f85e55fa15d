package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_IsValid(t *testing.T) {
	testCases := []struct {
		status TaskStatus
		valid  bool
	}{
		{StatusPending, true},
		{StatusInProgress, true},
		{StatusCompleted, true},
		{TaskStatus(""), false},
		{TaskStatus("done"), false},
		{TaskStatus("PENDING"), false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.valid, tc.status.IsValid(), "status %q", tc.status)
	}
}

func TestTaskPatch_Apply(t *testing.T) {
	original := Task{
		Name:        "buy milk",
		Description: "two liters",
		DueDate:     "2026-09-15",
		Status:      StatusPending,
	}

	t.Run("only present fields change", func(t *testing.T) {
		task := original
		status := StatusCompleted
		patch := TaskPatch{Status: &status}

		patch.Apply(&task)

		assert.Equal(t, StatusCompleted, task.Status)
		assert.Equal(t, original.Name, task.Name)
		assert.Equal(t, original.Description, task.Description)
		assert.Equal(t, original.DueDate, task.DueDate)
	})

	t.Run("empty patch leaves task untouched", func(t *testing.T) {
		task := original
		patch := TaskPatch{}

		assert.True(t, patch.IsEmpty())
		patch.Apply(&task)
		assert.Equal(t, original, task)
	})

	t.Run("explicit empty string clears a field", func(t *testing.T) {
		task := original
		empty := ""
		patch := TaskPatch{Description: &empty}

		assert.False(t, patch.IsEmpty())
		patch.Apply(&task)
		assert.Empty(t, task.Description)
		assert.Equal(t, original.Name, task.Name)
	})
}
