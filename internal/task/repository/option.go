package repository

import (
	"time"

	"deadline-sync/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	Deadline    time.Time
	Priority    model.TaskPriority
	CreatedAt   time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter parameters for listing a user's Tasks.
type ListTasksOptions struct {
	UserID         string
	Status         *model.TaskStatus
	Priority       *model.TaskPriority
	DeadlineFrom   *time.Time // deadline >= DeadlineFrom
	DeadlineTo     *time.Time // deadline <= DeadlineTo
	DeadlineBefore *time.Time // deadline < DeadlineBefore
	OrderBy        string     // defaults to "deadline ASC"
}

// UpdateTaskOptions holds the full new state of an existing Task.
type UpdateTaskOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Deadline    time.Time
	Status      model.TaskStatus
	Priority    model.TaskPriority
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
