package repository

import (
	"context"

	"deadline-sync/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	UserRepository
	GoogleTokenRepository
	NotificationRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Lookups return a zero-value Task (ID == "") when nothing matches.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
	SetCalendarEventID(ctx context.Context, taskID, eventID string) error
}

// UserRepository reads and provisions task owners.
// GetUser returns a zero-value User when none matches.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (model.User, error)
	UpsertUser(ctx context.Context, user model.User) (model.User, error)
}

// GoogleTokenRepository stores the OAuth token a user granted to the service.
// GetGoogleToken returns a zero-value token when none is stored.
type GoogleTokenRepository interface {
	UpsertGoogleToken(ctx context.Context, token model.GoogleToken) error
	GetGoogleToken(ctx context.Context, userID string) (model.GoogleToken, error)
}

// NotificationRepository records outbound reminders and calendar syncs.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
}
