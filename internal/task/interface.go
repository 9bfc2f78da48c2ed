package task

import (
	"context"

	"deadline-sync/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every method captures the current instant once and derives all scores from it.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (DetailOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (DetailOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Views
	Upcoming(ctx context.Context, sc model.Scope, input UpcomingInput) (ListOutput, error)
	Past(ctx context.Context, sc model.Scope) (ListOutput, error)
	Prioritized(ctx context.Context, sc model.Scope) (PrioritizedOutput, error)
	Analytics(ctx context.Context, sc model.Scope) (AnalyticsOutput, error)

	// Google integration
	UpsertGoogleToken(ctx context.Context, sc model.Scope, input GoogleTokenInput) error
	SendReminder(ctx context.Context, sc model.Scope, id string) (NotifyOutput, error)
	SyncCalendar(ctx context.Context, sc model.Scope, id string) (CalendarOutput, error)
}

// ReminderSender delivers a deadline reminder for a task and returns the
// provider's message id.
type ReminderSender interface {
	Channel() model.NotificationChannel
	SendDeadlineReminder(ctx context.Context, user model.User, t model.Task) (string, error)
}

// CalendarSynchronizer creates or updates the calendar entry of a task and
// returns the provider's event id. existingEventID is empty for new entries.
type CalendarSynchronizer interface {
	UpsertCalendarEvent(ctx context.Context, user model.User, t model.Task, existingEventID string) (string, error)
}
