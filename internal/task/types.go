package task

import (
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/prioritization"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Deadline    time.Time
	Priority    model.TaskPriority // defaults to Medium when zero
}

// ListInput filters List. Nil fields are not applied.
type ListInput struct {
	Status   *model.TaskStatus
	Priority *model.TaskPriority
}

// UpdateInput is a partial update. Nil fields keep their current value.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Deadline    *time.Time
	Status      *model.TaskStatus
	Priority    *model.TaskPriority
}

type UpcomingInput struct {
	Days int // 1..365, 0 means DefaultUpcomingDays
}

type GoogleTokenInput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
	Scope        string
	TokenType    string
}

const (
	DefaultUpcomingDays = 30
	MaxUpcomingDays     = 365
)

// --- UseCase Outputs ---

type DetailOutput struct {
	Task prioritization.TaskView
}

type ListOutput struct {
	Tasks []prioritization.TaskView
}

type PrioritizedOutput struct {
	Ranking prioritization.Ranking
}

type AnalyticsOutput struct {
	Summary prioritization.Summary
}

type NotifyOutput struct {
	Channel   model.NotificationChannel
	MessageID string
}

type CalendarOutput struct {
	EventID string
}
