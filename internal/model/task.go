package model

import "time"

// Task is a user-owned task with a deadline.
type Task struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	Deadline        time.Time
	Status          TaskStatus
	Priority        TaskPriority
	CalendarEventID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time // set iff Status is Completed or Missed
}

// IsActive reports whether the task still needs work.
func (t Task) IsActive() bool {
	return t.Status.IsActive()
}

// TimeRemaining returns deadline - now and true when the deadline is in the future.
func (t Task) TimeRemaining(now time.Time) (time.Duration, bool) {
	if t.Deadline.After(now) {
		return t.Deadline.Sub(now), true
	}
	return 0, false
}

// IsOverdue reports whether the deadline has passed and the task is not completed.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Deadline.Before(now) && t.Status != StatusCompleted
}
