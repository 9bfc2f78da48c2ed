package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmptyTitle          = errors.New("title is empty")
	ErrMissingDeadline     = errors.New("deadline is required")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidDays         = errors.New("days must be between 1 and 365")
	ErrEmptyAccessToken    = errors.New("access token is empty")
	ErrGoogleNotLinked     = errors.New("google account not linked")
	ErrChannelNotLinked    = errors.New("notification channel not linked for user")
	ErrProviderUnavailable = errors.New("notification provider unavailable")
)
