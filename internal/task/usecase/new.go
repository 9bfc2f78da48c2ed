package usecase

import (
	"time"

	"deadline-sync/internal/task"
	"deadline-sync/internal/task/repository"
	pkgLog "deadline-sync/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	sender   task.ReminderSender
	calendar task.CalendarSynchronizer
	clock    func() time.Time
}

// New creates a new task UseCase instance. A nil clock falls back to time.Now.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	sender task.ReminderSender,
	calendar task.CalendarSynchronizer,
	clock func() time.Time,
) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		sender:   sender,
		calendar: calendar,
		clock:    clock,
	}
}

// now is called once per use case method; every derived value of a request
// is computed against the same instant.
func (uc *implUseCase) now() time.Time {
	return uc.clock().UTC()
}
