package usecase

import (
	"context"
	"strings"
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/task"
	repo "deadline-sync/internal/task/repository"
)

// getOwnedTask loads a task of the scoped user. Foreign tasks are reported as not found.
func (uc *implUseCase) getOwnedTask(ctx context.Context, sc model.Scope, id, method string) (model.Task, error) {
	if strings.TrimSpace(id) == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneTask: %v", method, err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// getUser loads the scoped user for notification delivery.
func (uc *implUseCase) getUser(ctx context.Context, sc model.Scope, method string) (model.User, error) {
	u, err := uc.repo.GetUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetUser: %v", method, err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, task.ErrUserNotFound
	}
	return u, nil
}

// recordNotification stores the outcome of a delivery. A failure to record is
// only logged: the delivery already happened and must not be retried for it.
func (uc *implUseCase) recordNotification(ctx context.Context, t model.Task, channel model.NotificationChannel, externalID string, sendErr error, now time.Time) {
	n := model.Notification{
		UserID:     t.UserID,
		TaskID:     t.ID,
		Channel:    channel,
		Status:     model.NotificationSent,
		ExternalID: externalID,
		SentAt:     now,
	}
	if sendErr != nil {
		n.Status = model.NotificationFailed
		n.ErrorMessage = sendErr.Error()
	}
	if _, err := uc.repo.CreateNotification(ctx, n); err != nil {
		uc.l.Warnf(ctx, "uc.recordNotification CreateNotification: %v", err)
	}
}

// nextCompletedAt keeps completedAt set exactly while the status is closed.
func nextCompletedAt(current model.Task, next model.TaskStatus, now time.Time) *time.Time {
	switch next {
	case model.StatusCompleted, model.StatusMissed:
		if current.Status != next || current.CompletedAt == nil {
			return &now
		}
		return current.CompletedAt
	case model.StatusPending, model.StatusInProgress:
		return nil
	}
	return current.CompletedAt
}

func validateStatus(s *model.TaskStatus) error {
	if s != nil && !s.Valid() {
		return task.ErrInvalidStatus
	}
	return nil
}

func validatePriority(p *model.TaskPriority) error {
	if p != nil && !p.Valid() {
		return task.ErrInvalidPriority
	}
	return nil
}
