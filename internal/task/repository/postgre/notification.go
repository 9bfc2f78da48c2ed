package postgre

import (
	"context"

	"github.com/google/uuid"

	"deadline-sync/internal/model"
	repo "deadline-sync/internal/task/repository"
)

// CreateNotification records one outbound notification.
func (r *implRepository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	const query = `
		INSERT INTO notifications (id, user_id, task_id, channel, status, external_id, error_message, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	n.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, query,
		n.ID, n.UserID, n.TaskID, string(n.Channel), string(n.Status), n.ExternalID, n.ErrorMessage, n.SentAt.UTC())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNotification"), err)
		return model.Notification{}, repo.ErrFailedToInsert
	}
	return n, nil
}
