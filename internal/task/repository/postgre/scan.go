package postgre

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"deadline-sync/internal/model"
	repo "deadline-sync/internal/task/repository"
)

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t        model.Task
		status   string
		priority string
		done     *time.Time
	)

	if err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Deadline, &status, &priority,
		&t.CalendarEventID, &t.CreatedAt, &t.UpdatedAt, &done,
	); err != nil {
		return model.Task{}, err
	}

	var err error
	if t.Status, err = model.ParseTaskStatus(status); err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrInvalidRecord, err)
	}
	if t.Priority, err = model.ParseTaskPriority(priority); err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrInvalidRecord, err)
	}

	t.Deadline = t.Deadline.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	if done != nil {
		utc := done.UTC()
		t.CompletedAt = &utc
	}
	return t, nil
}
