package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"deadline-sync/internal/model"
	repo "deadline-sync/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, deadline, status, priority,
	calendar_event_id, created_at, updated_at, completed_at`

// CreateTask inserts a new pending Task and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := `
		INSERT INTO tasks (id, user_id, title, description, deadline, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRow(ctx, query,
		uuid.NewString(),
		opt.UserID,
		opt.Title,
		opt.Description,
		opt.Deadline.UTC(),
		model.StatusPending.String(),
		opt.Priority.String(),
		opt.CreatedAt.UTC(),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns every Task of a user that matches the filters.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites the mutable fields of a Task and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, deadline = $3, status = $4, priority = $5,
			completed_at = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
		RETURNING ` + taskColumns

	var completedAt any
	if opt.CompletedAt != nil {
		completedAt = opt.CompletedAt.UTC()
	}

	t, err := scanTask(r.db.QueryRow(ctx, query,
		opt.Title,
		opt.Description,
		opt.Deadline.UTC(),
		opt.Status.String(),
		opt.Priority.String(),
		completedAt,
		opt.UpdatedAt.UTC(),
		opt.ID,
		opt.UserID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task owned by the given user.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.Exec(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// SetCalendarEventID stores the calendar event linked to a Task.
func (r *implRepository) SetCalendarEventID(ctx context.Context, taskID, eventID string) error {
	const query = `UPDATE tasks SET calendar_event_id = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, eventID, taskID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
