package usecase

import (
	"context"
	"strings"

	"deadline-sync/internal/model"
	"deadline-sync/internal/prioritization"
	"deadline-sync/internal/task"
	repo "deadline-sync/internal/task/repository"
)

// Detail retrieves a single task of the user. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	now := uc.now()
	t, err := uc.getOwnedTask(ctx, sc, id, "Detail")
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: prioritization.Describe(t, now)}, nil
}

// Update applies a partial update. Closing a task stamps completedAt,
// reopening it clears the stamp.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.DetailOutput, error) {
	if err := validateStatus(input.Status); err != nil {
		return task.DetailOutput{}, err
	}
	if err := validatePriority(input.Priority); err != nil {
		return task.DetailOutput{}, err
	}

	now := uc.now()
	existing, err := uc.getOwnedTask(ctx, sc, input.ID, "Update")
	if err != nil {
		return task.DetailOutput{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		UserID:      existing.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		Deadline:    existing.Deadline,
		Status:      existing.Status,
		Priority:    existing.Priority,
		CompletedAt: existing.CompletedAt,
		UpdatedAt:   now,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return task.DetailOutput{}, task.ErrEmptyTitle
		}
		opt.Title = title
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.Deadline != nil {
		if input.Deadline.IsZero() {
			return task.DetailOutput{}, task.ErrMissingDeadline
		}
		opt.Deadline = input.Deadline.UTC()
	}
	if input.Priority != nil {
		opt.Priority = *input.Priority
	}
	if input.Status != nil {
		opt.Status = *input.Status
		opt.CompletedAt = nextCompletedAt(existing, *input.Status, now)
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}

	return task.DetailOutput{Task: prioritization.Describe(t, now)}, nil
}

// Delete removes a task of the user. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getOwnedTask(ctx, sc, id, "Delete")
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: existing.ID, UserID: existing.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
