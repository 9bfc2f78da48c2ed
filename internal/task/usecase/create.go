package usecase

import (
	"context"
	"strings"

	"deadline-sync/internal/model"
	"deadline-sync/internal/prioritization"
	"deadline-sync/internal/task"
	repo "deadline-sync/internal/task/repository"
)

// Create stores a new pending task and returns its detailed view.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.DetailOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.DetailOutput{}, task.ErrEmptyTitle
	}
	if input.Deadline.IsZero() {
		return task.DetailOutput{}, task.ErrMissingDeadline
	}

	priority := input.Priority
	if priority == 0 {
		priority = model.PriorityMedium
	}
	if err := validatePriority(&priority); err != nil {
		return task.DetailOutput{}, err
	}

	now := uc.now()
	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: input.Description,
		Deadline:    input.Deadline.UTC(),
		Priority:    priority,
		CreatedAt:   now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.DetailOutput{}, err
	}

	return task.DetailOutput{Task: prioritization.Describe(t, now)}, nil
}
