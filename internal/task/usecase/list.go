package usecase

import (
	"context"

	"deadline-sync/internal/model"
	"deadline-sync/internal/prioritization"
	"deadline-sync/internal/task"
	repo "deadline-sync/internal/task/repository"
)

// List returns the user's tasks ordered by deadline, optionally filtered.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if err := validateStatus(input.Status); err != nil {
		return task.ListOutput{}, err
	}
	if err := validatePriority(input.Priority); err != nil {
		return task.ListOutput{}, err
	}

	now := uc.now()
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		Status:   input.Status,
		Priority: input.Priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: prioritization.DescribeAll(tasks, now)}, nil
}
