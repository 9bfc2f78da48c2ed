package usecase

import (
	"context"
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/prioritization"
	"deadline-sync/internal/task"
	repo "deadline-sync/internal/task/repository"
)

// Upcoming returns tasks due within the next input.Days days, soonest first.
func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope, input task.UpcomingInput) (task.ListOutput, error) {
	days := input.Days
	if days == 0 {
		days = task.DefaultUpcomingDays
	}
	if days < 1 || days > task.MaxUpcomingDays {
		return task.ListOutput{}, task.ErrInvalidDays
	}

	now := uc.now()
	until := now.Add(time.Duration(days) * 24 * time.Hour)
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:       sc.UserID,
		DeadlineFrom: &now,
		DeadlineTo:   &until,
		OrderBy:      "deadline ASC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upcoming ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: prioritization.DescribeAll(tasks, now)}, nil
}

// Past returns tasks whose deadline has passed, most recent first.
func (uc *implUseCase) Past(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	now := uc.now()
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:         sc.UserID,
		DeadlineBefore: &now,
		OrderBy:        "deadline DESC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Past ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: prioritization.DescribeAll(tasks, now)}, nil
}

// Prioritized ranks every task of the user and recommends the next one.
func (uc *implUseCase) Prioritized(ctx context.Context, sc model.Scope) (task.PrioritizedOutput, error) {
	now := uc.now()
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Prioritized ListTasks: %v", err)
		return task.PrioritizedOutput{}, err
	}

	return task.PrioritizedOutput{Ranking: prioritization.Rank(tasks, now)}, nil
}

// Analytics summarizes every task of the user.
func (uc *implUseCase) Analytics(ctx context.Context, sc model.Scope) (task.AnalyticsOutput, error) {
	now := uc.now()
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analytics ListTasks: %v", err)
		return task.AnalyticsOutput{}, err
	}

	return task.AnalyticsOutput{Summary: prioritization.Summarize(tasks, now)}, nil
}
