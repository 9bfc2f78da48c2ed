package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/task"
	"deadline-sync/internal/task/usecase"
)

var scope = model.Scope{UserID: "u1"}

func newUseCase(repo *mockRepo, sender *mockSender, cal *mockCalendar) task.UseCase {
	var s task.ReminderSender
	if sender != nil {
		s = sender
	}
	var c task.CalendarSynchronizer
	if cal != nil {
		c = cal
	}
	return usecase.New(&mockLogger{}, repo, s, c, fixedClock)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
		want    model.TaskPriority
	}{
		{
			name:  "defaults to medium",
			input: task.CreateInput{Title: "Report", Deadline: refNow.Add(2 * time.Hour)},
			want:  model.PriorityMedium,
		},
		{
			name:  "keeps priority",
			input: task.CreateInput{Title: "Report", Deadline: refNow.Add(2 * time.Hour), Priority: model.PriorityHigh},
			want:  model.PriorityHigh,
		},
		{
			name:    "empty title",
			input:   task.CreateInput{Title: "   ", Deadline: refNow},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "missing deadline",
			input:   task.CreateInput{Title: "Report"},
			wantErr: task.ErrMissingDeadline,
		},
		{
			name:    "invalid priority",
			input:   task.CreateInput{Title: "Report", Deadline: refNow, Priority: model.TaskPriority(9)},
			wantErr: task.ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(newMockRepo(), nil, nil)
			out, err := uc.Create(context.Background(), scope, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}
			if out.Task.Task.Status != model.StatusPending {
				t.Errorf("expected pending, got %v", out.Task.Task.Status)
			}
			if out.Task.Task.Priority != tt.want {
				t.Errorf("expected priority %v, got %v", tt.want, out.Task.Task.Priority)
			}
			if out.Task.Task.UserID != "u1" {
				t.Errorf("expected owner u1, got %s", out.Task.Task.UserID)
			}
			if out.Task.TimeRemainingHours != 2 {
				t.Errorf("expected 2 hours remaining, got %v", out.Task.TimeRemainingHours)
			}
		})
	}
}

func TestDetailScoping(t *testing.T) {
	repo := newMockRepo()
	repo.put(model.Task{ID: "t1", UserID: "u2", Title: "Foreign", Deadline: refNow, Status: model.StatusPending, Priority: model.PriorityLow})
	uc := newUseCase(repo, nil, nil)

	if _, err := uc.Detail(context.Background(), scope, "t1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for foreign task, got %v", err)
	}
	if _, err := uc.Detail(context.Background(), scope, ""); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for empty id, got %v", err)
	}
	if err := uc.Delete(context.Background(), scope, "t1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on delete, got %v", err)
	}
	if _, ok := repo.tasks["t1"]; !ok {
		t.Error("foreign task must not be deleted")
	}
}

func TestUpdateCompletedAt(t *testing.T) {
	earlier := refNow.Add(-48 * time.Hour)
	completed := model.StatusCompleted
	missed := model.StatusMissed
	pending := model.StatusPending

	tests := []struct {
		name     string
		existing model.Task
		status   *model.TaskStatus
		want     *time.Time
	}{
		{
			name:     "close stamps now",
			existing: model.Task{Status: model.StatusInProgress},
			status:   &completed,
			want:     &refNow,
		},
		{
			name:     "reopen clears",
			existing: model.Task{Status: model.StatusCompleted, CompletedAt: &earlier},
			status:   &pending,
		},
		{
			name:     "same closed status keeps stamp",
			existing: model.Task{Status: model.StatusCompleted, CompletedAt: &earlier},
			status:   &completed,
			want:     &earlier,
		},
		{
			name:     "completed to missed restamps",
			existing: model.Task{Status: model.StatusCompleted, CompletedAt: &earlier},
			status:   &missed,
			want:     &refNow,
		},
		{
			name:     "no status change keeps stamp",
			existing: model.Task{Status: model.StatusCompleted, CompletedAt: &earlier},
			want:     &earlier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			existing := tt.existing
			existing.ID = "t1"
			existing.UserID = "u1"
			existing.Title = "Task"
			existing.Deadline = refNow.Add(time.Hour)
			existing.Priority = model.PriorityMedium
			repo.put(existing)

			uc := newUseCase(repo, nil, nil)
			out, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: "t1", Status: tt.status})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := out.Task.Task.CompletedAt
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("expected nil completedAt, got %v", *got)
			case tt.want != nil && (got == nil || !got.Equal(*tt.want)):
				t.Errorf("expected completedAt %v, got %v", *tt.want, got)
			}
			if !out.Task.Task.UpdatedAt.Equal(refNow) {
				t.Errorf("expected updatedAt %v, got %v", refNow, out.Task.Task.UpdatedAt)
			}
		})
	}
}

func TestUpdateFields(t *testing.T) {
	repo := newMockRepo()
	repo.put(model.Task{ID: "t1", UserID: "u1", Title: "Old", Description: "keep", Deadline: refNow, Status: model.StatusPending, Priority: model.PriorityLow})
	uc := newUseCase(repo, nil, nil)

	title := "New"
	priority := model.PriorityCritical
	out, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: "t1", Title: &title, Priority: &priority})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Task.Title != "New" || out.Task.Task.Description != "keep" || out.Task.Task.Priority != model.PriorityCritical {
		t.Errorf("unexpected task: %+v", out.Task.Task)
	}

	empty := " "
	if _, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: "t1", Title: &empty}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	bad := model.TaskStatus(42)
	if _, err := uc.Update(context.Background(), scope, task.UpdateInput{ID: "t1", Status: &bad}); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpcoming(t *testing.T) {
	repo := newMockRepo()
	repo.put(model.Task{ID: "soon", UserID: "u1", Deadline: refNow.Add(24 * time.Hour), Status: model.StatusPending, Priority: model.PriorityLow})
	repo.put(model.Task{ID: "later", UserID: "u1", Deadline: refNow.Add(40 * 24 * time.Hour), Status: model.StatusPending, Priority: model.PriorityLow})
	repo.put(model.Task{ID: "gone", UserID: "u1", Deadline: refNow.Add(-time.Hour), Status: model.StatusPending, Priority: model.PriorityLow})
	uc := newUseCase(repo, nil, nil)

	out, err := uc.Upcoming(context.Background(), scope, task.UpcomingInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].Task.ID != "soon" {
		t.Errorf("expected only 'soon' in default window, got %d tasks", len(out.Tasks))
	}
	wantTo := refNow.Add(30 * 24 * time.Hour)
	if repo.lastList.DeadlineTo == nil || !repo.lastList.DeadlineTo.Equal(wantTo) {
		t.Errorf("expected window end %v, got %v", wantTo, repo.lastList.DeadlineTo)
	}

	out, err = uc.Upcoming(context.Background(), scope, task.UpcomingInput{Days: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Tasks) != 2 || out.Tasks[0].Task.ID != "soon" {
		t.Errorf("expected soon then later, got %+v", out.Tasks)
	}

	for _, days := range []int{-1, 366} {
		if _, err := uc.Upcoming(context.Background(), scope, task.UpcomingInput{Days: days}); !errors.Is(err, task.ErrInvalidDays) {
			t.Errorf("days=%d: expected ErrInvalidDays, got %v", days, err)
		}
	}
}

func TestPast(t *testing.T) {
	repo := newMockRepo()
	repo.put(model.Task{ID: "old", UserID: "u1", Deadline: refNow.Add(-48 * time.Hour), Status: model.StatusMissed, Priority: model.PriorityLow})
	repo.put(model.Task{ID: "recent", UserID: "u1", Deadline: refNow.Add(-time.Hour), Status: model.StatusPending, Priority: model.PriorityLow})
	repo.put(model.Task{ID: "future", UserID: "u1", Deadline: refNow.Add(time.Hour), Status: model.StatusPending, Priority: model.PriorityLow})
	uc := newUseCase(repo, nil, nil)

	out, err := uc.Past(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Tasks) != 2 || out.Tasks[0].Task.ID != "recent" || out.Tasks[1].Task.ID != "old" {
		t.Fatalf("unexpected past tasks: %+v", out.Tasks)
	}
	if out.Tasks[0].HoursUntilDeadline != -1 || !out.Tasks[0].IsOverdue {
		t.Errorf("expected overdue view, got %+v", out.Tasks[0])
	}
}

func TestPrioritizedAndAnalytics(t *testing.T) {
	repo := newMockRepo()
	done := refNow.Add(-2 * time.Hour)
	repo.put(model.Task{ID: "a", UserID: "u1", Deadline: refNow.Add(30 * time.Minute), Status: model.StatusPending, Priority: model.PriorityMedium})
	repo.put(model.Task{ID: "b", UserID: "u1", Deadline: refNow.Add(10 * 24 * time.Hour), Status: model.StatusPending, Priority: model.PriorityCritical})
	repo.put(model.Task{ID: "c", UserID: "u1", Deadline: refNow.Add(-time.Hour), Status: model.StatusCompleted, Priority: model.PriorityHigh, CreatedAt: refNow.Add(-12 * time.Hour), CompletedAt: &done})
	repo.put(model.Task{ID: "x", UserID: "u2", Deadline: refNow.Add(time.Minute), Status: model.StatusPending, Priority: model.PriorityCritical})
	uc := newUseCase(repo, nil, nil)

	p, err := uc.Prioritized(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a: 50*2 = 100, b: 100 clamped
	if p.Ranking.Recommended == nil || p.Ranking.Recommended.Task.ID != "a" {
		t.Fatalf("expected 'a' recommended by earlier deadline, got %+v", p.Ranking.Recommended)
	}
	if len(p.Ranking.Upcoming) != 2 || len(p.Ranking.Past) != 1 {
		t.Errorf("unexpected partition: %d upcoming, %d past", len(p.Ranking.Upcoming), len(p.Ranking.Past))
	}

	a, err := uc.Analytics(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := a.Summary
	if s.Total != 3 || s.Completed != 1 || s.Pending != 2 || s.Upcoming != 1 || s.Overdue != 0 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.AverageCompletionTimeHours == nil || *s.AverageCompletionTimeHours != 10 {
		t.Errorf("expected average 10h, got %v", s.AverageCompletionTimeHours)
	}

	repo.failList = true
	if _, err := uc.Analytics(context.Background(), scope); !errors.Is(err, errDB) {
		t.Errorf("expected repository error, got %v", err)
	}
}

func TestPrioritizedEmpty(t *testing.T) {
	uc := newUseCase(newMockRepo(), nil, nil)
	p, err := uc.Prioritized(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Ranking.Recommended != nil || len(p.Ranking.Upcoming) != 0 || len(p.Ranking.Past) != 0 {
		t.Errorf("expected empty ranking, got %+v", p.Ranking)
	}
}

func TestUpsertGoogleToken(t *testing.T) {
	repo := newMockRepo()
	uc := newUseCase(repo, nil, nil)

	if err := uc.UpsertGoogleToken(context.Background(), scope, task.GoogleTokenInput{}); !errors.Is(err, task.ErrEmptyAccessToken) {
		t.Errorf("expected ErrEmptyAccessToken, got %v", err)
	}
	if err := uc.UpsertGoogleToken(context.Background(), scope, task.GoogleTokenInput{AccessToken: "at", RefreshToken: "rt"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := repo.tokens["u1"]
	if got.AccessToken != "at" || got.RefreshToken != "rt" || got.TokenType != "Bearer" {
		t.Errorf("unexpected stored token: %+v", got)
	}
}

func seedNotifyRepo() *mockRepo {
	repo := newMockRepo()
	repo.users["u1"] = model.User{ID: "u1", Email: "a@example.com", IsActive: true}
	repo.put(model.Task{ID: "t1", UserID: "u1", Title: "Report", Deadline: refNow.Add(time.Hour), Status: model.StatusPending, Priority: model.PriorityHigh})
	return repo
}

func TestSendReminder(t *testing.T) {
	t.Run("success records sent", func(t *testing.T) {
		repo := seedNotifyRepo()
		sender := &mockSender{channel: model.ChannelEmail, messageID: "msg-1"}
		uc := newUseCase(repo, sender, nil)

		out, err := uc.SendReminder(context.Background(), scope, "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.MessageID != "msg-1" || out.Channel != model.ChannelEmail {
			t.Errorf("unexpected output: %+v", out)
		}
		if len(repo.notifications) != 1 || repo.notifications[0].Status != model.NotificationSent {
			t.Errorf("expected one sent notification, got %+v", repo.notifications)
		}
	})

	t.Run("provider failure records failed", func(t *testing.T) {
		repo := seedNotifyRepo()
		sender := &mockSender{channel: model.ChannelTelegram, err: errors.New("timeout")}
		uc := newUseCase(repo, sender, nil)

		_, err := uc.SendReminder(context.Background(), scope, "t1")
		if !errors.Is(err, task.ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
		if len(repo.notifications) != 1 || repo.notifications[0].Status != model.NotificationFailed || repo.notifications[0].ErrorMessage != "timeout" {
			t.Errorf("expected one failed notification, got %+v", repo.notifications)
		}
	})

	t.Run("not linked passes through", func(t *testing.T) {
		repo := seedNotifyRepo()
		sender := &mockSender{channel: model.ChannelEmail, err: task.ErrGoogleNotLinked}
		uc := newUseCase(repo, sender, nil)

		if _, err := uc.SendReminder(context.Background(), scope, "t1"); !errors.Is(err, task.ErrGoogleNotLinked) {
			t.Errorf("expected ErrGoogleNotLinked, got %v", err)
		}
		if len(repo.notifications) != 0 {
			t.Errorf("expected no notification, got %+v", repo.notifications)
		}
	})

	t.Run("record failure still succeeds", func(t *testing.T) {
		repo := seedNotifyRepo()
		repo.failNotify = true
		sender := &mockSender{channel: model.ChannelEmail, messageID: "msg-2"}
		uc := newUseCase(repo, sender, nil)

		out, err := uc.SendReminder(context.Background(), scope, "t1")
		if err != nil || out.MessageID != "msg-2" {
			t.Errorf("expected success, got %+v %v", out, err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := seedNotifyRepo()
		delete(repo.users, "u1")
		sender := &mockSender{channel: model.ChannelEmail}
		uc := newUseCase(repo, sender, nil)

		if _, err := uc.SendReminder(context.Background(), scope, "t1"); !errors.Is(err, task.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if sender.calls != 0 {
			t.Error("sender must not be called")
		}
	})
}

func TestSyncCalendar(t *testing.T) {
	repo := seedNotifyRepo()
	cal := &mockCalendar{eventID: "evt-1"}
	uc := newUseCase(repo, nil, cal)

	out, err := uc.SyncCalendar(context.Background(), scope, "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.EventID != "evt-1" || repo.tasks["t1"].CalendarEventID != "evt-1" {
		t.Errorf("expected stored event evt-1, got %+v / %q", out, repo.tasks["t1"].CalendarEventID)
	}
	if cal.gotExisting != "" {
		t.Errorf("expected no existing event on first sync, got %q", cal.gotExisting)
	}

	if _, err := uc.SyncCalendar(context.Background(), scope, "t1"); err != nil {
		t.Fatalf("unexpected error on resync: %v", err)
	}
	if cal.gotExisting != "evt-1" {
		t.Errorf("expected existing event evt-1 on resync, got %q", cal.gotExisting)
	}
	if len(repo.notifications) != 2 || repo.notifications[0].Channel != model.ChannelCalendar {
		t.Errorf("expected two calendar notifications, got %+v", repo.notifications)
	}

	cal.err = errors.New("quota")
	if _, err := uc.SyncCalendar(context.Background(), scope, "t1"); !errors.Is(err, task.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}
