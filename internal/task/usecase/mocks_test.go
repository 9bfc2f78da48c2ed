package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errDB = errors.New("db error")

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	tasks         map[string]model.Task
	users         map[string]model.User
	tokens        map[string]model.GoogleToken
	notifications []model.Notification
	lastList      repository.ListTasksOptions
	seq           int
	failList      bool
	failNotify    bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		tasks:  map[string]model.Task{},
		users:  map[string]model.User{},
		tokens: map[string]model.GoogleToken{},
	}
}

func (m *mockRepo) put(t model.Task) {
	m.tasks[t.ID] = t
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.seq++
	t := model.Task{
		ID:          fmt.Sprintf("task-%d", m.seq),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Deadline:    opt.Deadline,
		Status:      model.StatusPending,
		Priority:    opt.Priority,
		CreatedAt:   opt.CreatedAt,
		UpdatedAt:   opt.CreatedAt,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.lastList = opt
	if m.failList {
		return nil, errDB
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if opt.Status != nil && t.Status != *opt.Status {
			continue
		}
		if opt.Priority != nil && t.Priority != *opt.Priority {
			continue
		}
		if opt.DeadlineFrom != nil && t.Deadline.Before(*opt.DeadlineFrom) {
			continue
		}
		if opt.DeadlineTo != nil && t.Deadline.After(*opt.DeadlineTo) {
			continue
		}
		if opt.DeadlineBefore != nil && !t.Deadline.Before(*opt.DeadlineBefore) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if opt.OrderBy == "deadline DESC" {
			return out[i].Deadline.After(out[j].Deadline)
		}
		return out[i].Deadline.Before(out[j].Deadline)
	})
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	t.Title = opt.Title
	t.Description = opt.Description
	t.Deadline = opt.Deadline
	t.Status = opt.Status
	t.Priority = opt.Priority
	t.CompletedAt = opt.CompletedAt
	t.UpdatedAt = opt.UpdatedAt
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	delete(m.tasks, opt.ID)
	return nil
}

func (m *mockRepo) SetCalendarEventID(ctx context.Context, taskID, eventID string) error {
	t := m.tasks[taskID]
	t.CalendarEventID = eventID
	m.tasks[taskID] = t
	return nil
}

func (m *mockRepo) GetUser(ctx context.Context, id string) (model.User, error) {
	return m.users[id], nil
}

func (m *mockRepo) UpsertUser(ctx context.Context, u model.User) (model.User, error) {
	m.users[u.ID] = u
	return u, nil
}

func (m *mockRepo) UpsertGoogleToken(ctx context.Context, token model.GoogleToken) error {
	m.tokens[token.UserID] = token
	return nil
}

func (m *mockRepo) GetGoogleToken(ctx context.Context, userID string) (model.GoogleToken, error) {
	return m.tokens[userID], nil
}

func (m *mockRepo) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	if m.failNotify {
		return model.Notification{}, errDB
	}
	n.ID = fmt.Sprintf("n-%d", len(m.notifications)+1)
	m.notifications = append(m.notifications, n)
	return n, nil
}

type mockSender struct {
	channel   model.NotificationChannel
	messageID string
	err       error
	calls     int
}

func (m *mockSender) Channel() model.NotificationChannel { return m.channel }

func (m *mockSender) SendDeadlineReminder(ctx context.Context, user model.User, t model.Task) (string, error) {
	m.calls++
	return m.messageID, m.err
}

type mockCalendar struct {
	eventID     string
	err         error
	gotExisting string
}

func (m *mockCalendar) UpsertCalendarEvent(ctx context.Context, user model.User, t model.Task, existingEventID string) (string, error) {
	m.gotExisting = existingEventID
	if m.err != nil {
		return "", m.err
	}
	if existingEventID != "" {
		return existingEventID, nil
	}
	return m.eventID, nil
}

var refNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return refNow }
