package notification_test

import (
	"strings"
	"testing"
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/notification"
)

func TestReminderBody(t *testing.T) {
	user := model.User{Name: "Ada"}
	task := model.Task{
		Title:    "Quarterly report",
		Deadline: time.Date(2026, 3, 2, 9, 30, 0, 0, time.FixedZone("ICT", 7*3600)),
		Status:   model.StatusInProgress,
	}

	if got := notification.ReminderSubject(task); got != "Deadline Reminder: Quarterly report" {
		t.Errorf("unexpected subject: %q", got)
	}

	body := notification.ReminderBody(user, task)
	for _, want := range []string{
		"Hello Ada,",
		"deadline: Quarterly report",
		"Due: 2026-03-02 02:30 UTC",
		"Status: in_progress",
		"Description:\nNo description",
		"-- Deadline Sync",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in body:\n%s", want, body)
		}
	}

	task.Description = "Numbers for Q1"
	if body := notification.ReminderBody(user, task); !strings.Contains(body, "Description:\nNumbers for Q1") {
		t.Errorf("expected description in body:\n%s", body)
	}
}
