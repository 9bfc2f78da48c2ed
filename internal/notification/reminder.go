// Package notification renders deadline reminders shared by every delivery channel.
package notification

import (
	"fmt"
	"strings"

	"deadline-sync/internal/model"
)

const (
	// DueLayout formats deadlines in reminders. Deadlines are stored in UTC.
	DueLayout = "2006-01-02 15:04 UTC"

	noDescription = "No description"
	signature     = "-- Deadline Sync"
)

// ReminderSubject returns the subject line of a deadline reminder.
func ReminderSubject(t model.Task) string {
	return "Deadline Reminder: " + t.Title
}

// ReminderBody returns the plain-text body of a deadline reminder.
func ReminderBody(user model.User, t model.Task) string {
	description := strings.TrimSpace(t.Description)
	if description == "" {
		description = noDescription
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s,\n\n", user.Name)
	fmt.Fprintf(&sb, "This is a reminder for your deadline: %s\n", t.Title)
	fmt.Fprintf(&sb, "Due: %s\n", t.Deadline.UTC().Format(DueLayout))
	fmt.Fprintf(&sb, "Status: %s\n\n", t.Status)
	fmt.Fprintf(&sb, "Description:\n%s\n\n", description)
	sb.WriteString(signature)
	return sb.String()
}
