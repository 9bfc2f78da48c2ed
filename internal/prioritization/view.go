package prioritization

import (
	"time"

	"deadline-sync/internal/model"
)

// TaskView is a task together with the values derived from it at one instant.
type TaskView struct {
	Task               model.Task
	TimeRemainingHours float64 // 0 when overdue
	HoursUntilDeadline float64 // -1 when overdue
	IsOverdue          bool
	Score              float64
	Urgency            UrgencyLevel
}

// Describe derives the detailed view of t at now.
func Describe(t model.Task, now time.Time) TaskView {
	score := Score(t, now)
	v := TaskView{
		Task:               t,
		HoursUntilDeadline: -1,
		IsOverdue:          t.IsOverdue(now),
		Score:              score,
		Urgency:            Classify(score),
	}
	if left, ok := t.TimeRemaining(now); ok {
		v.TimeRemainingHours = left.Hours()
		v.HoursUntilDeadline = left.Hours()
	}
	return v
}

// DescribeAll derives views for every task in order.
func DescribeAll(tasks []model.Task, now time.Time) []TaskView {
	views := make([]TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = Describe(t, now)
	}
	return views
}
