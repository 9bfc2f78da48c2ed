package prioritization

import (
	"time"

	"deadline-sync/internal/model"
)

// UpcomingWindow is the horizon used for Summary.Upcoming.
const UpcomingWindow = 7 * 24 * time.Hour

// Summary holds aggregate productivity statistics.
type Summary struct {
	Total                      int
	Completed                  int
	Pending                    int
	InProgress                 int
	Missed                     int
	CompletionRate             float64  // percent, 0 when Total is 0
	AverageCompletionTimeHours *float64 // nil when no task has CompletedAt
	Overdue                    int
	Upcoming                   int
}

// Summarize scans tasks once and aggregates them at now.
func Summarize(tasks []model.Task, now time.Time) Summary {
	var (
		s          Summary
		closedSum  float64
		closedSeen int
	)
	horizon := now.Add(UpcomingWindow)

	for _, t := range tasks {
		s.Total++

		switch t.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusPending:
			s.Pending++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusMissed:
			s.Missed++
		}

		if t.CompletedAt != nil {
			closedSum += t.CompletedAt.Sub(t.CreatedAt).Hours()
			closedSeen++
		}

		if t.IsOverdue(now) {
			s.Overdue++
		}

		if t.IsActive() && t.Deadline.After(now) && t.Deadline.Before(horizon) {
			s.Upcoming++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	if closedSeen > 0 {
		avg := closedSum / float64(closedSeen)
		s.AverageCompletionTimeHours = &avg
	}
	return s
}
