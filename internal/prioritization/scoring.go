package prioritization

import (
	"time"

	"deadline-sync/internal/model"
)

const (
	MaxScore = 100.0

	completedFactor = 0.1
	missedFactor    = 0.05

	lastHourFactor = 2.0
	lastDayFactor  = 1.5
	lastWeekFactor = 1.2
	overdueFactor  = 2.0
)

// BaseScore returns the starting score for a priority level.
func BaseScore(p model.TaskPriority) float64 {
	switch p {
	case model.PriorityLow:
		return 20
	case model.PriorityMedium:
		return 50
	case model.PriorityHigh:
		return 75
	case model.PriorityCritical:
		return 100
	}
	return 50
}

// Score computes the 0-100 urgency score of t at now.
func Score(t model.Task, now time.Time) float64 {
	score := BaseScore(t.Priority)

	switch t.Status {
	case model.StatusCompleted:
		score *= completedFactor
	case model.StatusMissed:
		score *= missedFactor
	case model.StatusPending, model.StatusInProgress:
	}

	if left, ok := t.TimeRemaining(now); ok {
		hours := left.Hours()
		switch {
		case hours < 1:
			score *= lastHourFactor
		case hours < 24:
			score *= lastDayFactor
		case hours < 7*24:
			score *= lastWeekFactor
		}
	} else if t.Status == model.StatusCompleted {
		// NOTE: an overdue completed task is dampened a second time here on top
		// of completedFactor above (net 0.01 of base). Kept as observed; it is
		// unclear whether the double penalty was intended.
		score *= completedFactor
	} else {
		score *= overdueFactor
	}

	if score > MaxScore {
		return MaxScore
	}
	return score
}
