package prioritization

import (
	"sort"
	"time"

	"deadline-sync/internal/model"
)

// PastLimit caps the number of closed tasks returned by Rank.
const PastLimit = 50

// Ranking is the prioritized view of a task collection.
type Ranking struct {
	Recommended *TaskView
	Upcoming    []TaskView
	Past        []TaskView
}

// Rank partitions tasks into active and past, orders both and picks the
// recommended task. The input slice is not modified.
func Rank(tasks []model.Task, now time.Time) Ranking {
	active := make([]TaskView, 0, len(tasks))
	past := make([]TaskView, 0)

	for _, t := range tasks {
		switch t.Status {
		case model.StatusPending, model.StatusInProgress:
			active = append(active, Describe(t, now))
		case model.StatusCompleted, model.StatusMissed:
			past = append(past, Describe(t, now))
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Score != active[j].Score {
			return active[i].Score > active[j].Score
		}
		return active[i].Task.Deadline.Before(active[j].Task.Deadline)
	})

	sort.SliceStable(past, func(i, j int) bool {
		return closedAt(past[i].Task).After(closedAt(past[j].Task))
	})
	if len(past) > PastLimit {
		past = past[:PastLimit]
	}

	r := Ranking{Upcoming: active, Past: past}
	if len(active) > 0 {
		first := active[0]
		r.Recommended = &first
	}
	return r
}

func closedAt(t model.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return t.Deadline
}
