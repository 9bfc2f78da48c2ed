package prioritization_test

import (
	"fmt"
	"testing"
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/prioritization"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestRankEmpty(t *testing.T) {
	r := prioritization.Rank(nil, refNow)
	if r.Recommended != nil {
		t.Errorf("expected no recommendation, got %+v", r.Recommended)
	}
	if len(r.Upcoming) != 0 || len(r.Past) != 0 {
		t.Errorf("expected empty lists, got %d upcoming / %d past", len(r.Upcoming), len(r.Past))
	}
}

func TestRankOrdering(t *testing.T) {
	tasks := []model.Task{
		{ID: "low-soon", Priority: model.PriorityLow, Status: model.StatusPending, Deadline: refNow.Add(48 * time.Hour)},
		{ID: "high-later", Priority: model.PriorityHigh, Status: model.StatusPending, Deadline: refNow.Add(20 * 24 * time.Hour)},
		{ID: "high-sooner", Priority: model.PriorityHigh, Status: model.StatusInProgress, Deadline: refNow.Add(10 * 24 * time.Hour)},
		{ID: "critical-hour", Priority: model.PriorityCritical, Status: model.StatusPending, Deadline: refNow.Add(30 * time.Minute)},
		{ID: "done-old", Priority: model.PriorityHigh, Status: model.StatusCompleted, Deadline: refNow.Add(-72 * time.Hour), CompletedAt: ptrTime(refNow.Add(-80 * time.Hour))},
		{ID: "missed-no-completion", Priority: model.PriorityLow, Status: model.StatusMissed, Deadline: refNow.Add(-time.Hour)},
		{ID: "done-recent", Priority: model.PriorityLow, Status: model.StatusCompleted, Deadline: refNow.Add(24 * time.Hour), CompletedAt: ptrTime(refNow.Add(-10 * time.Minute))},
	}

	r := prioritization.Rank(tasks, refNow)

	wantUpcoming := []string{"critical-hour", "high-sooner", "high-later", "low-soon"}
	if got := ids(r.Upcoming); fmt.Sprint(got) != fmt.Sprint(wantUpcoming) {
		t.Errorf("upcoming: expected %v, got %v", wantUpcoming, got)
	}

	wantPast := []string{"done-recent", "missed-no-completion", "done-old"}
	if got := ids(r.Past); fmt.Sprint(got) != fmt.Sprint(wantPast) {
		t.Errorf("past: expected %v, got %v", wantPast, got)
	}

	if r.Recommended == nil || r.Recommended.Task.ID != r.Upcoming[0].Task.ID {
		t.Errorf("recommended must equal first upcoming task, got %+v", r.Recommended)
	}

	if tasks[0].ID != "low-soon" {
		t.Error("input slice was reordered")
	}
}

func TestRankTieBreakByDeadline(t *testing.T) {
	// Both tasks are High, more than a week out: equal score of 75.
	later := model.Task{ID: "later", Priority: model.PriorityHigh, Status: model.StatusPending, Deadline: refNow.Add(12 * 24 * time.Hour)}
	sooner := model.Task{ID: "sooner", Priority: model.PriorityHigh, Status: model.StatusPending, Deadline: refNow.Add(9 * 24 * time.Hour)}

	r := prioritization.Rank([]model.Task{later, sooner}, refNow)
	if r.Upcoming[0].Task.ID != "sooner" {
		t.Errorf("expected earlier deadline first, got %v", ids(r.Upcoming))
	}
	if r.Recommended.Task.ID != "sooner" {
		t.Errorf("expected sooner recommended, got %s", r.Recommended.Task.ID)
	}
}

func TestRankOnlyPast(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Priority: model.PriorityLow, Status: model.StatusCompleted, Deadline: refNow, CompletedAt: ptrTime(refNow)},
	}
	r := prioritization.Rank(tasks, refNow)
	if r.Recommended != nil {
		t.Error("expected no recommendation without active tasks")
	}
	if len(r.Past) != 1 {
		t.Errorf("expected 1 past task, got %d", len(r.Past))
	}
}

func TestRankTruncatesPast(t *testing.T) {
	tasks := make([]model.Task, 0, 60)
	for i := 0; i < 60; i++ {
		tasks = append(tasks, model.Task{
			ID:       fmt.Sprintf("t%02d", i),
			Priority: model.PriorityMedium,
			Status:   model.StatusMissed,
			Deadline: refNow.Add(-time.Duration(i+1) * time.Hour),
		})
	}

	r := prioritization.Rank(tasks, refNow)
	if len(r.Past) != prioritization.PastLimit {
		t.Fatalf("expected %d past tasks, got %d", prioritization.PastLimit, len(r.Past))
	}
	if r.Past[0].Task.ID != "t00" || r.Past[49].Task.ID != "t49" {
		t.Errorf("expected newest 50 tasks, got first=%s last=%s", r.Past[0].Task.ID, r.Past[49].Task.ID)
	}
}

func ids(views []prioritization.TaskView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Task.ID
	}
	return out
}
