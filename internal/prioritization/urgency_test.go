package prioritization_test

import (
	"testing"

	"deadline-sync/internal/prioritization"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  prioritization.UrgencyLevel
	}{
		{score: 0, want: prioritization.UrgencyLow},
		{score: 24.999, want: prioritization.UrgencyLow},
		{score: 25, want: prioritization.UrgencyMedium},
		{score: 49.9, want: prioritization.UrgencyMedium},
		{score: 50, want: prioritization.UrgencyHigh},
		{score: 74.99, want: prioritization.UrgencyHigh},
		{score: 75, want: prioritization.UrgencyCritical},
		{score: 100, want: prioritization.UrgencyCritical},
	}

	for _, tt := range tests {
		if got := prioritization.Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v): expected %v, got %v", tt.score, tt.want, got)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := prioritization.Classify(0)
	for s := 0.0; s <= 100; s += 0.25 {
		cur := prioritization.Classify(s)
		if cur < prev {
			t.Fatalf("Classify(%v)=%v is lower than previous %v", s, cur, prev)
		}
		prev = cur
	}
}

func TestUrgencyString(t *testing.T) {
	names := map[prioritization.UrgencyLevel]string{
		prioritization.UrgencyLow:      "LOW",
		prioritization.UrgencyMedium:   "MEDIUM",
		prioritization.UrgencyHigh:     "HIGH",
		prioritization.UrgencyCritical: "CRITICAL",
	}
	for level, name := range names {
		if level.String() != name {
			t.Errorf("expected %s, got %s", name, level.String())
		}
	}
}
