package model

import "fmt"

// TaskPriority is the user-assigned importance of a task.
type TaskPriority uint8

const (
	PriorityLow TaskPriority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var priorityNames = map[TaskPriority]string{
	PriorityLow:      "low",
	PriorityMedium:   "medium",
	PriorityHigh:     "high",
	PriorityCritical: "critical",
}

// TaskPriorities lists every valid priority.
var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p TaskPriority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("TaskPriority(%d)", uint8(p))
}

// Valid reports whether p is one of the declared priorities.
func (p TaskPriority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

// ParseTaskPriority converts the wire name into a TaskPriority.
func ParseTaskPriority(v string) (TaskPriority, error) {
	for p, name := range priorityNames {
		if name == v {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: priority %q", ErrInvalidEnum, v)
}

func (p TaskPriority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: priority %d", ErrInvalidEnum, uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *TaskPriority) UnmarshalText(b []byte) error {
	v, err := ParseTaskPriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
