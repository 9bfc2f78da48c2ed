package model

import "fmt"

// TaskStatus is the lifecycle state of a task.
type TaskStatus uint8

const (
	StatusPending TaskStatus = iota + 1
	StatusInProgress
	StatusCompleted
	StatusMissed
)

var statusNames = map[TaskStatus]string{
	StatusPending:    "pending",
	StatusInProgress: "in_progress",
	StatusCompleted:  "completed",
	StatusMissed:     "missed",
}

// TaskStatuses lists every valid status.
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusMissed}

func (s TaskStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TaskStatus(%d)", uint8(s))
}

// Valid reports whether s is one of the declared statuses.
func (s TaskStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsActive reports whether s is Pending or InProgress.
func (s TaskStatus) IsActive() bool {
	switch s {
	case StatusPending, StatusInProgress:
		return true
	case StatusCompleted, StatusMissed:
		return false
	}
	return false
}

// IsClosed reports whether s is Completed or Missed.
func (s TaskStatus) IsClosed() bool {
	return s == StatusCompleted || s == StatusMissed
}

// ParseTaskStatus converts the wire name into a TaskStatus.
func ParseTaskStatus(v string) (TaskStatus, error) {
	for s, name := range statusNames {
		if name == v {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: status %q", ErrInvalidEnum, v)
}

func (s TaskStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: status %d", ErrInvalidEnum, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *TaskStatus) UnmarshalText(b []byte) error {
	v, err := ParseTaskStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
