package domain

import "strings"

// Status represents the lifecycle state of a task.
// The constant values are the exact literals used in the persisted blob,
// so they must not change without migrating stored data.
type Status string

const (
	StatusPending    Status = "Pending"     // Created, not started
	StatusInProgress Status = "In Progress" // Being worked on
	StatusCompleted  Status = "Completed"   // Done
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Toggle flips completion: Completed becomes Pending, anything else
// becomes Completed. Toggling never yields In Progress; that state is
// only reachable through an explicit edit.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// ParseStatus parses user input into a Status. It accepts the persisted
// literals as well as the compact spellings used on the command line.
func ParseStatus(value string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pending", "todo":
		return StatusPending, nil
	case "in progress", "in-progress", "inprogress":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}
