// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task is a single to-do entry.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedDate time.Time `json:"createdDate"` // Creation time, immutable after Add
	Text        string    `json:"text"`        // Task text (non-empty once stored)
	Status      Status    `json:"status"`      // Current status
	ID          int       `json:"id"`          // Task ID (0 = draft, not yet stored)
}

// Clone returns a structural copy of the task.
// The draft must never alias a record inside the collection, so every
// placement into or out of the draft goes through Clone.
func (t Task) Clone() Task {
	return t
}

// IsNew reports whether the task is an unstored draft (add mode).
func (t Task) IsNew() bool {
	return t.ID == 0
}

// NewDraft returns the empty draft sentinel: id 0, Pending, empty text.
func NewDraft(now time.Time) Task {
	return Task{
		ID:          0,
		Text:        "",
		Status:      StatusPending,
		CreatedDate: now,
	}
}

// LegacyTaskID reproduces the id formula used by earlier versions:
// task count + 1 + weekday (0-6) + millisecond of the clock (0-999).
// The result is usually distinct within a session but not guaranteed
// unique; callers must guard against collisions themselves.
func LegacyTaskID(count int, now time.Time) int {
	return count + 1 + int(now.Weekday()) + now.Nanosecond()/int(time.Millisecond)
}
