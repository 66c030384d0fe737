// Package view computes the display projection of the task collection.
// The projection is derived state: it is recomputed per render and never
// written back to the store.
package view

import (
	"slices"
	"strings"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
)

// SortOrder selects the display ordering by creation time.
type SortOrder string

const (
	SortNewest SortOrder = "newest" // Newest first
	SortOldest SortOrder = "oldest" // Oldest first
)

// ParseSortOrder parses user input into a SortOrder.
func ParseSortOrder(value string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "newest", "":
		return SortNewest, nil
	case "oldest":
		return SortOldest, nil
	default:
		return "", domain.ErrInvalidSortOrder
	}
}

// StatusFilter selects tasks by status. FilterAll is a sentinel, not a
// real status value; the zero value behaves like FilterAll.
type StatusFilter string

// FilterAll matches every task regardless of status.
const FilterAll StatusFilter = "All"

// Query holds the transient UI filter fields.
type Query struct {
	Search string
	Status StatusFilter
	Sort   SortOrder
}

// Project returns the tasks to display for the given query: filtered by
// status, then by case-folded substring search, then sorted by creation
// time. The sort is stable so ties keep their stored (insertion) order.
// The input slice is never mutated; a fresh slice is returned.
func Project(tasks []domain.Task, q Query) []domain.Task {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Status != FilterAll && q.Status != "" && string(t.Status) != string(q.Status) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Text), search) {
			continue
		}
		out = append(out, t)
	}

	// Compare the timestamp values, not their string forms.
	slices.SortStableFunc(out, func(a, b domain.Task) int {
		c := a.CreatedDate.Compare(b.CreatedDate)
		if q.Sort == SortNewest {
			return -c
		}
		return c
	})

	return out
}
