package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_Clone_Independent(t *testing.T) {
	orig := Task{
		ID:          3,
		Text:        "buy milk",
		Status:      StatusPending,
		CreatedDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	clone := orig.Clone()
	clone.Text = "buy bread"
	clone.Status = StatusCompleted

	assert.Equal(t, "buy milk", orig.Text)
	assert.Equal(t, StatusPending, orig.Status)
	assert.Equal(t, orig.CreatedDate, clone.CreatedDate)
}

func TestNewDraft_Sentinel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d := NewDraft(now)

	assert.True(t, d.IsNew())
	assert.Equal(t, 0, d.ID)
	assert.Equal(t, "", d.Text)
	assert.Equal(t, StatusPending, d.Status)
	assert.Equal(t, now, d.CreatedDate)
}

func TestLegacyTaskID_Formula(t *testing.T) {
	// Sunday (weekday 0), 250ms into the second.
	now := time.Date(2025, 6, 1, 12, 0, 0, 250_000_000, time.UTC)
	assert.Equal(t, 0+1+0+250, LegacyTaskID(0, now))
	assert.Equal(t, 5+1+0+250, LegacyTaskID(5, now))

	// Wednesday (weekday 3), 999ms.
	now = time.Date(2025, 6, 4, 12, 0, 0, 999_000_000, time.UTC)
	assert.Equal(t, 2+1+3+999, LegacyTaskID(2, now))
}
