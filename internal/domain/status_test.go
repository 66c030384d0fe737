package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Toggle_PendingRoundTrip(t *testing.T) {
	s := StatusPending
	s = s.Toggle()
	assert.Equal(t, StatusCompleted, s)
	s = s.Toggle()
	assert.Equal(t, StatusPending, s)
}

func TestStatus_Toggle_InProgressBecomesCompleted(t *testing.T) {
	assert.Equal(t, StatusCompleted, StatusInProgress.Toggle())
}

func TestStatus_Toggle_NeverYieldsInProgress(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.NotEqual(t, StatusInProgress, s.Toggle(), "toggle of %q", s)
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), "%q should be valid", s)
	}
	assert.False(t, Status("completed").IsValid(), "casing matters in the persisted form")
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("Done").IsValid())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"pending", StatusPending},
		{"Pending", StatusPending},
		{"todo", StatusPending},
		{"in-progress", StatusInProgress},
		{"In Progress", StatusInProgress},
		{"inprogress", StatusInProgress},
		{"completed", StatusCompleted},
		{"done", StatusCompleted},
		{"  done  ", StatusCompleted},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	_, err := ParseStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
