package view

import (
	"testing"
	"time"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskAt(id int, text string, status domain.Status, created time.Time) domain.Task {
	return domain.Task{ID: id, Text: text, Status: status, CreatedDate: created}
}

func texts(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}

func TestProject_FilterAndSearchCompose(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		taskAt(1, "buy milk", domain.StatusPending, now),
		taskAt(2, "buy bread", domain.StatusCompleted, now.Add(time.Minute)),
		taskAt(3, "call bank", domain.StatusPending, now.Add(2*time.Minute)),
	}

	got := Project(tasks, Query{Search: "buy", Status: StatusFilter(domain.StatusPending), Sort: SortOldest})
	assert.Equal(t, []string{"buy milk"}, texts(got))
}

func TestProject_SearchIsCaseFolded(t *testing.T) {
	now := time.Now()
	tasks := []domain.Task{
		taskAt(1, "Buy MILK", domain.StatusPending, now),
		taskAt(2, "call bank", domain.StatusPending, now),
	}

	got := Project(tasks, Query{Search: "  mIlK ", Status: FilterAll})
	assert.Equal(t, []string{"Buy MILK"}, texts(got))
}

func TestProject_SortNewestAndOldest(t *testing.T) {
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)
	tasks := []domain.Task{
		taskAt(1, "first", domain.StatusPending, t1),
		taskAt(2, "second", domain.StatusPending, t2),
		taskAt(3, "third", domain.StatusPending, t3),
	}

	newest := Project(tasks, Query{Status: FilterAll, Sort: SortNewest})
	assert.Equal(t, []string{"third", "second", "first"}, texts(newest))

	oldest := Project(tasks, Query{Status: FilterAll, Sort: SortOldest})
	assert.Equal(t, []string{"first", "second", "third"}, texts(oldest))
}

func TestProject_EqualTimestampsKeepInsertionOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		taskAt(1, "a", domain.StatusPending, now),
		taskAt(2, "b", domain.StatusPending, now),
		taskAt(3, "c", domain.StatusPending, now),
	}

	for _, sort := range []SortOrder{SortNewest, SortOldest} {
		got := Project(tasks, Query{Status: FilterAll, Sort: sort})
		assert.Equal(t, []string{"a", "b", "c"}, texts(got), "sort %q", sort)
	}
}

func TestProject_AllSentinelAndZeroValue(t *testing.T) {
	now := time.Now()
	tasks := []domain.Task{
		taskAt(1, "a", domain.StatusPending, now),
		taskAt(2, "b", domain.StatusCompleted, now),
	}

	assert.Len(t, Project(tasks, Query{Status: FilterAll}), 2)
	assert.Len(t, Project(tasks, Query{}), 2, "zero-value filter matches everything")
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		taskAt(1, "late", domain.StatusPending, t1.Add(time.Hour)),
		taskAt(2, "early", domain.StatusPending, t1),
	}

	_ = Project(tasks, Query{Status: FilterAll, Sort: SortOldest})

	assert.Equal(t, []string{"late", "early"}, texts(tasks), "input order is untouched")
}

func TestProject_EmptyInput(t *testing.T) {
	got := Project(nil, Query{Status: FilterAll, Sort: SortNewest})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseSortOrder(t *testing.T) {
	got, err := ParseSortOrder("newest")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, got)

	got, err = ParseSortOrder("Oldest")
	require.NoError(t, err)
	assert.Equal(t, SortOldest, got)

	got, err = ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, got, "empty input falls back to the default order")

	_, err = ParseSortOrder("sideways")
	assert.ErrorIs(t, err, domain.ErrInvalidSortOrder)
}
