package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
	"github.com/mhnuk2007/todoAppTutorial/internal/store"
	"github.com/mhnuk2007/todoAppTutorial/internal/view"
)

// Model is the main bubbletea model for the TUI.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	store *store.TaskStore
	err   error

	// Components
	keys        KeyMap
	styles      Styles
	textInput   textinput.Model
	searchInput textinput.Model

	// View state
	filter view.StatusFilter
	sort   view.SortOrder

	// Numeric state
	mode          Mode
	confirmAction ConfirmAction
	confirmID     int
	cursor        int
	width         int
	height        int
}

// New creates a new TUI Model over a loaded store.
// The store must be built with a confirmer that always answers yes: the
// TUI runs its own confirmation dialog and only calls the destructive
// operation after the user pressed y.
func New(s *store.TaskStore, sort view.SortOrder) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = 200

	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 100

	return &Model{
		store:       s,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		textInput:   ti,
		searchInput: si,
		filter:      view.FilterAll,
		sort:        sort,
		mode:        ModeList,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// visibleTasks computes the projection for the current filter fields.
func (m *Model) visibleTasks() []domain.Task {
	return view.Project(m.store.Tasks(), view.Query{
		Search: m.searchInput.Value(),
		Status: m.filter,
		Sort:   m.sort,
	})
}

// selectedTask returns the task under the cursor.
func (m *Model) selectedTask() (domain.Task, bool) {
	tasks := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.cursor], true
}

// clampCursor keeps the cursor inside the visible list.
func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// cycleFilter advances the status filter: All, Pending, In Progress,
// Completed, back to All.
func (m *Model) cycleFilter() {
	switch m.filter {
	case view.FilterAll:
		m.filter = view.StatusFilter(domain.StatusPending)
	case view.StatusFilter(domain.StatusPending):
		m.filter = view.StatusFilter(domain.StatusInProgress)
	case view.StatusFilter(domain.StatusInProgress):
		m.filter = view.StatusFilter(domain.StatusCompleted)
	default:
		m.filter = view.FilterAll
	}
	m.clampCursor()
}

// toggleSort flips between newest-first and oldest-first.
func (m *Model) toggleSort() {
	if m.sort == view.SortNewest {
		m.sort = view.SortOldest
	} else {
		m.sort = view.SortNewest
	}
}
