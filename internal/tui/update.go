package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInput:
		return m.handleInputKey(msg)
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.store.CancelEdit()
		m.textInput.SetValue("")
		m.textInput.Focus()
		m.mode = ModeInput

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selectedTask()
		if !ok {
			break
		}
		if err := m.store.StartEdit(task.ID); err != nil {
			m.err = err
			break
		}
		// Edit mode brings the draft into view at the top of the page.
		m.cursor = 0
		m.textInput.SetValue(m.store.Draft().Text)
		m.textInput.CursorEnd()
		m.textInput.Focus()
		m.mode = ModeInput

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selectedTask(); ok {
			m.err = m.store.Toggle(task.ID)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selectedTask(); ok {
			// Capture the id now; the draft may change before the
			// user answers.
			m.confirmID = task.ID
			m.confirmAction = ConfirmDelete
			m.mode = ModeConfirm
		}

	case key.Matches(msg, m.keys.Clear):
		if m.store.CompletedCount() > 0 {
			m.confirmAction = ConfirmClear
			m.mode = ModeConfirm
		}

	case key.Matches(msg, m.keys.Search):
		m.searchInput.Focus()
		m.mode = ModeSearch

	case key.Matches(msg, m.keys.Filter):
		m.cycleFilter()

	case key.Matches(msg, m.keys.Sort):
		m.toggleSort()

	case key.Matches(msg, m.keys.Escape):
		m.searchInput.SetValue("")
		m.err = nil
		m.clampCursor()
	}

	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commitDraft()
		return m, nil

	case tea.KeyEsc:
		m.store.CancelEdit()
		m.textInput.Reset()
		m.textInput.Blur()
		m.mode = ModeList
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// commitDraft pushes the input value into the draft and commits it,
// adding or updating depending on the draft's id.
func (m *Model) commitDraft() {
	m.store.SetDraftText(m.textInput.Value())

	var err error
	if m.store.Draft().IsNew() {
		err = m.store.Add()
	} else {
		err = m.store.Update()
	}
	m.err = err

	m.textInput.Reset()
	m.textInput.Blur()
	m.mode = ModeList
	m.clampCursor()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searchInput.Blur()
		m.mode = ModeList
		m.clampCursor()
		return m, nil

	case tea.KeyEsc:
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.mode = ModeList
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.applyConfirmed()

	case key.Matches(msg, m.keys.Escape), msg.String() == "n":
		// Declined: the whole operation is a no-op.
	default:
		return m, nil
	}

	m.mode = ModeList
	m.confirmAction = ConfirmNone
	m.confirmID = 0
	m.clampCursor()
	return m, nil
}

// applyConfirmed runs the pending destructive action. The store's
// confirmer always answers yes here; the user already confirmed in the
// dialog.
func (m *Model) applyConfirmed() {
	switch m.confirmAction {
	case ConfirmDelete:
		_, err := m.store.Delete(m.confirmID)
		m.err = err
	case ConfirmClear:
		_, err := m.store.ClearCompleted()
		m.err = err
	case ConfirmNone:
	}
}
