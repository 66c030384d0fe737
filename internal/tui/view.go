package tui

import (
	"fmt"
	"strings"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
	"github.com/mhnuk2007/todoAppTutorial/internal/view"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeSearch {
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	} else if m.searchInput.Value() != "" {
		b.WriteString(m.styles.Counts.Render("Search: "+m.searchInput.Value()) + "\n\n")
	}

	b.WriteString(m.viewTaskList())

	switch m.mode {
	case ModeInput:
		b.WriteString("\n")
		b.WriteString(m.viewDraftInput())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.styles.ConfirmBox.Render(m.confirmAction.Question() + " (y/n)"))
		b.WriteString("\n")
	case ModeList, ModeSearch:
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

// viewHeader renders the title line with counts and view settings.
func (m *Model) viewHeader() string {
	counts := fmt.Sprintf("%d pending / %d completed",
		m.store.PendingCount(), m.store.CompletedCount())

	filter := "All"
	if m.filter != view.FilterAll && m.filter != "" {
		filter = string(m.filter)
	}
	settings := fmt.Sprintf("filter: %s | sort: %s", filter, m.sort)

	return m.styles.Header.Render("Tasks") + "  " +
		m.styles.Counts.Render(counts+"  ("+settings+")")
}

// viewTaskList renders the visible tasks.
func (m *Model) viewTaskList() string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return m.styles.Counts.Render("No tasks. Press a to add one.") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor && m.mode != ModeInput {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s #%d %s", cursor, statusIcon(t.Status), t.ID, t.Text)
		switch {
		case i == m.cursor && m.mode != ModeInput:
			line = m.styles.RowSelected.Render(line)
		case t.Status == domain.StatusCompleted:
			line = m.styles.RowDone.Render(line)
		case t.Status == domain.StatusInProgress:
			line = m.styles.StatusTag.Render(line)
		default:
			line = m.styles.Row.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// viewDraftInput renders the add/edit input box.
func (m *Model) viewDraftInput() string {
	label := "Add task: "
	if draft := m.store.Draft(); !draft.IsNew() {
		label = fmt.Sprintf("Edit task #%d: ", draft.ID)
	}
	return m.styles.InputPrompt.Render(label) + m.textInput.View() + "\n"
}

// viewFooter renders the key help line.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeInput:
		return m.styles.Footer.Render("enter save • esc cancel")
	case ModeSearch:
		return m.styles.Footer.Render("enter apply • esc clear")
	case ModeConfirm:
		return m.styles.Footer.Render("y confirm • n/esc cancel")
	default:
		return m.styles.Footer.Render(
			"a add • e edit • space toggle • d delete • c clear done • / search • f filter • s sort • q quit")
	}
}

func statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusCompleted:
		return "[x]"
	case domain.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}
