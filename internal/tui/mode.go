// Package tui provides the terminal user interface for todo: a single
// page with the task list, the draft input, and the search field.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeList    Mode = iota // Default navigation mode
	ModeInput               // Draft text input (add or edit)
	ModeSearch              // Search text input
	ModeConfirm             // Confirmation dialog mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeInput:
		return "input"
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInput || m == ModeSearch
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete the selected task
	ConfirmClear                // Delete all completed tasks
)

// Question returns the text shown in the confirmation dialog.
func (a ConfirmAction) Question() string {
	switch a {
	case ConfirmDelete:
		return "Delete this task?"
	case ConfirmClear:
		return "Delete all completed tasks?"
	default:
		return ""
	}
}
