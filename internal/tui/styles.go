package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Selected lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Success:  lipgloss.Color("#00B894"), // Green
	Warning:  lipgloss.Color("#FDCB6E"), // Yellow
	Selected: lipgloss.Color("#FFEAA7"), // Yellow (selected row)
}

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	App         lipgloss.Style
	Header      lipgloss.Style
	Counts      lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	RowDone     lipgloss.Style
	StatusTag   lipgloss.Style
	InputPrompt lipgloss.Style
	ConfirmBox  lipgloss.Style
	ErrorMsg    lipgloss.Style
	Footer      lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:         lipgloss.NewStyle().Padding(1, 2),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Counts:      lipgloss.NewStyle().Foreground(Colors.Muted),
		Row:         lipgloss.NewStyle(),
		RowSelected: lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		RowDone:     lipgloss.NewStyle().Foreground(Colors.Muted).Strikethrough(true),
		StatusTag:   lipgloss.NewStyle().Foreground(Colors.Warning),
		InputPrompt: lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Error).
			Padding(0, 1),
		ErrorMsg: lipgloss.NewStyle().Foreground(Colors.Error),
		Footer:   lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}
