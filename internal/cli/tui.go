package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mhnuk2007/todoAppTutorial/internal/app"
	"github.com/mhnuk2007/todoAppTutorial/internal/infra/prompt"
	"github.com/mhnuk2007/todoAppTutorial/internal/tui"
	"github.com/mhnuk2007/todoAppTutorial/internal/view"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task list",
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

func launchTUI(c *app.Container) error {
	// The TUI runs its own confirmation dialog, so the store must not
	// prompt a second time.
	s, err := c.StoreWith(prompt.AlwaysYes{})
	if err != nil {
		return err
	}

	sort, err := view.ParseSortOrder(c.Config.Sort)
	if err != nil {
		sort = view.SortNewest
	}

	m := tui.New(s, sort)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
