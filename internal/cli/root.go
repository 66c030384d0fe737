// Package cli provides the command-line interface for todo.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mhnuk2007/todoAppTutorial/internal/app"
)

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "Single-user task list",
		Long: `todo is a small task list for one person.

Tasks live in a single JSON file under the data directory. Add, edit,
complete, search, filter, and sort them from the command line, or run
with no arguments to open the interactive UI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Default: launch the interactive UI
			return launchTUIFunc(c)
		},
	}

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newEditCommand(c),
		newDoneCommand(c),
		newDeleteCommand(c),
		newClearCommand(c),
		newStatsCommand(c),
		newExportCommand(c),
		newTUICommand(c),
	)

	return root
}
