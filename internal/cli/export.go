package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mhnuk2007/todoAppTutorial/internal/app"
	"github.com/mhnuk2007/todoAppTutorial/internal/store"
)

// newExportCommand creates the export command, which writes the whole
// task list to stdout in a machine-readable format.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list to stdout",
		Long: `Write the task list to stdout as JSON or YAML.

The JSON output is identical to the persisted blob, so it can be used
as a backup and restored by copying it into the data directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.Store()
			if err != nil {
				return err
			}

			records := store.RecordsFromTasks(s.Tasks())
			var out []byte
			switch format {
			case "json":
				out, err = json.MarshalIndent(records, "", "  ")
			case "yaml":
				out, err = yaml.Marshal(records)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode tasks: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")

	return cmd
}
