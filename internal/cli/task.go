package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mhnuk2007/todoAppTutorial/internal/app"
	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
	"github.com/mhnuk2007/todoAppTutorial/internal/infra/prompt"
	"github.com/mhnuk2007/todoAppTutorial/internal/view"
)

const createdTimeFormat = "2006-01-02 15:04"

// parseTaskID parses a task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// parseStatusFilter parses a --status flag value. "all" (or empty) is
// the sentinel that matches everything.
func parseStatusFilter(value string) (view.StatusFilter, error) {
	if value == "" || strings.EqualFold(value, "all") {
		return view.FilterAll, nil
	}
	status, err := domain.ParseStatus(value)
	if err != nil {
		return "", err
	}
	return view.StatusFilter(status), nil
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The store itself treats empty text as a silent no-op;
			// here the text came from the user, so report it.
			if strings.TrimSpace(args[0]) == "" {
				return domain.ErrEmptyText
			}

			s, err := c.Store()
			if err != nil {
				return err
			}

			s.SetDraftText(args[0])
			if err := s.Add(); err != nil {
				return err
			}

			tasks := s.Tasks()
			created := tasks[len(tasks)-1]
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d\n", created.ID)
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		Search string
		Sort   string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by status, text search, and sort order.

Examples:
  todo list
  todo list --status pending
  todo list --search milk --sort oldest`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := parseStatusFilter(opts.Status)
			if err != nil {
				return err
			}
			sortValue := opts.Sort
			if sortValue == "" {
				sortValue = c.Config.Sort
			}
			sort, err := view.ParseSortOrder(sortValue)
			if err != nil {
				return err
			}

			s, err := c.Store()
			if err != nil {
				return err
			}

			tasks := view.Project(s.Tasks(), view.Query{
				Search: opts.Search,
				Status: filter,
				Sort:   sort,
			})
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tSTATUS\tCREATED\tTEXT")
			for _, t := range tasks {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					t.ID, t.Status, t.CreatedDate.Local().Format(createdTimeFormat), t.Text)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "all", "Filter by status (all, pending, in-progress, completed)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Keep only tasks containing this text")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort order: newest or oldest (default from config)")

	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Text   string
		Status string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's text or status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("text") && !cmd.Flags().Changed("status") {
				return domain.ErrNoFieldsToUpdate
			}
			if cmd.Flags().Changed("text") && strings.TrimSpace(opts.Text) == "" {
				return domain.ErrEmptyText
			}

			s, err := c.Store()
			if err != nil {
				return err
			}
			if err := s.StartEdit(id); err != nil {
				return err
			}
			if cmd.Flags().Changed("text") {
				s.SetDraftText(opts.Text)
			}
			if cmd.Flags().Changed("status") {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				s.SetDraftStatus(status)
			}
			if err := s.Update(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Text, "text", "", "New task text")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status (pending, in-progress, completed)")

	return cmd
}

// newDoneCommand creates the done command, which toggles completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			s, err := c.Store()
			if err != nil {
				return err
			}
			if _, ok := s.Get(id); !ok {
				return domain.ErrTaskNotFound
			}
			if err := s.Toggle(id); err != nil {
				return err
			}

			task, _ := s.Get(id)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", id, task.Status)
			return nil
		},
	}
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			confirm := c.Confirm
			if yes {
				confirm = prompt.AlwaysYes{}
			}
			s, err := c.StoreWith(confirm)
			if err != nil {
				return err
			}
			if _, ok := s.Get(id); !ok {
				return domain.ErrTaskNotFound
			}

			removed, err := s.Delete(id)
			if err != nil {
				return err
			}
			if !removed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// newClearCommand creates the clear command, which removes completed tasks.
func newClearCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirm := c.Confirm
			if yes {
				confirm = prompt.AlwaysYes{}
			}
			s, err := c.StoreWith(confirm)
			if err != nil {
				return err
			}

			removed, err := s.ClearCompleted()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed task(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.Store()
			if err != nil {
				return err
			}

			total := s.Len()
			pending := s.PendingCount()
			completed := s.CompletedCount()
			inProgress := total - pending - completed

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "Total\t%d\n", total)
			_, _ = fmt.Fprintf(w, "Pending\t%d\n", pending)
			_, _ = fmt.Fprintf(w, "In Progress\t%d\n", inProgress)
			_, _ = fmt.Fprintf(w, "Completed\t%d\n", completed)
			return w.Flush()
		},
	}
}
