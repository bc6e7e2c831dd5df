package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"daymark/internal/engine"
	"daymark/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var due string

	cmd := &cobra.Command{
		Use:   "add <summary>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("summary is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := svc.Tasks().Create(ctx, args[0], desc, due)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("%s #%d %s", ui.Good.Render(ui.IconPlus+" Added"), task.ID, task.Summary)
			if dueAt, ok := engine.ParseDueDate(task.DueDate); ok {
				line += " " + ui.Muted.Render(ui.IconClock+" due "+dueAt.Format("Jan 2 15:04"))
			} else if task.DueDate != "" {
				line += " " + ui.Warn.Render(ui.IconWarn+" due date not recognized, no reminder will fire")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Task description")
	cmd.Flags().StringVar(&due, "due", "", "Due date/time (e.g. 2024-05-14T09:30)")

	return cmd
}
