package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"daymark/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			task, found, err := svc.Tasks().Toggle(ctx, id)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("No task #%d.", id)))
				return nil
			}

			if task.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render(ui.IconDone+" Completed"), task.ID, task.Summary)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Warn.Render("↩ Reopened"), task.ID, task.Summary)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", ui.ProgressBar(svc.Progress(), 20)))
			return nil
		},
	}

	return cmd
}
