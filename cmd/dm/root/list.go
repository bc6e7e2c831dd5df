package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daymark/internal/engine"
	"daymark/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks — "+svc.Identity()))
			fmt.Fprintln(out, ui.LabelValue("Progress", ui.ProgressBar(svc.Progress(), 20)))
			fmt.Fprintln(out, "")

			pending := svc.Tasks().Pending()
			completed := svc.Tasks().Completed()
			if len(pending) == 0 && len(completed) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks yet. Add one with `dm add`."))
				return nil
			}

			if len(pending) > 0 {
				fmt.Fprintln(out, ui.H2.Render("Pending"))
				for _, t := range pending {
					printTask(cmd, t)
				}
				fmt.Fprintln(out, "")
			}
			if len(completed) > 0 {
				fmt.Fprintln(out, ui.H2.Render("Completed"))
				for _, t := range completed {
					printTask(cmd, t)
				}
			}
			return nil
		},
	}

	return cmd
}

func printTask(cmd *cobra.Command, t engine.Task) {
	line := fmt.Sprintf("%s #%d %s", ui.Checkbox(t.Completed), t.ID, t.Summary)
	if due, ok := engine.ParseDueDate(t.DueDate); ok {
		line += " " + ui.Muted.Render(ui.IconClock+" "+due.Format("Jan 2 15:04"))
	}
	if t.Description != "" {
		line += "\n    " + ui.Muted.Render(t.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
