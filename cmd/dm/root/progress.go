package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daymark/internal/ui"
)

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the completion percentage",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			all := svc.Tasks().List()
			done := len(svc.Tasks().Completed())

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, "Progress"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.ProgressBar(svc.Progress(), 30))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%d of %d tasks completed", done, len(all))))
			return nil
		},
	}
}
