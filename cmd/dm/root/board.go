package root

import (
	"context"

	"github.com/spf13/cobra"

	"daymark/internal/engine"
	"daymark/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sched := engine.NewScheduler(svc.Tasks(), nil, engine.SchedulerOptions{
				Interval: cfg.Remind.Interval,
				Window:   cfg.Remind.Window,
				Once:     cfg.Remind.Once,
			})
			return tui.RunWatch(ctx, svc, sched, cfg.Remind.Interval, cmd.OutOrStdout())
		},
	}

	return cmd
}
