package root

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"daymark/internal/engine"
	"daymark/internal/ui"
)

func newWatchCmd() *cobra.Command {
	var interval time.Duration
	var window time.Duration
	var once bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll for due reminders and print them",
		Long: `Poll the current account's tasks and print a reminder for every
incomplete task whose due time falls in the last minute. Runs until
interrupted. By default a due task is re-announced on every poll while it
stays in the window; --once announces each task a single time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("interval") {
				interval = cfg.Remind.Interval
			}
			if !cmd.Flags().Changed("window") {
				window = cfg.Remind.Window
			}
			if !cmd.Flags().Changed("once") {
				once = cfg.Remind.Once
			}

			onReminder := func(t engine.Task) {
				log.WithField("task", t.ID).Info("reminder fired")
				line := fmt.Sprintf("%s %s", ui.IconBell, ui.Warn.Render(t.Summary))
				if due, ok := engine.ParseDueDate(t.DueDate); ok {
					line += ui.Muted.Render(" · due " + due.Format("15:04"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Toast.Render(line))
			}

			sched := engine.NewScheduler(svc.Tasks(), onReminder, engine.SchedulerOptions{
				Interval: interval,
				Window:   window,
				Once:     once,
			})

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(
				fmt.Sprintf("Watching reminders for %s every %s. Ctrl-C to stop.", svc.Identity(), interval)))
			if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", engine.DefaultRemindInterval, "Poll interval")
	cmd.Flags().DurationVar(&window, "window", engine.DefaultRemindWindow, "How long after its due time a task keeps reminding")
	cmd.Flags().BoolVar(&once, "once", false, "Announce each due task at most once per window")

	return cmd
}
