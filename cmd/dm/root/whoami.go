package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"daymark/internal/engine"
	"daymark/internal/ui"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			identity, err := engine.NewAuth(store).CurrentIdentity(ctx)
			if err != nil {
				if errors.Is(err, engine.ErrSessionMissing) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Not logged in."))
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("User", identity))
			return nil
		},
	}
}
