package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"daymark/internal/geo"
	"daymark/internal/ui"
)

func newLocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loc",
		Short: "Manage saved locations",
	}

	cmd.AddCommand(
		newLocAddCmd(),
		newLocListCmd(),
		newLocRmCmd(),
	)

	return cmd
}

func newLocAddCmd() *cobra.Command {
	var lat, lng float64
	var coordsFlag string
	var noGeocode bool

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Save a location",
		Long: `Save a location under the current account.

Coordinates come from --lat/--lng (formatted to five decimal places) or a raw
--coords string. With --lat/--lng and no name, the name is suggested by
reverse geocoding; a failed lookup just leaves the name to be typed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			coords := geo.SentinelNotSupported
			hasLat := cmd.Flags().Changed("lat")
			hasLng := cmd.Flags().Changed("lng")
			switch {
			case coordsFlag != "":
				coords = coordsFlag
			case hasLat != hasLng:
				return errors.New("--lat and --lng must be given together")
			case hasLat && hasLng:
				detector := geo.StaticDetector{Coords: geo.Coords{Lat: lat, Lng: lng}}
				c, err := detector.Detect(ctx)
				if err != nil {
					coords = geo.SentinelRetryFailed
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" could not detect coordinates"))
					break
				}
				coords = c.String()
				if name == "" && !noGeocode {
					addr, err := geo.NewClient(cfg.GeocoderURL).ReverseGeocode(ctx, c.Lat, c.Lng)
					if err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" address lookup failed; pass a name instead"))
					} else {
						name = addr
					}
				}
			}

			l, err := svc.Locations().Create(ctx, name, coords)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPin+" Saved"), l.ID, l.Name, ui.Muted.Render("("+l.Coords+")"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	cmd.Flags().StringVar(&coordsFlag, "coords", "", "Raw coordinate text (overrides --lat/--lng)")
	cmd.Flags().BoolVar(&noGeocode, "no-geocode", false, "Skip the reverse-geocode name lookup")

	return cmd
}

func newLocListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved locations (most recent first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPin, "Locations — "+svc.Identity()))

			list := svc.Locations().List()
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No locations yet. Add one with `dm loc add`."))
				return nil
			}
			for _, l := range list {
				fmt.Fprintf(out, "%s #%d %s\n    %s · %s\n",
					ui.IconPin, l.ID, ui.Key.Render(l.Name), l.Coords, ui.Muted.Render(l.Timestamp))
			}
			return nil
		},
	}
}

func newLocRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved location",
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
			if err := svc.Locations().Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Warn.Render(ui.IconTrash+" Deleted"), id)
			return nil
		},
	}
}
