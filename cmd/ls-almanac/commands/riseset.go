package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	almanac "github.com/litescript/ls-almanac"
)

func newRiseSetCommand() *cobra.Command {
	var limitDays float64

	cmd := &cobra.Command{
		Use:   "riseset <body>",
		Short: "Rise, culmination and set times for a body",
		Example: `  # Today's sun events at the default site
  ls-almanac riseset sun

  # Moonrise at Mauna Kea
  ls-almanac riseset moon --site mauna-kea

  # Mars from a custom catalog
  ls-almanac riseset mars --sites my-sites.yaml --site backyard`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := almanac.BodyFromName(args[0])
			if err != nil {
				return err
			}
			start, err := startTime()
			if err != nil {
				return err
			}
			site, err := resolveSite()
			if err != nil {
				return err
			}
			observer := observerOf(site)
			logger.Debug("site %s at %.4f, %.4f", site.Name, site.Latitude, site.Longitude)

			fmt.Printf("%v at %s from %s\n", body, site.Name, formatTime(start))

			rise, err := almanac.SearchRiseSet(body, observer, almanac.Rise, start, limitDays)
			switch {
			case errors.Is(err, almanac.ErrSearchFailure):
				fmt.Printf("  rise          none within %.0f days\n", limitDays)
			case err != nil:
				return err
			default:
				fmt.Printf("  rise          %s\n", formatTime(rise))
			}

			culm, err := almanac.SearchHourAngle(body, observer, 0.0, start)
			if err != nil {
				return err
			}
			fmt.Printf("  culmination   %s  alt %.1f°  az %.1f°\n",
				formatTime(culm.Time), culm.Altitude, culm.Azimuth)

			set, err := almanac.SearchRiseSet(body, observer, almanac.Set, start, limitDays)
			switch {
			case errors.Is(err, almanac.ErrSearchFailure):
				fmt.Printf("  set           none within %.0f days\n", limitDays)
			case err != nil:
				return err
			default:
				fmt.Printf("  set           %s\n", formatTime(set))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&limitDays, "days", 1.0, "how many days ahead to search")
	return cmd
}
