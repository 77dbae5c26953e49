package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	almanac "github.com/litescript/ls-almanac"
)

func newPlanetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "planet <name>",
		Short: "Current state and next solar alignment of a planet",
		Long: `Show a planet's current brightness and Sun-relative geometry, plus
the time of its next alignment with the Sun: opposition for the outer
planets, inferior conjunction for Mercury and Venus. For Venus the next
peak of brightness is included.`,
		Example: `  # When is Mars next at opposition?
  ls-almanac planet mars

  # Venus geometry and greatest brilliancy
  ls-almanac planet venus`,
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

			illum, err := almanac.Illumination(body, start)
			if err != nil {
				return err
			}
			elong, err := almanac.ElongationOf(body, start)
			if err != nil {
				return err
			}

			fmt.Printf("%v at %s\n", body, formatTime(start))
			fmt.Printf("  magnitude    %+.2f\n", illum.Mag)
			fmt.Printf("  phase angle  %.1f°\n", illum.PhaseAngle)
			fmt.Printf("  distance     %.3f AU\n", illum.GeoDist)
			fmt.Printf("  elongation   %.1f° (%v sky)\n", elong.Elongation, elong.Visibility)
			if body == almanac.Saturn {
				fmt.Printf("  ring tilt    %.1f°\n", illum.RingTilt)
			}

			align, err := almanac.SearchRelativeLongitude(body, 0.0, start)
			if err != nil {
				return err
			}
			event := "opposition"
			if body == almanac.Mercury || body == almanac.Venus {
				event = "inferior conjunction"
			}
			fmt.Printf("  next %s: %s\n", event, formatTime(align))

			if body == almanac.Venus {
				peak, err := almanac.SearchPeakMagnitude(body, start)
				if err != nil {
					return err
				}
				fmt.Printf("  next peak brightness: %s at %+.2f\n",
					formatTime(peak.Time), peak.Mag)
			}
			return nil
		},
	}
}
