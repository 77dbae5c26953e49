package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	almanac "github.com/litescript/ls-almanac"
)

func newApsisCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "apsis",
		Short: "Upcoming lunar perigees and apogees",
		Example: `  # The next four apsides
  ls-almanac apsis

  # A year's worth
  ls-almanac apsis --count 27 --from 2026-01-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startTime()
			if err != nil {
				return err
			}

			apsis, err := almanac.SearchLunarApsis(start)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				name := "perigee"
				if apsis.Kind == almanac.Apocenter {
					name = "apogee"
				}
				fmt.Printf("  %-8s %s  %.0f km\n", name, formatTime(apsis.Time), apsis.DistKM)
				if i+1 < count {
					if apsis, err = almanac.NextLunarApsis(apsis); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 4, "number of apsides to list")
	return cmd
}
