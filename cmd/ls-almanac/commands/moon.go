package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	almanac "github.com/litescript/ls-almanac"
)

func newMoonCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "moon",
		Short: "Upcoming moon quarters",
		Example: `  # The next four quarters
  ls-almanac moon

  # A full cycle starting from a date
  ls-almanac moon --count 8 --from 2026-01-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startTime()
			if err != nil {
				return err
			}

			phase, err := almanac.MoonPhase(start)
			if err != nil {
				return err
			}
			fmt.Printf("Moon phase angle at %s: %.1f°\n\n", formatTime(start), phase)

			mq, err := almanac.SearchMoonQuarter(start)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				fmt.Printf("  %-13s %s\n", mq.Name(), formatTime(mq.Time))
				if i+1 < count {
					if mq, err = almanac.NextMoonQuarter(mq); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 4, "number of quarters to list")
	return cmd
}
