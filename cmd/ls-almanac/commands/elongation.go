package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	almanac "github.com/litescript/ls-almanac"
)

func newElongationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elongation <mercury|venus>",
		Short: "Next maximum elongation of an inferior planet",
		Long: `Find the next maximum elongation: the moment Mercury or Venus
stands at its greatest angular distance from the Sun, which is when it is
easiest to observe.`,
		Example: `  # Next chance to spot Mercury
  ls-almanac elongation mercury

  # Venus, starting from a date
  ls-almanac elongation venus --from 2026-06-01`,
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

			ev, err := almanac.SearchMaxElongation(body, start)
			if err != nil {
				return err
			}

			fmt.Printf("Maximum elongation of %v\n", body)
			fmt.Printf("  time        %s\n", formatTime(ev.Time))
			fmt.Printf("  elongation  %.1f°\n", ev.Elongation)
			fmt.Printf("  visibility  %v sky\n", ev.Visibility)
			return nil
		},
	}
}
