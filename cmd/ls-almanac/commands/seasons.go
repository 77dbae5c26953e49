package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	almanac "github.com/litescript/ls-almanac"
)

func newSeasonsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seasons [year]",
		Short: "Equinox and solstice times for a year",
		Example: `  # Seasons of the current year
  ls-almanac seasons

  # Seasons of 2027
  ls-almanac seasons 2027`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().UTC().Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
				year = y
			}

			logger.Debug("computing seasons for %d", year)
			info, err := almanac.Seasons(year)
			if err != nil {
				return err
			}

			fmt.Printf("Seasons of %d\n", year)
			fmt.Printf("  March equinox      %s\n", formatTime(info.MarEquinox))
			fmt.Printf("  June solstice      %s\n", formatTime(info.JunSolstice))
			fmt.Printf("  September equinox  %s\n", formatTime(info.SepEquinox))
			fmt.Printf("  December solstice  %s\n", formatTime(info.DecSolstice))
			return nil
		},
	}
}
