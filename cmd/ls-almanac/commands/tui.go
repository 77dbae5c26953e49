package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-almanac/internal/ui"
)

func newTuiCommand() *cobra.Command {
	var days float64

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive almanac dashboard",
		Example: `  # Events for the next two months at the default site
  ls-almanac tui --days 60`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startTime()
			if err != nil {
				return err
			}
			site, err := resolveSite()
			if err != nil {
				return err
			}

			model := ui.New(ui.FeedConfig{
				Start:    start.UTC(),
				Days:     days,
				Observer: observerOf(site),
				SiteName: site.Name,
			})

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&days, "days", 45, "window length in days")
	return cmd
}
