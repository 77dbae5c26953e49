package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	almanac "github.com/litescript/ls-almanac"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/sites"
	"github.com/litescript/ls-almanac/internal/version"
)

// Global flags
var (
	logLevel  string
	sitesPath string
	siteName  string
	fromStr   string
)

var logger = logging.Discard()

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ls-almanac",
		Short: "Astronomical event almanac",
		Long: `ls-almanac computes the times of astronomical events:

  - equinoxes and solstices
  - moon quarters and lunar perigee/apogee
  - rise, set and culmination for the Sun, Moon and planets
  - maximum elongations of Mercury and Venus
  - peak brightness of Venus
  - planet oppositions and conjunctions`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logging.ParseLevel(logLevel))
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&sitesPath, "sites", "", "observer site catalog file (YAML)")
	rootCmd.PersistentFlags().StringVar(&siteName, "site", "greenwich", "observer site name")
	rootCmd.PersistentFlags().StringVar(&fromStr, "from", "", "search start time (RFC3339 or YYYY-MM-DD, default now)")

	rootCmd.AddCommand(newSeasonsCommand())
	rootCmd.AddCommand(newMoonCommand())
	rootCmd.AddCommand(newRiseSetCommand())
	rootCmd.AddCommand(newElongationCommand())
	rootCmd.AddCommand(newApsisCommand())
	rootCmd.AddCommand(newPlanetCommand())
	rootCmd.AddCommand(newTuiCommand())

	return rootCmd
}

// startTime resolves the --from flag, defaulting to the current time.
func startTime() (almanac.AstroTime, error) {
	if fromStr == "" {
		return almanac.TimeFromUTC(time.Now().UTC()), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, fromStr); err == nil {
			return almanac.TimeFromUTC(t.UTC()), nil
		}
	}
	return almanac.AstroTime{}, fmt.Errorf("cannot parse --from %q: want RFC3339 or YYYY-MM-DD", fromStr)
}

// resolveSite finds the configured observer site.
func resolveSite() (sites.Site, error) {
	catalog := sites.Default()
	if sitesPath != "" {
		var err error
		catalog, err = sites.Load(sitesPath)
		if err != nil {
			return sites.Site{}, err
		}
		logger.Debug("loaded %d sites from %s", len(catalog.Sites), sitesPath)
	}
	site, ok := catalog.Find(siteName)
	if !ok {
		return sites.Site{}, fmt.Errorf("unknown site %q", siteName)
	}
	return site, nil
}

func observerOf(site sites.Site) almanac.Observer {
	return almanac.Observer{
		Latitude:  site.Latitude,
		Longitude: site.Longitude,
		Height:    site.Height,
	}
}

func formatTime(t almanac.AstroTime) string {
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}
