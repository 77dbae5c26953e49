package ui

import (
	"errors"
	"fmt"
	"sort"
	"time"

	almanac "github.com/litescript/ls-almanac"
)

// Event is one row of the almanac feed.
type Event struct {
	Time   time.Time
	Kind   string
	Detail string
}

// FeedConfig controls which events BuildFeed collects.
type FeedConfig struct {
	Start    time.Time
	Days     float64
	Observer almanac.Observer
	SiteName string
}

// BuildFeed collects every almanac event inside the window and returns them
// in time order. Individual searches that legitimately find nothing (polar
// rise/set, a window with no quarter) contribute no rows; any other error
// aborts the build.
func BuildFeed(cfg FeedConfig) ([]Event, error) {
	start := almanac.TimeFromUTC(cfg.Start.UTC())
	end := cfg.Start.UTC().Add(time.Duration(cfg.Days * 24 * float64(time.Hour)))

	var events []Event
	add := func(t almanac.AstroTime, kind, detail string) {
		utc := t.UTC()
		if !utc.Before(cfg.Start.UTC()) && utc.Before(end) {
			events = append(events, Event{Time: utc, Kind: kind, Detail: detail})
		}
	}

	// Season boundaries for every year touching the window.
	for year := cfg.Start.UTC().Year(); year <= end.Year(); year++ {
		seasons, err := almanac.Seasons(year)
		if err != nil {
			return nil, fmt.Errorf("seasons %d: %w", year, err)
		}
		add(seasons.MarEquinox, "equinox", "March equinox")
		add(seasons.JunSolstice, "solstice", "June solstice")
		add(seasons.SepEquinox, "equinox", "September equinox")
		add(seasons.DecSolstice, "solstice", "December solstice")
	}

	// Moon quarters.
	mq, err := almanac.SearchMoonQuarter(start)
	if err != nil && !errors.Is(err, almanac.ErrNoMoonQuarter) {
		return nil, fmt.Errorf("moon quarters: %w", err)
	}
	for err == nil && mq.Time.UTC().Before(end) {
		add(mq.Time, "moon", mq.Name())
		mq, err = almanac.NextMoonQuarter(mq)
		if err != nil && !errors.Is(err, almanac.ErrNoMoonQuarter) {
			return nil, fmt.Errorf("moon quarters: %w", err)
		}
	}

	// Lunar apsides.
	apsis, err := almanac.SearchLunarApsis(start)
	if err != nil {
		return nil, fmt.Errorf("lunar apsis: %w", err)
	}
	for apsis.Time.UTC().Before(end) {
		name := "perigee"
		if apsis.Kind == almanac.Apocenter {
			name = "apogee"
		}
		add(apsis.Time, "moon", fmt.Sprintf("lunar %s, %.0f km", name, apsis.DistKM))
		if apsis, err = almanac.NextLunarApsis(apsis); err != nil {
			return nil, fmt.Errorf("lunar apsis: %w", err)
		}
	}

	// Today's sun and moon rise/set for the configured site.
	for _, body := range []almanac.Body{almanac.Sun, almanac.Moon} {
		for _, dir := range []almanac.Direction{almanac.Rise, almanac.Set} {
			t, err := almanac.SearchRiseSet(body, cfg.Observer, dir, start, cfg.Days)
			if errors.Is(err, almanac.ErrSearchFailure) {
				continue // no crossing in the window
			}
			if err != nil {
				return nil, fmt.Errorf("%v %v: %w", body, dir, err)
			}
			add(t, "horizon", fmt.Sprintf("%v %v at %s", body, dir, cfg.SiteName))
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Time.Before(events[j].Time) })
	return events, nil
}
