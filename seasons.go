package almanac

import "time"

// SearchSunLongitude finds the next time within limitDays of start at which
// the Sun's apparent ecliptic longitude reaches targetLon degrees.
func SearchSunLongitude(targetLon float64, start AstroTime, limitDays float64) (AstroTime, error) {
	fn := func(t AstroTime) (float64, error) {
		return longitudeOffset(SunPosition(t) - targetLon), nil
	}
	return Search(fn, start, start.AddDays(limitDays), 1.0)
}

// SeasonsInfo holds the equinox and solstice times of one calendar year.
type SeasonsInfo struct {
	MarEquinox  AstroTime
	JunSolstice AstroTime
	SepEquinox  AstroTime
	DecSolstice AstroTime
}

// Seasons finds the two equinoxes and two solstices of a calendar year.
// Each event is searched over a 4-day window starting a little before the
// earliest date it can fall on, so no per-year estimate is needed.
func Seasons(year int) (SeasonsInfo, error) {
	var s SeasonsInfo
	var err error

	if s.MarEquinox, err = seasonChange(0, year, time.March, 19); err != nil {
		return s, err
	}
	if s.JunSolstice, err = seasonChange(90, year, time.June, 19); err != nil {
		return s, err
	}
	if s.SepEquinox, err = seasonChange(180, year, time.September, 21); err != nil {
		return s, err
	}
	if s.DecSolstice, err = seasonChange(270, year, time.December, 20); err != nil {
		return s, err
	}
	return s, nil
}

func seasonChange(targetLon float64, year int, month time.Month, day int) (AstroTime, error) {
	start := MakeTime(year, month, day, 0, 0, 0)
	return SearchSunLongitude(targetLon, start, 4.0)
}
