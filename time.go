package almanac

import (
	"math"
	"time"
)

// AstroTime is a moment on the continuous astronomical timeline, carried in
// two linked scales: UT is days since the J2000.0 epoch in Universal Time
// (tracks the Earth's rotation, used for sidereal arithmetic) and TT is the
// same moment in Terrestrial Time (the uniform scale the ephemeris models
// run on). The two differ by the slowly drifting Delta-T.
type AstroTime struct {
	UT float64
	TT float64
}

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// deltaTTable holds Delta-T in seconds at decade boundaries. Event searches
// are insensitive to Delta-T errors of a few seconds, so a sparse table with
// linear interpolation is plenty.
var deltaTTable = []struct {
	year float64
	dt   float64
}{
	{1900, -2.8},
	{1910, 10.4},
	{1920, 21.2},
	{1930, 24.0},
	{1940, 24.3},
	{1950, 29.1},
	{1960, 33.1},
	{1970, 40.2},
	{1980, 50.5},
	{1990, 56.9},
	{2000, 63.8},
	{2010, 66.1},
	{2020, 69.4},
	{2030, 72.0},
}

// deltaTSeconds returns Delta-T = TT - UT in seconds for a UT day count.
// Outside the table range the nearest endpoint value is held flat.
func deltaTSeconds(ut float64) float64 {
	year := 2000.0 + ut/365.25

	first := deltaTTable[0]
	last := deltaTTable[len(deltaTTable)-1]
	if year <= first.year {
		return first.dt
	}
	if year >= last.year {
		return last.dt
	}
	for i := 1; i < len(deltaTTable); i++ {
		if year < deltaTTable[i].year {
			lo, hi := deltaTTable[i-1], deltaTTable[i]
			frac := (year - lo.year) / (hi.year - lo.year)
			return lo.dt + frac*(hi.dt-lo.dt)
		}
	}
	return last.dt
}

// terrestrialTime converts a UT day count to a TT day count.
func terrestrialTime(ut float64) float64 {
	return ut + deltaTSeconds(ut)/86400.0
}

// timeFromUT builds an AstroTime from a UT day count.
func timeFromUT(ut float64) AstroTime {
	return AstroTime{UT: ut, TT: terrestrialTime(ut)}
}

// TimeFromUTC converts a stdlib time to an AstroTime.
func TimeFromUTC(t time.Time) AstroTime {
	ut := t.UTC().Sub(j2000).Seconds() / 86400.0
	return timeFromUT(ut)
}

// MakeTime builds an AstroTime from calendar components interpreted as UTC.
func MakeTime(year int, month time.Month, day, hour, minute int, second float64) AstroTime {
	sec := int(second)
	nsec := int(math.Round((second - float64(sec)) * 1e9))
	return TimeFromUTC(time.Date(year, month, day, hour, minute, sec, nsec, time.UTC))
}

// UTC converts an AstroTime back to a stdlib time.
func (t AstroTime) UTC() time.Time {
	return j2000.Add(time.Duration(math.Round(t.UT * 86400 * 1e9)))
}

// AddDays returns the time advanced by a (possibly negative) number of real
// days. TT is re-derived from the shifted UT; the sub-second drift that can
// introduce across a Delta-T boundary is tolerated by every search here.
func (t AstroTime) AddDays(days float64) AstroTime {
	return timeFromUT(t.UT + days)
}

func (t AstroTime) String() string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
