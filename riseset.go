package almanac

import (
	"errors"
	"math"

	"github.com/litescript/ls-almanac/internal/ephem"
)

// Observer is a location on the Earth's surface.
type Observer struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Height    float64 // meters above sea level
}

// Direction selects which horizon crossing a rise/set search looks for.
type Direction int

const (
	Rise Direction = +1
	Set  Direction = -1
)

func (d Direction) String() string {
	if d == Rise {
		return "rise"
	}
	return "set"
}

// HourAngleEvent is the result of an hour-angle search: the event time and
// the body's horizon coordinates at that time.
type HourAngleEvent struct {
	Time     AstroTime
	Altitude float64 // degrees, refraction included
	Azimuth  float64 // degrees, 0 = north, 90 = east
}

// Angular radii used to time the moment the body's upper limb, not its
// center, crosses the horizon.
const (
	sunRadiusAU  = 4.6505e-3
	moonRadiusAU = 1.15717e-5
)

// refractionNearHorizon is the refractive lift in degrees for objects at the
// horizon.
const refractionNearHorizon = 34.0 / 60.0

const solarDaysPerSiderealDay = 0.9972695717592592

// hourAngleIterLimit caps the sidereal homing loop; it converges in a
// handful of iterations for every real body.
const hourAngleIterLimit = 100

// SearchHourAngle finds the next time after start at which the body reaches
// the given hour angle (sidereal hours, in [0, 24)) for the observer. Hour
// angle 0 is culmination, 12 the anti-culmination.
//
// Each pass computes the sidereal-time adjustment that would bring the hour
// angle to the target and applies it as a solar-day step; the body's own
// motion makes the target drift, so the loop repeats until the adjustment is
// below 0.1 sidereal seconds. The first pass always steps forward so the
// result never precedes start.
func SearchHourAngle(body Body, observer Observer, hourAngle float64, start AstroTime) (HourAngleEvent, error) {
	if hourAngle < 0.0 || hourAngle >= 24.0 {
		return HourAngleEvent{}, ErrInvalidParameter
	}

	t := start
	for iter := 1; iter <= hourAngleIterLimit; iter++ {
		gast := ephem.GreenwichSiderealDeg(t.UT) / 15.0

		ra, dec, dist, err := equatorialOfDate(body, t)
		if err != nil {
			return HourAngleEvent{}, err
		}

		deltaSiderealHours := math.Mod(hourAngle+ra/15.0-observer.Longitude/15.0-gast, 24.0)
		if iter == 1 {
			// On the first pass, always search forward in time.
			if deltaSiderealHours < 0 {
				deltaSiderealHours += 24
			}
		} else {
			// Afterwards, take the smallest step in either direction.
			if deltaSiderealHours < -12.0 {
				deltaSiderealHours += 24.0
			} else if deltaSiderealHours > +12.0 {
				deltaSiderealHours -= 24.0
			}
		}

		if math.Abs(deltaSiderealHours)*3600.0 < 0.1 {
			alt, az := ephem.Horizontal(t.UT, observer.Latitude, observer.Longitude, ra, dec, dist, true)
			return HourAngleEvent{Time: t, Altitude: alt, Azimuth: az}, nil
		}

		t = t.AddDays((deltaSiderealHours / 24.0) * solarDaysPerSiderealDay)
	}
	return HourAngleEvent{}, ErrNoConverge
}

// peakAltitude builds the altitude function a rise/set search runs on: the
// altitude of the body's highest limb, with the near-horizon refraction lift
// applied, signed so that the sought crossing is always negative to
// positive. Rise searches use the altitude directly; set searches negate it.
func peakAltitude(body Body, observer Observer, direction Direction) SearchFunc {
	var radiusAU float64
	switch body {
	case Sun:
		radiusAU = sunRadiusAU
	case Moon:
		radiusAU = moonRadiusAU
	}
	return func(t AstroTime) (float64, error) {
		ra, dec, dist, err := equatorialOfDate(body, t)
		if err != nil {
			return 0, err
		}
		// Altitude is computed without refraction; the fixed near-horizon
		// lift stands in for it, which is exact at the moment that matters.
		alt, _ := ephem.Horizontal(t.UT, observer.Latitude, observer.Longitude, ra, dec, dist, false)
		limb := alt + refractionNearHorizon
		if dist > 0 {
			limb += (180 / math.Pi) * (radiusAU / dist)
		}
		return float64(direction) * limb, nil
	}
}

// SearchRiseSet finds the next time the body's upper limb crosses the
// horizon in the requested direction, within limitDays of start.
//
// A day can lack the sought crossing (polar day and night, the Moon's
// slipping schedule), so the strategy cannot bracket blindly. It alternates
// hour-angle searches for the culmination and anti-culmination enclosing the
// candidate window, runs Search on the altitude function between them when
// their altitudes actually straddle the horizon, and otherwise slides the
// window forward. ErrSearchFailure after the day limit means the body never
// crosses during the window — the normal answer for circumpolar geometry.
func SearchRiseSet(body Body, observer Observer, direction Direction, start AstroTime, limitDays float64) (AstroTime, error) {
	var haBefore, haAfter float64
	switch direction {
	case Rise:
		haBefore = 12.0 // the bottom of the arc precedes a rise
		haAfter = 0.0   // culmination follows it
	case Set:
		haBefore = 0.0 // culmination precedes a set
		haAfter = 12.0 // the bottom follows it
	default:
		return AstroTime{}, ErrInvalidParameter
	}

	altitude := peakAltitude(body, observer, direction)

	// If the body is already past the sought crossing, wait for the next
	// "before" event; otherwise the current time itself bounds the window.
	timeBefore := start
	altBefore, err := altitude(timeBefore)
	if err != nil {
		return AstroTime{}, err
	}
	if altBefore > 0.0 {
		evtBefore, err := SearchHourAngle(body, observer, haBefore, start)
		if err != nil {
			return AstroTime{}, err
		}
		timeBefore = evtBefore.Time
		if altBefore, err = altitude(timeBefore); err != nil {
			return AstroTime{}, err
		}
	}

	evtAfter, err := SearchHourAngle(body, observer, haAfter, timeBefore)
	if err != nil {
		return AstroTime{}, err
	}
	altAfter, err := altitude(evtAfter.Time)
	if err != nil {
		return AstroTime{}, err
	}

	for {
		if altBefore <= 0.0 && altAfter > 0.0 {
			result, err := Search(altitude, timeBefore, evtAfter.Time, 1.0)
			if err == nil {
				return result, nil
			}
			if !errors.Is(err, ErrSearchFailure) {
				return AstroTime{}, err
			}
			// A miss here just means this half-day arc never crossed the
			// horizon; slide forward and keep looking.
		}

		evtBefore, err := SearchHourAngle(body, observer, haBefore, evtAfter.Time)
		if err != nil {
			return AstroTime{}, err
		}
		evtAfter, err = SearchHourAngle(body, observer, haAfter, evtBefore.Time)
		if err != nil {
			return AstroTime{}, err
		}

		if evtBefore.Time.UT >= start.UT+limitDays {
			return AstroTime{}, ErrSearchFailure
		}

		timeBefore = evtBefore.Time
		if altBefore, err = altitude(timeBefore); err != nil {
			return AstroTime{}, err
		}
		if altAfter, err = altitude(evtAfter.Time); err != nil {
			return AstroTime{}, err
		}
	}
}
