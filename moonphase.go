package almanac

import (
	"fmt"
	"math"
)

// MoonPhase returns the Moon's phase angle at t: its ecliptic longitude
// minus the Sun's, normalized to [0, 360). 0 is new moon, 90 first quarter,
// 180 full moon, 270 third quarter.
func MoonPhase(t AstroTime) (float64, error) {
	return LongitudeFromSun(Moon, t)
}

// phaseUncertaintyDays bounds how far a real quarter can land from the mean
// synodic prediction. The eccentricity of the lunar orbit shifts quarter
// times by up to about 0.83 days either way, so the bracket extends 0.9 days
// to both sides of the estimate.
const phaseUncertaintyDays = 0.9

// SearchMoonPhase finds the next time the Moon reaches the phase angle
// targetLon degrees, within limitDays of start.
//
// The phase function wraps at 360, so the bracket cannot come from blind
// sampling: the strategy predicts the crossing from the mean synodic month
// and the current signed offset, then brackets the prediction with the
// uncertainty window. ErrNoMoonQuarter is returned when that window cannot
// fit inside limitDays.
func SearchMoonPhase(targetLon float64, start AstroTime, limitDays float64) (AstroTime, error) {
	fn := func(t AstroTime) (float64, error) {
		angle, err := MoonPhase(t)
		if err != nil {
			return 0, err
		}
		return longitudeOffset(angle - targetLon), nil
	}

	ya, err := fn(start)
	if err != nil {
		return AstroTime{}, err
	}
	if ya > 0.0 {
		ya -= 360.0 // force the search forward in time, not backward
	}
	estDays := -(meanSynodicMonth * ya) / 360.0

	dt1 := estDays - phaseUncertaintyDays
	if dt1 > limitDays {
		return AstroTime{}, ErrNoMoonQuarter
	}
	dt2 := estDays + phaseUncertaintyDays
	if dt2 > limitDays {
		dt2 = limitDays
	}
	return Search(fn, start.AddDays(dt1), start.AddDays(dt2), 1.0)
}

// MoonQuarter is a principal lunar phase: 0 new moon, 1 first quarter,
// 2 full moon, 3 third quarter.
type MoonQuarter struct {
	Quarter int
	Time    AstroTime
}

var quarterNames = [...]string{"New Moon", "First Quarter", "Full Moon", "Third Quarter"}

// Name returns the conventional name of the quarter.
func (q MoonQuarter) Name() string {
	if q.Quarter < 0 || q.Quarter >= len(quarterNames) {
		return "Unknown"
	}
	return quarterNames[q.Quarter]
}

// SearchMoonQuarter finds the first principal lunar phase after start.
func SearchMoonQuarter(start AstroTime) (MoonQuarter, error) {
	angle, err := MoonPhase(start)
	if err != nil {
		return MoonQuarter{}, err
	}
	quarter := (1 + int(math.Floor(angle/90.0))) % 4
	t, err := SearchMoonPhase(90.0*float64(quarter), start, 10.0)
	if err != nil {
		return MoonQuarter{}, err
	}
	return MoonQuarter{Quarter: quarter, Time: t}, nil
}

// nextQuarterSkipDays is safely below the shortest observed gap between
// consecutive quarters, which stays within (6.5, 8.3) days.
const nextQuarterSkipDays = 6.0

// NextMoonQuarter finds the principal phase following mq. The result's
// quarter index must be the cyclic successor of mq's; anything else means
// the phase search itself is broken and surfaces as ErrInternal.
func NextMoonQuarter(mq MoonQuarter) (MoonQuarter, error) {
	next, err := SearchMoonQuarter(mq.Time.AddDays(nextQuarterSkipDays))
	if err != nil {
		return MoonQuarter{}, err
	}
	if next.Quarter != (mq.Quarter+1)%4 {
		return MoonQuarter{}, fmt.Errorf("%w: expected quarter %d, found %d",
			ErrInternal, (mq.Quarter+1)%4, next.Quarter)
	}
	return next, nil
}
