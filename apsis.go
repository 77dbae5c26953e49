package almanac

import (
	"fmt"

	"github.com/litescript/ls-almanac/internal/ephem"
)

// ApsisKind distinguishes the two distance extremes of an orbit.
type ApsisKind int

const (
	Pericenter ApsisKind = iota // nearest approach (perigee for the Moon)
	Apocenter                   // farthest point (apogee for the Moon)
)

func (k ApsisKind) String() string {
	if k == Pericenter {
		return "pericenter"
	}
	return "apocenter"
}

// Apsis is a distance extremum of the Moon's orbit.
type Apsis struct {
	Time   AstroTime
	Kind   ApsisKind
	DistAU float64
	DistKM float64
}

// distanceSlope estimates the rate of change of the Earth-Moon distance by
// central difference, multiplied by direction so the crossing of interest is
// always negative to positive: +1 finds minima, -1 finds maxima.
func distanceSlope(direction float64) SearchFunc {
	const dt = 0.001
	return func(t AstroTime) (float64, error) {
		d1 := ephem.MoonDistanceAU(t.AddDays(-dt / 2).TT)
		d2 := ephem.MoonDistanceAU(t.AddDays(+dt / 2).TT)
		return direction * (d2 - d1) / dt, nil
	}
}

// apsisStepDays is the scan increment. Consecutive apsides are at least
// ~13 days apart, so 5-day steps cannot skip over one.
const apsisStepDays = 5.0

// SearchLunarApsis finds the next perigee or apogee of the Moon after
// start, whichever comes first.
//
// The strategy scans forward in fixed steps watching the sign of the
// distance rate: a sign change brackets an apsis, and its direction tells
// perigee from apogee, selecting the matching signed slope function for the
// refinement. The scan is capped at two synodic months; failing to find an
// apsis by then is impossible unless the slope function itself is broken, so
// that surfaces as ErrInternal.
func SearchLunarApsis(start AstroTime) (Apsis, error) {
	posSlope := distanceSlope(+1)
	negSlope := distanceSlope(-1)

	t1 := start
	m1, err := posSlope(t1)
	if err != nil {
		return Apsis{}, err
	}

	for iter := 0; float64(iter)*apsisStepDays < 2.0*meanSynodicMonth; iter++ {
		t2 := t1.AddDays(apsisStepDays)
		m2, err := posSlope(t2)
		if err != nil {
			return Apsis{}, err
		}

		if m1*m2 <= 0.0 {
			// The slope changed polarity inside [t1, t2], so the range
			// contains an apsis; its direction says which kind.
			var search AstroTime
			var kind ApsisKind
			switch {
			case m1 < 0.0 || m2 > 0.0:
				// Negative-to-positive slope: minimum distance.
				search, err = Search(posSlope, t1, t2, 1.0)
				kind = Pericenter
			case m1 > 0.0 || m2 < 0.0:
				// Positive-to-negative: maximum distance, searched with the
				// sign-flipped slope since Search wants ascending crossings.
				search, err = Search(negSlope, t1, t2, 1.0)
				kind = Apocenter
			default:
				// Both slopes exactly zero cannot happen.
				return Apsis{}, fmt.Errorf("%w: flat distance slope at both bracket ends", ErrInternal)
			}
			if err != nil {
				return Apsis{}, err
			}

			distAU := ephem.MoonDistanceAU(search.TT)
			return Apsis{
				Time:   search,
				Kind:   kind,
				DistAU: distAU,
				DistKM: distAU * ephem.KmPerAU,
			}, nil
		}

		t1, m1 = t2, m2
	}

	// The Moon passes both apsides inside any two synodic months.
	return Apsis{}, fmt.Errorf("%w: no apsis within two synodic months", ErrInternal)
}

// nextApsisSkipDays moves past the found apsis before scanning again; the
// shortest perigee-to-apogee gap is comfortably longer.
const nextApsisSkipDays = 11.0

// NextLunarApsis finds the apsis following a previously found one. Apsides
// must alternate; finding the same kind twice in a row means the scan is
// broken and surfaces as ErrInternal.
func NextLunarApsis(apsis Apsis) (Apsis, error) {
	if apsis.Kind != Pericenter && apsis.Kind != Apocenter {
		return Apsis{}, ErrInvalidParameter
	}
	next, err := SearchLunarApsis(apsis.Time.AddDays(nextApsisSkipDays))
	if err != nil {
		return Apsis{}, err
	}
	if next.Kind == apsis.Kind {
		return Apsis{}, fmt.Errorf("%w: consecutive %v events", ErrInternal, next.Kind)
	}
	return next, nil
}
