package almanac

import "fmt"

// Visibility classifies when a body is best observed.
type Visibility int

const (
	// VisibleMorning means the body is west of the Sun and rises before it.
	VisibleMorning Visibility = iota
	// VisibleEvening means the body is east of the Sun and sets after it.
	VisibleEvening
)

func (v Visibility) String() string {
	if v == VisibleMorning {
		return "morning"
	}
	return "evening"
}

// ElongationEvent describes a body's angular relationship to the Sun at a
// moment: the full angular separation, the ecliptic longitude difference
// folded to [0, 180], and which side of the Sun the body is on.
type ElongationEvent struct {
	Time              AstroTime
	Visibility        Visibility
	Elongation        float64
	RelativeLongitude float64
}

// ElongationOf computes the elongation of a body at time t.
func ElongationOf(body Body, t AstroTime) (ElongationEvent, error) {
	angle, err := LongitudeFromSun(body, t)
	if err != nil {
		return ElongationEvent{}, err
	}
	ev := ElongationEvent{Time: t}
	if angle > 180.0 {
		ev.Visibility = VisibleMorning
		ev.RelativeLongitude = 360.0 - angle
	} else {
		ev.Visibility = VisibleEvening
		ev.RelativeLongitude = angle
	}
	sep, err := AngleFromSun(body, t)
	if err != nil {
		return ElongationEvent{}, err
	}
	ev.Elongation = sep
	return ev, nil
}

// negElongSlope estimates minus the time derivative of the elongation by
// central difference. The extremum of elongation is where this crosses from
// negative to positive, which is the ascending crossing Search expects.
func negElongSlope(body Body, t AstroTime) (float64, error) {
	const dt = 0.1
	e1, err := AngleFromSun(body, t.AddDays(-dt/2))
	if err != nil {
		return 0, err
	}
	e2, err := AngleFromSun(body, t.AddDays(+dt/2))
	if err != nil {
		return 0, err
	}
	return (e1 - e2) / dt, nil
}

// windowRetryLimit bounds how many search windows an extremum search may
// try. The first window can yield an event just before the start time; the
// second, one synodic period on, cannot.
const windowRetryLimit = 2

// elongWindow holds the relative-longitude band within which maximum
// elongation can occur for an inferior planet.
var elongWindow = map[Body]struct{ s1, s2 float64 }{
	Mercury: {50.0, 85.0},
	Venus:   {40.0, 50.0},
}

// SearchMaxElongation finds the next maximum elongation of Mercury or Venus
// after start.
//
// The elongation slope is ill-behaved near relative longitudes 0 and 180
// (conjunction cusps), so the strategy never brackets across them: depending
// on where the planet currently is, it seeks forward to the band [s1, s2] on
// either side of the Sun, or backs up a quarter synodic period first so the
// extremum lands in the bracket's interior. The bracket is then validated by
// the slope signs at both ends; a violation means the windowing logic itself
// is wrong and is reported as ErrInternal.
func SearchMaxElongation(body Body, start AstroTime) (ElongationEvent, error) {
	win, ok := elongWindow[body]
	if !ok {
		// Maximum elongation is only defined for inferior planets.
		return ElongationEvent{}, fmt.Errorf("%w: %v", ErrInvalidBody, body)
	}
	s1, s2 := win.s1, win.s2

	syn, err := synodicPeriod(body)
	if err != nil {
		return ElongationEvent{}, err
	}

	slope := func(t AstroTime) (float64, error) { return negElongSlope(body, t) }

	for iter := 0; iter < windowRetryLimit; iter++ {
		plon, err := EclipticLongitude(body, start)
		if err != nil {
			return ElongationEvent{}, err
		}
		elon, err := EclipticLongitude(Earth, start)
		if err != nil {
			return ElongationEvent{}, err
		}
		rlon := longitudeOffset(plon - elon)

		var adjustDays, rlonLo, rlonHi float64
		switch {
		case rlon >= -s1 && rlon < +s1:
			// Between the cusps: seek forward to the evening band.
			adjustDays, rlonLo, rlonHi = 0, +s1, +s2
		case rlon > +s2 || rlon < -s2:
			// Beyond the bands: seek forward to the morning band.
			adjustDays, rlonLo, rlonHi = 0, -s2, -s1
		case rlon >= 0:
			// Inside the evening band: back up so the extremum is interior.
			adjustDays, rlonLo, rlonHi = -syn/4.0, +s1, +s2
		default:
			// Inside the morning band: same, on the other side.
			adjustDays, rlonLo, rlonHi = -syn/4.0, -s2, -s1
		}

		t1, err := SearchRelativeLongitude(body, rlonLo, start.AddDays(adjustDays))
		if err != nil {
			return ElongationEvent{}, err
		}
		t2, err := SearchRelativeLongitude(body, rlonHi, t1)
		if err != nil {
			return ElongationEvent{}, err
		}

		// [t1, t2] must bracket a maximum: decreasing slope entering,
		// increasing slope leaving.
		m1, err := slope(t1)
		if err != nil {
			return ElongationEvent{}, err
		}
		if m1 >= 0 {
			return ElongationEvent{}, fmt.Errorf("%w: elongation slope not negative at bracket start", ErrInternal)
		}
		m2, err := slope(t2)
		if err != nil {
			return ElongationEvent{}, err
		}
		if m2 <= 0 {
			return ElongationEvent{}, fmt.Errorf("%w: elongation slope not positive at bracket end", ErrInternal)
		}

		tx, err := Search(slope, t1, t2, 10.0)
		if err != nil {
			return ElongationEvent{}, err
		}
		if tx.TT >= start.TT {
			return ElongationOf(body, tx)
		}

		// The found event is just before start; move past this window and
		// try the next one. One retry always suffices.
		start = t2.AddDays(1.0)
	}
	return ElongationEvent{}, ErrSearchFailure
}
