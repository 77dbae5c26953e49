// Package almanac computes the times of astronomical events: equinoxes and
// solstices, moon quarters, planetary conjunctions and oppositions, maximum
// elongations, peak magnitudes, rise and set times, and lunar apsides.
//
// The heart of the package is a generic numerical event search (Search) that
// locates the ascending zero crossing of any scalar function of time, plus a
// family of bracketing strategies that reduce each astronomical question to a
// well-posed root-finding problem. Positions themselves come from the
// medium-precision models in internal/ephem.
//
// Every operation is a pure computation over its inputs: no I/O, no shared
// state, no goroutines. Callers may run independent searches concurrently
// without coordination.
package almanac

import (
	"errors"
	"fmt"
	"strings"
)

// Body identifies a celestial body for event searches.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

var bodyNames = [...]string{
	"Sun", "Moon", "Mercury", "Venus", "Earth",
	"Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return "Unknown"
	}
	return bodyNames[b]
}

// BodyFromName returns the Body matching a case-insensitive name.
func BodyFromName(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(n, name) {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBody, name)
}

// Sentinel errors for the search taxonomy. Every public function returns a
// result-with-error; callers must check the error before using the payload.
var (
	// ErrNoConverge means an iteration cap was exceeded.
	ErrNoConverge = errors.New("search did not converge")

	// ErrSearchFailure means the probed window contained zero or multiple
	// crossings. This is an expected, recoverable outcome: callers that probe
	// uncertain windows (rise/set, moon phase) use it to shift the window and
	// retry.
	ErrSearchFailure = errors.New("no unique zero crossing in search window")

	// ErrInternal means a bracketing strategy's own sanity check failed,
	// which indicates a bug in the bracketing logic rather than a legitimate
	// "not found". It is always fatal to the call.
	ErrInternal = errors.New("internal error: bracketing invariant violated")

	// ErrInvalidBody rejects a body the operation does not support.
	ErrInvalidBody = errors.New("invalid body for this operation")

	// ErrEarthNotAllowed rejects geocentric operations on the Earth itself.
	ErrEarthNotAllowed = errors.New("operation not defined for Earth")

	// ErrInvalidParameter rejects malformed arguments before any search runs.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoMoonQuarter means the requested search window is too short to
	// contain the target moon phase.
	ErrNoMoonQuarter = errors.New("no moon quarter possible in search window")
)

// meanSynodicMonth is the average number of days for the Moon to return to
// the same phase.
const meanSynodicMonth = 29.530588

// earthOrbitalPeriod is the Earth's sidereal orbital period in days.
const earthOrbitalPeriod = 365.256

// orbitalPeriodDays maps each orbiting body to its sidereal period in days.
var orbitalPeriodDays = map[Body]float64{
	Mercury: 87.969,
	Venus:   224.701,
	Earth:   earthOrbitalPeriod,
	Mars:    686.980,
	Jupiter: 4332.589,
	Saturn:  10759.22,
	Uranus:  30685.4,
	Neptune: 60189.0,
	Pluto:   90560.0,
}

// synodicPeriod returns the mean period between successive identical
// Sun-relative configurations of the body as seen from Earth.
func synodicPeriod(body Body) (float64, error) {
	if body == Earth {
		return 0, ErrEarthNotAllowed
	}
	if body == Moon {
		return meanSynodicMonth, nil
	}
	tp, ok := orbitalPeriodDays[body]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBody, body)
	}
	return 1.0 / abs(1.0/earthOrbitalPeriod-1.0/tp), nil
}

// isSuperior reports whether the body orbits outside the Earth's orbit.
func isSuperior(body Body) bool {
	switch body {
	case Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		return true
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// longitudeOffset wraps a longitude difference into (-180, +180] degrees.
func longitudeOffset(diff float64) float64 {
	offset := diff
	for offset <= -180 {
		offset += 360
	}
	for offset > 180 {
		offset -= 360
	}
	return offset
}

// normalizeLongitude wraps a longitude into [0, 360) degrees.
func normalizeLongitude(lon float64) float64 {
	for lon < 0 {
		lon += 360
	}
	for lon >= 360 {
		lon -= 360
	}
	return lon
}
