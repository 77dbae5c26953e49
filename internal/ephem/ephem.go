// Package ephem provides the ephemeris models consumed by the event-search
// library: solar and lunar positions, planetary heliocentric positions from
// osculating orbital elements, sidereal time, and horizon coordinates.
//
// Every function here is a pure function of a floating-point day count
// measured from the J2000.0 epoch (2000-01-01 12:00). Functions documented as
// taking "tt" expect Terrestrial Time days; functions documented as taking
// "ut" expect Universal Time days. The models are medium precision: a few
// arcminutes for the Moon, better than an arcminute for the Sun and planets
// over roughly 1900-2100. That is ample for locating event times to within a
// minute or two.
package ephem

import "errors"

// Planet identifies a body with a heliocentric orbit model.
// Earth is included so callers can compute geocentric vectors by difference.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

func (p Planet) String() string {
	switch p {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Earth:
		return "Earth"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	default:
		return "Unknown"
	}
}

// ErrNoConverge is returned when the Kepler equation solver fails to settle,
// which only happens for nonsense eccentricities.
var ErrNoConverge = errors.New("kepler equation did not converge")

// ErrUnknownPlanet is returned for a Planet value outside the enum.
var ErrUnknownPlanet = errors.New("unknown planet")

const (
	// KmPerAU converts astronomical units to kilometers.
	KmPerAU = 1.4959787069098932e+8

	earthRadiusKm = 6378.1366

	// EarthRadiusAU is the mean Earth radius expressed in astronomical units,
	// used for topocentric parallax of the Moon.
	EarthRadiusAU = earthRadiusKm / KmPerAU
)
