package almanac

import (
	"fmt"

	"github.com/litescript/ls-almanac/internal/ephem"
)

// planetOf maps bodies with heliocentric orbit models to the ephemeris enum.
var planetOf = map[Body]ephem.Planet{
	Mercury: ephem.Mercury,
	Venus:   ephem.Venus,
	Earth:   ephem.Earth,
	Mars:    ephem.Mars,
	Jupiter: ephem.Jupiter,
	Saturn:  ephem.Saturn,
	Uranus:  ephem.Uranus,
	Neptune: ephem.Neptune,
	Pluto:   ephem.Pluto,
}

// helioVector returns the heliocentric ecliptic-of-date position in AU.
func helioVector(body Body, t AstroTime) (ephem.Vec3, error) {
	switch body {
	case Sun:
		return ephem.Vec3{}, nil
	case Moon:
		earth, err := ephem.HelioVector(ephem.Earth, t.TT)
		if err != nil {
			return ephem.Vec3{}, err
		}
		return earth.Add(ephem.MoonVector(t.TT)), nil
	}
	p, ok := planetOf[body]
	if !ok {
		return ephem.Vec3{}, fmt.Errorf("%w: %v", ErrInvalidBody, body)
	}
	return ephem.HelioVector(p, t.TT)
}

// geoVector returns the geocentric ecliptic-of-date position in AU. These
// are geometric positions: no light-time or aberration correction.
func geoVector(body Body, t AstroTime) (ephem.Vec3, error) {
	switch body {
	case Earth:
		return ephem.Vec3{}, ErrEarthNotAllowed
	case Sun:
		return ephem.SunVector(t.TT), nil
	case Moon:
		return ephem.MoonVector(t.TT), nil
	}
	hv, err := helioVector(body, t)
	if err != nil {
		return ephem.Vec3{}, err
	}
	earth, err := ephem.HelioVector(ephem.Earth, t.TT)
	if err != nil {
		return ephem.Vec3{}, err
	}
	return hv.Sub(earth), nil
}

// SunPosition returns the apparent geocentric ecliptic longitude of the Sun
// in degrees, referred to the equinox of date. This is the quantity whose
// crossings of 0, 90, 180 and 270 degrees define the seasons.
func SunPosition(t AstroTime) float64 {
	return ephem.SunApparentLongitude(t.TT)
}

// EclipticLongitude returns the heliocentric ecliptic longitude of a body in
// degrees (equinox of date). The Sun has no heliocentric longitude.
func EclipticLongitude(body Body, t AstroTime) (float64, error) {
	if body == Sun {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBody, body)
	}
	hv, err := helioVector(body, t)
	if err != nil {
		return 0, err
	}
	lon, _, _ := ephem.ToEcliptic(hv)
	return lon, nil
}

// LongitudeFromSun returns the ecliptic longitude of the body minus that of
// the Sun as seen from Earth, normalized to [0, 360). Positions are
// geometric, without aberration; the difference that correction would make
// is below the precision of the event searches built on this quantity.
func LongitudeFromSun(body Body, t AstroTime) (float64, error) {
	if body == Earth {
		return 0, ErrEarthNotAllowed
	}
	bv, err := geoVector(body, t)
	if err != nil {
		return 0, err
	}
	blon, _, _ := ephem.ToEcliptic(bv)
	slon, _ := ephem.SunGeometric(t.TT)
	return normalizeLongitude(blon - slon), nil
}

// AngleFromSun returns the full angular separation between the body and the
// Sun as seen from Earth, in degrees. Unlike LongitudeFromSun this measures
// the true 3-D angle, not just the difference in longitude.
func AngleFromSun(body Body, t AstroTime) (float64, error) {
	if body == Earth {
		return 0, ErrEarthNotAllowed
	}
	bv, err := geoVector(body, t)
	if err != nil {
		return 0, err
	}
	sv := ephem.SunVector(t.TT)
	return ephem.AngleBetween(sv, bv), nil
}

// equatorialOfDate returns geocentric right ascension and declination of
// date in degrees, plus the distance in AU.
func equatorialOfDate(body Body, t AstroTime) (raDeg, decDeg, distAU float64, err error) {
	gv, err := geoVector(body, t)
	if err != nil {
		return 0, 0, 0, err
	}
	raDeg, decDeg, distAU = ephem.EquatorialOfDate(gv, t.TT)
	return raDeg, decDeg, distAU, nil
}
