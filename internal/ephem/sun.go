package ephem

import "math"

// SunApparentLongitude returns the apparent geocentric ecliptic longitude of
// the Sun in degrees, referred to the equinox of date. The series corrects
// for aberration and the dominant nutation term, which is what season
// (equinox/solstice) timing needs.
// Based on the Astronomical Almanac low-precision solar ephemeris.
func SunApparentLongitude(tt float64) float64 {
	// Julian centuries from J2000.0
	T := tt / 36525.0

	// Mean longitude of the Sun (degrees)
	L0 := normalize360(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := normalize360(357.52911 + 35999.05029*T - 0.0001537*T*T)

	// Equation of center (degrees)
	C := (1.914602-0.004817*T-0.000014*T*T)*sinDeg(M) +
		(0.019993-0.000101*T)*sinDeg(2*M) +
		0.000289*sinDeg(3*M)

	// Apparent longitude (aberration plus the principal nutation term)
	omega := 125.04 - 1934.136*T
	return normalize360(L0 + C - 0.00569 - 0.00478*sinDeg(omega))
}

// SunGeometric returns the geometric geocentric ecliptic longitude of the Sun
// in degrees (equinox of date, no aberration) and the Earth-Sun distance in
// AU. The geometric value is the one shared by the relative-longitude and
// phase-angle computations, which deliberately leave aberration out.
func SunGeometric(tt float64) (lonDeg, rAU float64) {
	d := tt + 1.5

	w := 282.9404 + 4.70935e-5*d
	e := 0.016709 - 1.151e-9*d
	M := normalize360(356.0470 + 0.9856002585*d)

	// One correction step of the eccentric anomaly is enough at e ~ 0.017.
	E := M + e*(180/math.Pi)*sinDeg(M)*(1+e*cosDeg(M))

	x := cosDeg(E) - e
	y := math.Sqrt(1-e*e) * sinDeg(E)

	rAU = math.Sqrt(x*x + y*y)
	v := radToDeg(math.Atan2(y, x))
	lonDeg = normalize360(v + w)
	return lonDeg, rAU
}

// SunVector returns the geometric geocentric position of the Sun in the
// ecliptic-of-date frame, in AU.
func SunVector(tt float64) Vec3 {
	lon, r := SunGeometric(tt)
	return FromEcliptic(lon, 0, r)
}
