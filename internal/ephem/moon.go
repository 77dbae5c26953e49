package ephem

import "math"

// MoonEcliptic returns the geocentric ecliptic coordinates of the Moon for
// the given tt: longitude and latitude in degrees (equinox of date) and the
// Earth-Moon distance in AU.
//
// The model is a Kepler orbit with the classical named perturbations
// (evection, variation, yearly equation, parallactic terms). Longitude is
// good to a couple of arcminutes, distance to a few hundred kilometers,
// which keeps phase and apsis event times within about a minute.
func MoonEcliptic(tt float64) (lonDeg, latDeg, distAU float64) {
	d := tt + 1.5

	// Osculating elements of the lunar orbit.
	N := normalize360(125.1228 - 0.0529538083*d) // longitude of ascending node
	const i = 5.1454                             // inclination
	w := normalize360(318.0634 + 0.1643573223*d) // argument of perigee
	const a = 60.2666                            // semi-major axis, Earth radii
	const e = 0.054900                           // eccentricity
	M := normalize360(115.3654 + 13.0649929509*d)

	E := eccentricAnomaly(M, e)

	x := a * (cosDeg(E) - e)
	y := a * math.Sqrt(1-e*e) * sinDeg(E)

	r := math.Sqrt(x*x + y*y) // Earth radii
	v := radToDeg(math.Atan2(y, x))

	// Position in the ecliptic frame.
	u := v + w // argument of latitude
	xe := r * (cosDeg(N)*cosDeg(u) - sinDeg(N)*sinDeg(u)*cosDeg(i))
	ye := r * (sinDeg(N)*cosDeg(u) + cosDeg(N)*sinDeg(u)*cosDeg(i))
	ze := r * sinDeg(u) * sinDeg(i)

	lon := normalize360(radToDeg(math.Atan2(ye, xe)))
	lat := radToDeg(math.Asin(ze / r))

	// Fundamental arguments for the perturbation terms.
	Ms := normalize360(356.0470 + 0.9856002585*d) // Sun mean anomaly
	ws := 282.9404 + 4.70935e-5*d                 // Sun argument of perihelion
	Ls := normalize360(Ms + ws)                   // Sun mean longitude
	Lm := normalize360(N + w + M)                 // Moon mean longitude
	D := normalize360(Lm - Ls)                    // mean elongation
	F := normalize360(Lm - N)                     // argument of latitude

	lon += -1.274*sinDeg(M-2*D) + // evection
		0.658*sinDeg(2*D) - // variation
		0.186*sinDeg(Ms) - // yearly equation
		0.059*sinDeg(2*M-2*D) -
		0.057*sinDeg(M-2*D+Ms) +
		0.053*sinDeg(M+2*D) +
		0.046*sinDeg(2*D-Ms) +
		0.041*sinDeg(M-Ms) -
		0.035*sinDeg(D) - // parallactic equation
		0.031*sinDeg(M+Ms) -
		0.015*sinDeg(2*F-2*D) +
		0.011*sinDeg(M-4*D)

	lat += -0.173*sinDeg(F-2*D) -
		0.055*sinDeg(M-F-2*D) -
		0.046*sinDeg(M+F-2*D) +
		0.033*sinDeg(F+2*D) +
		0.017*sinDeg(2*M+F)

	r += -0.58*cosDeg(M-2*D) -
		0.46*cosDeg(2*D)

	return normalize360(lon), lat, r * earthRadiusKm / KmPerAU
}

// MoonDistanceAU returns the Earth-Moon distance in AU.
func MoonDistanceAU(tt float64) float64 {
	_, _, dist := MoonEcliptic(tt)
	return dist
}

// MoonVector returns the geocentric position of the Moon in the
// ecliptic-of-date frame, in AU.
func MoonVector(tt float64) Vec3 {
	lon, lat, dist := MoonEcliptic(tt)
	return FromEcliptic(lon, lat, dist)
}
