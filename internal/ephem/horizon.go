package ephem

import "math"

// GreenwichSiderealDeg returns Greenwich mean sidereal time in degrees for a
// UT day count from J2000.0, using the IAU 1982 formula.
func GreenwichSiderealDeg(ut float64) float64 {
	T := ut / 36525.0
	gmst := 280.46061837 +
		360.98564736629*ut +
		0.000387933*T*T -
		T*T*T/38710000.0
	return normalize360(gmst)
}

// Horizontal converts equatorial-of-date coordinates to horizon coordinates
// for an observer at latDeg/lonDeg (east positive). distAU, when positive,
// enables the topocentric parallax correction (it only matters for the Moon).
// When refract is true, standard atmospheric refraction is added to the
// altitude.
//
// Azimuth follows the compass convention: 0 = north, 90 = east.
func Horizontal(ut, latDeg, lonDeg, raDeg, decDeg, distAU float64, refract bool) (altDeg, azDeg float64) {
	lst := normalize360(GreenwichSiderealDeg(ut) + lonDeg)
	ha := degToRad(normalize360(lst - raDeg))
	lat := degToRad(latDeg)
	dec := degToRad(decDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	if cosAz > 1 {
		cosAz = 1
	} else if cosAz < -1 {
		cosAz = -1
	}
	az := math.Acos(cosAz)
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	altDeg = radToDeg(alt)
	if distAU > 0 {
		// Topocentric parallax lowers the apparent altitude.
		plx := math.Asin(EarthRadiusAU / distAU)
		altDeg -= radToDeg(math.Asin(math.Sin(plx) * math.Cos(alt)))
	}
	if refract {
		altDeg += Refraction(altDeg)
	}
	return altDeg, radToDeg(az)
}

// Refraction returns the atmospheric refraction lift in degrees for a true
// altitude, using Saemundsson's formula for standard conditions. Below -2
// degrees the formula is meaningless and the lift is held at its -2 value.
func Refraction(altDeg float64) float64 {
	if altDeg < -2 {
		altDeg = -2
	}
	return 1.02 / math.Tan(degToRad(altDeg+10.3/(altDeg+5.11))) / 60.0
}
