package ephem

import "math"

// Vec3 is a Cartesian position in the ecliptic-of-date frame, in AU.
// X points toward the equinox of date, Z toward the north ecliptic pole.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Length returns the magnitude of v in AU.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// AngleBetween returns the angle between two vectors in degrees, clamped
// against floating-point excursions outside [-1, 1].
func AngleBetween(a, b Vec3) float64 {
	r := a.Length() * b.Length()
	if r == 0 {
		return 0
	}
	dot := (a.X*b.X + a.Y*b.Y + a.Z*b.Z) / r
	if dot < -1 {
		dot = -1
	} else if dot > 1 {
		dot = 1
	}
	return radToDeg(math.Acos(dot))
}

// FromEcliptic builds a Cartesian vector from ecliptic spherical coordinates
// (longitude and latitude in degrees, radius in AU).
func FromEcliptic(lonDeg, latDeg, r float64) Vec3 {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	return Vec3{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}

// ToEcliptic converts a Cartesian vector to ecliptic spherical coordinates.
// Longitude is normalized to [0, 360).
func ToEcliptic(v Vec3) (lonDeg, latDeg, r float64) {
	r = v.Length()
	if r == 0 {
		return 0, 0, 0
	}
	lonDeg = normalize360(radToDeg(math.Atan2(v.Y, v.X)))
	latDeg = radToDeg(math.Asin(v.Z / r))
	return lonDeg, latDeg, r
}

// ObliquityDeg returns the mean obliquity of the ecliptic in degrees.
func ObliquityDeg(tt float64) float64 {
	return 23.4393 - 3.563e-7*(tt+1.5)
}

// EquatorialOfDate rotates an ecliptic-of-date vector into the equatorial
// frame of date and returns right ascension and declination in degrees plus
// the distance in AU.
func EquatorialOfDate(v Vec3, tt float64) (raDeg, decDeg, distAU float64) {
	eps := degToRad(ObliquityDeg(tt))
	xe := v.X
	ye := v.Y*math.Cos(eps) - v.Z*math.Sin(eps)
	ze := v.Y*math.Sin(eps) + v.Z*math.Cos(eps)

	distAU = math.Sqrt(xe*xe + ye*ye + ze*ze)
	if distAU == 0 {
		return 0, 0, 0
	}
	raDeg = normalize360(radToDeg(math.Atan2(ye, xe)))
	decDeg = radToDeg(math.Asin(ze / distAU))
	return raDeg, decDeg, distAU
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// normalize360 normalizes an angle to 0-360 degrees.
func normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func sinDeg(d float64) float64 { return math.Sin(degToRad(d)) }
func cosDeg(d float64) float64 { return math.Cos(degToRad(d)) }
