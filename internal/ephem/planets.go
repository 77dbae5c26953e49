package ephem

import "math"

// elements holds osculating orbital elements linear in d (days from the
// 2000 Jan 0.0 epoch). Angles in degrees, semi-major axis in AU.
type elements struct {
	n0, n1 float64 // longitude of ascending node
	i0, i1 float64 // inclination to the ecliptic
	w0, w1 float64 // argument of perihelion
	a0, a1 float64 // semi-major axis
	e0, e1 float64 // eccentricity
	m0, m1 float64 // mean anomaly
}

func (el elements) at(d float64) (N, i, w, a, e, M float64) {
	return normalize360(el.n0 + el.n1*d),
		el.i0 + el.i1*d,
		normalize360(el.w0 + el.w1*d),
		el.a0 + el.a1*d,
		el.e0 + el.e1*d,
		normalize360(el.m0 + el.m1*d)
}

// Element values follow the standard solar-system set referred to the
// ecliptic and equinox of date, valid roughly 1900-2100. Pluto has no usable
// Kepler elements over that span and is handled by a periodic fit instead.
var planetElements = map[Planet]elements{
	Mercury: {48.3313, 3.24587e-5, 7.0047, 5.00e-8, 29.1241, 1.01444e-5, 0.387098, 0, 0.205635, 5.59e-10, 168.6562, 4.0923344368},
	Venus:   {76.6799, 2.46590e-5, 3.3946, 2.75e-8, 54.8910, 1.38374e-5, 0.723330, 0, 0.006773, -1.302e-9, 48.0052, 1.6021302244},
	Mars:    {49.5574, 2.11081e-5, 1.8497, -1.78e-8, 286.5016, 2.92961e-5, 1.523688, 0, 0.093405, 2.516e-9, 18.6021, 0.5240207766},
	Jupiter: {100.4542, 2.76854e-5, 1.3030, -1.557e-7, 273.8777, 1.64505e-5, 5.20256, 0, 0.048498, 4.469e-9, 19.8950, 0.0830853001},
	Saturn:  {113.6634, 2.38980e-5, 2.4886, -1.081e-7, 339.3939, 2.97661e-5, 9.55475, 0, 0.055546, -9.499e-9, 316.9670, 0.0334442282},
	Uranus:  {74.0005, 1.3978e-5, 0.7733, 1.9e-8, 96.6612, 3.0565e-5, 19.18171, -1.55e-8, 0.047318, 7.45e-9, 142.5905, 0.011725806},
	Neptune: {131.7806, 3.0173e-5, 1.7700, -2.55e-7, 272.8461, -6.027e-6, 30.05826, 3.313e-8, 0.008606, 2.15e-9, 260.2471, 0.005995147},
}

// eccentricAnomaly solves Kepler's equation M = E - e sin E by Newton
// iteration, everything in degrees.
func eccentricAnomaly(M, e float64) float64 {
	E := M + e*(180/math.Pi)*sinDeg(M)*(1+e*cosDeg(M))
	for iter := 0; iter < 30; iter++ {
		dE := (E - e*(180/math.Pi)*sinDeg(E) - M) / (1 - e*cosDeg(E))
		E -= dE
		if math.Abs(dE) < 1e-7 {
			break
		}
	}
	return E
}

// HelioEcliptic returns the heliocentric ecliptic coordinates of a planet:
// longitude and latitude in degrees (equinox of date) and radius in AU.
// Earth is derived from the geocentric Sun; Pluto uses its periodic fit.
func HelioEcliptic(p Planet, tt float64) (lonDeg, latDeg, rAU float64, err error) {
	d := tt + 1.5

	switch p {
	case Earth:
		sunLon, r := SunGeometric(tt)
		return normalize360(sunLon + 180), 0, r, nil
	case Pluto:
		lon, lat, r := plutoEcliptic(d)
		return lon, lat, r, nil
	}

	el, ok := planetElements[p]
	if !ok {
		return 0, 0, 0, ErrUnknownPlanet
	}
	N, i, w, a, e, M := el.at(d)

	E := eccentricAnomaly(M, e)

	x := a * (cosDeg(E) - e)
	y := a * math.Sqrt(1-e*e) * sinDeg(E)

	r := math.Sqrt(x*x + y*y)
	v := radToDeg(math.Atan2(y, x))

	u := v + w
	xh := r * (cosDeg(N)*cosDeg(u) - sinDeg(N)*sinDeg(u)*cosDeg(i))
	yh := r * (sinDeg(N)*cosDeg(u) + cosDeg(N)*sinDeg(u)*cosDeg(i))
	zh := r * sinDeg(u) * sinDeg(i)

	lon := normalize360(radToDeg(math.Atan2(yh, xh)))
	lat := radToDeg(math.Asin(zh / r))

	lon += jovianPerturbations(p, d)

	return normalize360(lon), lat, r, nil
}

// jovianPerturbations returns the longitude correction for the mutual
// Jupiter/Saturn/Uranus perturbations, in degrees. Zero for other planets.
func jovianPerturbations(p Planet, d float64) float64 {
	if p != Jupiter && p != Saturn && p != Uranus {
		return 0
	}
	Mj := normalize360(19.8950 + 0.0830853001*d)
	Ms := normalize360(316.9670 + 0.0334442282*d)
	Mu := normalize360(142.5905 + 0.011725806*d)

	switch p {
	case Jupiter:
		return -0.332*sinDeg(2*Mj-5*Ms-67.6) -
			0.056*sinDeg(2*Mj-2*Ms+21) +
			0.042*sinDeg(3*Mj-5*Ms+21) -
			0.036*sinDeg(Mj-2*Ms) +
			0.022*cosDeg(Mj-Ms) +
			0.023*sinDeg(2*Mj-3*Ms+52) -
			0.016*sinDeg(Mj-5*Ms-69)
	case Saturn:
		return 0.812*sinDeg(2*Mj-5*Ms-67.6) -
			0.229*cosDeg(2*Mj-4*Ms-2) +
			0.119*sinDeg(Mj-2*Ms-3) +
			0.046*sinDeg(2*Mj-6*Ms-69) +
			0.014*sinDeg(Mj-3*Ms+32)
	default: // Uranus
		return 0.040*sinDeg(Ms-2*Mu+6) +
			0.035*sinDeg(Ms-3*Mu+33) -
			0.015*sinDeg(Mj-Mu+20)
	}
}

// plutoEcliptic is a periodic fit to Pluto's heliocentric position, valid
// roughly 1900-2100.
func plutoEcliptic(d float64) (lonDeg, latDeg, rAU float64) {
	S := 50.03 + 0.033459652*d
	P := 238.95 + 0.003968789*d

	lon := 238.9508 + 0.00400703*d -
		19.799*sinDeg(P) + 19.848*cosDeg(P) +
		0.897*sinDeg(2*P) - 4.956*cosDeg(2*P) +
		0.610*sinDeg(3*P) + 1.211*cosDeg(3*P) -
		0.341*sinDeg(4*P) - 0.190*cosDeg(4*P) +
		0.128*sinDeg(5*P) - 0.034*cosDeg(5*P) -
		0.038*sinDeg(6*P) + 0.031*cosDeg(6*P) +
		0.020*sinDeg(S-P) - 0.010*cosDeg(S-P)

	lat := -3.9082 -
		5.453*sinDeg(P) - 14.975*cosDeg(P) +
		3.527*sinDeg(2*P) + 1.673*cosDeg(2*P) -
		1.051*sinDeg(3*P) + 0.328*cosDeg(3*P) +
		0.179*sinDeg(4*P) - 0.292*cosDeg(4*P) +
		0.019*sinDeg(5*P) + 0.100*cosDeg(5*P) -
		0.031*sinDeg(6*P) - 0.026*cosDeg(6*P) +
		0.011*cosDeg(S-P)

	r := 40.72 +
		6.68*sinDeg(P) + 6.90*cosDeg(P) -
		1.18*sinDeg(2*P) - 0.03*cosDeg(2*P) +
		0.15*sinDeg(3*P) - 0.14*cosDeg(3*P)

	return normalize360(lon), lat, r
}

// HelioVector returns the heliocentric position of a planet in the
// ecliptic-of-date frame, in AU.
func HelioVector(p Planet, tt float64) (Vec3, error) {
	lon, lat, r, err := HelioEcliptic(p, tt)
	if err != nil {
		return Vec3{}, err
	}
	return FromEcliptic(lon, lat, r), nil
}
