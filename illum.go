package almanac

import (
	"fmt"
	"math"

	"github.com/litescript/ls-almanac/internal/ephem"
)

// IllumInfo describes how bright a body appears from Earth.
type IllumInfo struct {
	Time       AstroTime
	Mag        float64 // apparent visual magnitude
	PhaseAngle float64 // Sun-body-Earth angle in degrees
	HelioDist  float64 // AU from the Sun
	GeoDist    float64 // AU from the Earth
	RingTilt   float64 // Saturn ring tilt seen from Earth, degrees; 0 otherwise
}

// magCoeffs holds the phase-polynomial magnitude coefficients, evaluated as
// c0 + x(c1 + x(c2 + x c3)) with x = phase/100. Venus past phase 163.6 and
// the Sun, Moon and Saturn are special-cased in magnitude().
var magCoeffs = map[Body][4]float64{
	Mercury: {-0.60, +4.98, -4.88, +3.02},
	Venus:   {-4.47, +1.03, +0.57, +0.13},
	Mars:    {-1.52, +1.60, 0, 0},
	Jupiter: {-9.40, +0.50, 0, 0},
	Uranus:  {-7.19, +0.25, 0, 0},
	Neptune: {-6.87, 0, 0, 0},
	Pluto:   {-1.00, +4.00, 0, 0},
}

// auPerParsec is the exact definition of the parsec in AU.
const auPerParsec = 180 * 60 * 60 / math.Pi

// Illumination computes the visual magnitude and illumination geometry of a
// body at time t.
func Illumination(body Body, t AstroTime) (IllumInfo, error) {
	if body == Earth {
		return IllumInfo{}, ErrEarthNotAllowed
	}

	earth, err := ephem.HelioVector(ephem.Earth, t.TT)
	if err != nil {
		return IllumInfo{}, err
	}

	var gc, hc ephem.Vec3
	var phase float64
	switch body {
	case Sun:
		gc = earth.Neg()
		// The Sun emits light instead of reflecting it; report a
		// placeholder phase angle of zero.
		phase = 0
	case Moon:
		gc = ephem.MoonVector(t.TT)
		hc = earth.Add(gc)
		phase = ephem.AngleBetween(gc, hc)
	default:
		hc, err = helioVector(body, t)
		if err != nil {
			return IllumInfo{}, err
		}
		gc = hc.Sub(earth)
		phase = ephem.AngleBetween(gc, hc)
	}

	info := IllumInfo{
		Time:       t,
		PhaseAngle: phase,
		HelioDist:  hc.Length(),
		GeoDist:    gc.Length(),
	}

	switch body {
	case Sun:
		info.Mag = -0.17 + 5.0*math.Log10(info.GeoDist/auPerParsec)
	case Moon:
		info.Mag = moonMagnitude(phase, info.HelioDist, info.GeoDist)
	case Saturn:
		info.Mag, info.RingTilt = saturnMagnitude(phase, info.HelioDist, info.GeoDist, gc, t.TT)
	default:
		c, ok := magCoeffs[body]
		if !ok {
			return IllumInfo{}, fmt.Errorf("%w: %v", ErrInvalidBody, body)
		}
		if body == Venus && phase >= 163.6 {
			// Thin-crescent Venus leaves the polynomial's fit range.
			c = [4]float64{0.98, -1.02, 0, 0}
		}
		x := phase / 100
		info.Mag = c[0] + x*(c[1]+x*(c[2]+x*c[3]))
		info.Mag += 5.0 * math.Log10(info.HelioDist*info.GeoDist)
	}
	return info, nil
}

// moonMagnitude is an empirical fit to the lunar brightness curve as a
// function of phase angle and distances.
func moonMagnitude(phase, helioDist, geoDist float64) float64 {
	rad := phase * math.Pi / 180
	rad4 := rad * rad * rad * rad
	mag := -12.717 + 1.49*math.Abs(rad) + 0.0431*rad4

	const moonMeanDistanceAU = 385000.6 / ephem.KmPerAU
	return mag + 5*math.Log10(helioDist*geoDist/moonMeanDistanceAU)
}

// saturnMagnitude models the large contribution of the rings: their tilt as
// seen from Earth swings the planet's brightness by more than two
// magnitudes over half an orbit.
func saturnMagnitude(phase, helioDist, geoDist float64, gc ephem.Vec3, tt float64) (mag, ringTilt float64) {
	lonDeg, latDeg, _ := ephem.ToEcliptic(gc)
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180

	ir := 28.06 * math.Pi / 180                 // ring plane tilt to the ecliptic
	Nr := (169.51 + 3.82e-5*tt) * math.Pi / 180 // ascending node of the ring plane

	tilt := math.Asin(math.Sin(lat)*math.Cos(ir) - math.Cos(lat)*math.Sin(ir)*math.Sin(lon-Nr))
	sinTilt := math.Sin(math.Abs(tilt))

	mag = -9.0 + 0.044*phase
	mag += sinTilt * (-2.6 + 1.2*sinTilt)
	mag += 5.0 * math.Log10(helioDist*geoDist)
	return mag, tilt * 180 / math.Pi
}

// magSlope estimates the time derivative of visual magnitude by central
// difference. Magnitudes shrink as a body brightens, so the slope crosses
// from negative to positive exactly at peak brightness.
func magSlope(body Body, t AstroTime) (float64, error) {
	const dt = 0.01
	y1, err := Illumination(body, t.AddDays(-dt/2))
	if err != nil {
		return 0, err
	}
	y2, err := Illumination(body, t.AddDays(+dt/2))
	if err != nil {
		return 0, err
	}
	return (y2.Mag - y1.Mag) / dt, nil
}

// Peak magnitude of Venus occurs while its relative longitude is inside
// these bands on either side of inferior conjunction.
const (
	peakMagWindowLo = 10.0
	peakMagWindowHi = 30.0
)

// SearchPeakMagnitude finds the next time Venus reaches peak visual
// brightness after start. Venus is the only body with a useful magnitude
// extremum between conjunctions.
//
// The windowing mirrors SearchMaxElongation: the magnitude slope has cusps
// at relative longitudes 0 and 180, so the bracket is confined to the band
// [10, 30] degrees on one side of the Sun, validated by the slope signs at
// its ends.
func SearchPeakMagnitude(body Body, start AstroTime) (IllumInfo, error) {
	if body != Venus {
		return IllumInfo{}, fmt.Errorf("%w: %v", ErrInvalidBody, body)
	}
	s1, s2 := peakMagWindowLo, peakMagWindowHi

	slope := func(t AstroTime) (float64, error) { return magSlope(body, t) }

	for iter := 0; iter < windowRetryLimit; iter++ {
		plon, err := EclipticLongitude(body, start)
		if err != nil {
			return IllumInfo{}, err
		}
		elon, err := EclipticLongitude(Earth, start)
		if err != nil {
			return IllumInfo{}, err
		}
		rlon := longitudeOffset(plon - elon)

		var adjustDays, rlonLo, rlonHi float64
		switch {
		case rlon >= -s1 && rlon < +s1:
			adjustDays, rlonLo, rlonHi = 0, +s1, +s2
		case rlon >= +s2 || rlon < -s2:
			adjustDays, rlonLo, rlonHi = 0, -s2, -s1
		case rlon >= 0:
			syn, err := synodicPeriod(body)
			if err != nil {
				return IllumInfo{}, err
			}
			adjustDays, rlonLo, rlonHi = -syn/4.0, +s1, +s2
		default:
			syn, err := synodicPeriod(body)
			if err != nil {
				return IllumInfo{}, err
			}
			adjustDays, rlonLo, rlonHi = -syn/4.0, -s2, -s1
		}

		t1, err := SearchRelativeLongitude(body, rlonLo, start.AddDays(adjustDays))
		if err != nil {
			return IllumInfo{}, err
		}
		t2, err := SearchRelativeLongitude(body, rlonHi, t1)
		if err != nil {
			return IllumInfo{}, err
		}

		m1, err := slope(t1)
		if err != nil {
			return IllumInfo{}, err
		}
		if m1 >= 0 {
			return IllumInfo{}, fmt.Errorf("%w: magnitude slope not negative at bracket start", ErrInternal)
		}
		m2, err := slope(t2)
		if err != nil {
			return IllumInfo{}, err
		}
		if m2 <= 0 {
			return IllumInfo{}, fmt.Errorf("%w: magnitude slope not positive at bracket end", ErrInternal)
		}

		tx, err := Search(slope, t1, t2, 10.0)
		if err != nil {
			return IllumInfo{}, err
		}
		if tx.TT >= start.TT {
			return Illumination(body, tx)
		}
		start = t2.AddDays(1.0)
	}
	return IllumInfo{}, ErrSearchFailure
}
