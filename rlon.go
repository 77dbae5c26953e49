package almanac

import "math"

// rlonIterLimit caps the relative-longitude stepper. Convergence normally
// takes well under ten steps even for Mercury and Mars.
const rlonIterLimit = 100

// rlonOffset measures how far the body's Sun-relative longitude is from the
// target, signed, in (-180, +180]. direction flips the sense for inferior
// planets, which drift backward relative to Earth.
func rlonOffset(body Body, t AstroTime, direction float64, targetRelLon float64) (float64, error) {
	plon, err := EclipticLongitude(body, t)
	if err != nil {
		return 0, err
	}
	elon, err := EclipticLongitude(Earth, t)
	if err != nil {
		return 0, err
	}
	return longitudeOffset(direction*(elon-plon) - targetRelLon), nil
}

// SearchRelativeLongitude finds the next time the body's heliocentric
// longitude relative to Earth's reaches targetRelLon degrees. A target of 0
// finds conjunction for inferior planets and opposition for superior ones;
// 180 finds the opposite event.
//
// The strategy is Newton-like stepping: each offset converts to a day step
// through the synodic period. While the offset is small the assumed period
// is refined by the measured ratio of consecutive offsets, bounded to
// [0.5, 2.0] so an unlucky sample cannot cause divergence; this is what
// makes the eccentric orbits of Mercury and Mars converge quickly.
func SearchRelativeLongitude(body Body, targetRelLon float64, start AstroTime) (AstroTime, error) {
	if body == Earth {
		return AstroTime{}, ErrEarthNotAllowed
	}
	if body == Moon || body == Sun {
		return AstroTime{}, ErrInvalidBody
	}

	syn, err := synodicPeriod(body)
	if err != nil {
		return AstroTime{}, err
	}

	direction := -1.0
	if isSuperior(body) {
		direction = +1.0
	}

	offset, err := rlonOffset(body, start, direction, targetRelLon)
	if err != nil {
		return AstroTime{}, err
	}
	if offset > 0 {
		offset -= 360 // force the search forward in time
	}

	t := start
	for iter := 0; iter < rlonIterLimit; iter++ {
		dayAdjust := (-offset / 360.0) * syn
		t = t.AddDays(dayAdjust)
		if math.Abs(dayAdjust)*secondsPerDay < 1.0 {
			return t, nil
		}

		prev := offset
		offset, err = rlonOffset(body, t, direction, targetRelLon)
		if err != nil {
			return AstroTime{}, err
		}

		if math.Abs(prev) < 30.0 && prev != offset {
			// Refine the assumed synodic period to match the planets'
			// current orbital speeds.
			ratio := prev / (prev - offset)
			if ratio > 0.5 && ratio < 2.0 {
				syn *= ratio
			}
		}
	}
	return AstroTime{}, ErrNoConverge
}
