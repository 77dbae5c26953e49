package almanac

import (
	"errors"
	"testing"
	"time"
)

func TestIlluminationSun(t *testing.T) {
	info, err := Illumination(Sun, MakeTime(2024, time.June, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("Illumination: %v", err)
	}
	if info.Mag < -26.9 || info.Mag > -26.5 {
		t.Errorf("solar magnitude = %.2f, want near -26.7", info.Mag)
	}
	if info.PhaseAngle != 0 {
		t.Errorf("solar phase angle = %v, want 0", info.PhaseAngle)
	}
	if info.GeoDist < 0.98 || info.GeoDist > 1.02 {
		t.Errorf("Sun distance = %.4f AU, want near 1", info.GeoDist)
	}
}

func TestIlluminationFullMoon(t *testing.T) {
	// Full moon of 2024-01-25 17:54 UTC.
	full := MakeTime(2024, time.January, 25, 18, 0, 0)
	info, err := Illumination(Moon, full)
	if err != nil {
		t.Fatalf("Illumination: %v", err)
	}
	if info.Mag < -13.2 || info.Mag > -11.8 {
		t.Errorf("full moon magnitude = %.2f, want near -12.5", info.Mag)
	}
	if info.PhaseAngle > 12 {
		t.Errorf("full moon phase angle = %.2f deg, want small", info.PhaseAngle)
	}

	// A quarter moon is several magnitudes fainter.
	quarter, err := Illumination(Moon, full.AddDays(7.4))
	if err != nil {
		t.Fatalf("Illumination: %v", err)
	}
	if quarter.Mag-info.Mag < 1.5 {
		t.Errorf("quarter moon (%.2f) not clearly fainter than full (%.2f)",
			quarter.Mag, info.Mag)
	}
}

func TestIlluminationPlanets(t *testing.T) {
	// Loose plausibility bands; the magnitude models are phase polynomials
	// and should not stray outside each planet's physical range.
	when := MakeTime(2024, time.March, 15, 0, 0, 0)
	bands := map[Body][2]float64{
		Venus:   {-5.0, -3.6},
		Mars:    {-3.0, +2.0},
		Jupiter: {-3.0, -1.5},
		Saturn:  {-0.6, +1.5},
		Uranus:  {+5.3, +6.1},
		Neptune: {+7.6, +8.2},
	}
	for body, band := range bands {
		info, err := Illumination(body, when)
		if err != nil {
			t.Errorf("%v: %v", body, err)
			continue
		}
		if info.Mag < band[0] || info.Mag > band[1] {
			t.Errorf("%v magnitude = %.2f, want within [%.1f, %.1f]",
				body, info.Mag, band[0], band[1])
		}
	}
}

func TestIlluminationSaturnRingTilt(t *testing.T) {
	info, err := Illumination(Saturn, MakeTime(2020, time.January, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("Illumination: %v", err)
	}
	// The rings were near maximum opening in 2017-2020.
	if tilt := info.RingTilt; tilt < -28 || tilt > 28 {
		t.Errorf("ring tilt = %.2f deg, outside physical range", tilt)
	}
	if info.RingTilt == 0 {
		t.Error("ring tilt unexpectedly zero for Saturn")
	}
}

func TestIlluminationEarthRejected(t *testing.T) {
	_, err := Illumination(Earth, MakeTime(2024, time.January, 1, 0, 0, 0))
	if !errors.Is(err, ErrEarthNotAllowed) {
		t.Fatalf("got %v, want ErrEarthNotAllowed", err)
	}
}

func TestSearchPeakMagnitudeVenus(t *testing.T) {
	start := MakeTime(2020, time.January, 1, 0, 0, 0)
	info, err := SearchPeakMagnitude(Venus, start)
	if err != nil {
		t.Fatalf("SearchPeakMagnitude: %v", err)
	}

	// Venus reached greatest brilliancy on 2020-04-28.
	utc := info.Time.UTC()
	if utc.Before(time.Date(2020, 4, 20, 0, 0, 0, 0, time.UTC)) ||
		utc.After(time.Date(2020, 5, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("peak magnitude at %v, want near 2020-04-28", utc)
	}
	if info.Mag < -5.0 || info.Mag > -4.3 {
		t.Errorf("peak magnitude = %.2f, want within [-5.0, -4.3]", info.Mag)
	}

	// The extremum property: nearby days are no brighter.
	for _, offset := range []float64{-10, +10} {
		nearby, err := Illumination(Venus, info.Time.AddDays(offset))
		if err != nil {
			t.Fatal(err)
		}
		if nearby.Mag < info.Mag-0.05 {
			t.Errorf("magnitude %.3f at %+.0f days brighter than peak %.3f",
				nearby.Mag, offset, info.Mag)
		}
	}
}

func TestSearchPeakMagnitudeRejectsOthers(t *testing.T) {
	start := MakeTime(2024, time.January, 1, 0, 0, 0)
	for _, body := range []Body{Mercury, Mars, Moon, Sun} {
		if _, err := SearchPeakMagnitude(body, start); !errors.Is(err, ErrInvalidBody) {
			t.Errorf("%v: got %v, want ErrInvalidBody", body, err)
		}
	}
}
