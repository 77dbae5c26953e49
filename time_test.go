package almanac

import (
	"math"
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		utc  time.Time
	}{
		{"J2000 epoch", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"2020 equinox era", time.Date(2020, 3, 20, 3, 50, 0, 0, time.UTC)},
		{"pre-epoch", time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := TimeFromUTC(tt.utc)
			back := at.UTC()
			if d := back.Sub(tt.utc); d < -time.Millisecond || d > time.Millisecond {
				t.Errorf("round trip drifted by %v", d)
			}
		})
	}
}

func TestTimeEpoch(t *testing.T) {
	at := TimeFromUTC(j2000)
	if at.UT != 0 {
		t.Errorf("UT at epoch = %v, want 0", at.UT)
	}
	// TT leads UT by Delta-T, about 64 s around 2000.
	dtSec := (at.TT - at.UT) * secondsPerDay
	if dtSec < 60 || dtSec > 68 {
		t.Errorf("Delta-T at epoch = %.1f s, want about 64", dtSec)
	}
}

func TestAddDays(t *testing.T) {
	at := MakeTime(2024, time.January, 1, 0, 0, 0)
	later := at.AddDays(10.25)
	if got := later.UT - at.UT; math.Abs(got-10.25) > 1e-9 {
		t.Errorf("AddDays moved UT by %v, want 10.25", got)
	}
	// Adding days keeps the two scales consistently linked.
	dtSec := (later.TT - later.UT) * secondsPerDay
	if dtSec < 60 || dtSec > 75 {
		t.Errorf("Delta-T after AddDays = %.1f s, out of plausible range", dtSec)
	}
}

func TestDeltaTMonotonicRecent(t *testing.T) {
	// Delta-T has been increasing throughout the table's modern era.
	prev := deltaTSeconds(-30 * 365.25) // ~1970
	for year := 1975; year <= 2025; year += 5 {
		ut := float64(year-2000) * 365.25
		dt := deltaTSeconds(ut)
		if dt < prev {
			t.Errorf("Delta-T decreased at %d: %v -> %v", year, prev, dt)
		}
		prev = dt
	}
}
