package almanac

import (
	"errors"
	"testing"
	"time"
)

func TestSearchMoonPhaseKnownEvents(t *testing.T) {
	start := MakeTime(2024, time.January, 1, 0, 0, 0)
	tol := 4 * time.Hour

	tests := []struct {
		name      string
		targetLon float64
		want      time.Time
	}{
		{"new moon", 0, time.Date(2024, 1, 11, 11, 57, 0, 0, time.UTC)},
		{"first quarter", 90, time.Date(2024, 1, 18, 3, 52, 0, 0, time.UTC)},
		{"full moon", 180, time.Date(2024, 1, 25, 17, 54, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SearchMoonPhase(tt.targetLon, start, 40)
			if err != nil {
				t.Fatalf("SearchMoonPhase(%v) error: %v", tt.targetLon, err)
			}
			wantWithin(t, tt.name, got, tt.want, tol)
		})
	}
}

func TestMoonQuarterCycle(t *testing.T) {
	start := MakeTime(2024, time.January, 1, 0, 0, 0)
	mq, err := SearchMoonQuarter(start)
	if err != nil {
		t.Fatalf("SearchMoonQuarter error: %v", err)
	}

	for i := 0; i < 8; i++ {
		next, err := NextMoonQuarter(mq)
		if err != nil {
			t.Fatalf("NextMoonQuarter #%d error: %v", i, err)
		}
		if next.Quarter != (mq.Quarter+1)%4 {
			t.Fatalf("quarter after %d = %d, want %d", mq.Quarter, next.Quarter, (mq.Quarter+1)%4)
		}
		gap := next.Time.UT - mq.Time.UT
		if gap < 6.5 || gap > 8.3 {
			t.Errorf("quarter interval = %.2f days, want within (6.5, 8.3)", gap)
		}
		mq = next
	}
}

func TestMoonQuarterNames(t *testing.T) {
	names := map[int]string{
		0: "New Moon",
		1: "First Quarter",
		2: "Full Moon",
		3: "Third Quarter",
	}
	for q, want := range names {
		if got := (MoonQuarter{Quarter: q}).Name(); got != want {
			t.Errorf("Name(%d) = %q, want %q", q, got, want)
		}
	}
}

func TestSearchMoonPhaseWindowTooShort(t *testing.T) {
	// Just after the January 2024 new moon the full moon is ~13 days out;
	// a 2-day limit cannot contain it.
	start := MakeTime(2024, time.January, 12, 0, 0, 0)
	_, err := SearchMoonPhase(180, start, 2)
	if !errors.Is(err, ErrNoMoonQuarter) {
		t.Errorf("SearchMoonPhase = %v, want ErrNoMoonQuarter", err)
	}
}

func TestMoonPhaseRange(t *testing.T) {
	// The phase angle stays in [0, 360) across a full synodic month.
	start := MakeTime(2024, time.March, 1, 0, 0, 0)
	for day := 0.0; day < 30; day += 1.0 {
		phase, err := MoonPhase(start.AddDays(day))
		if err != nil {
			t.Fatalf("MoonPhase error: %v", err)
		}
		if phase < 0 || phase >= 360 {
			t.Errorf("MoonPhase at +%v days = %v, out of range", day, phase)
		}
	}
}
