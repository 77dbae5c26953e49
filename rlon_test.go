package almanac

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSearchRelativeLongitude(t *testing.T) {
	tests := []struct {
		name      string
		body      Body
		targetLon float64
		start     AstroTime
		wantAfter time.Time
		wantBy    time.Time
	}{
		{
			name: "Mars opposition 2020",
			body: Mars, targetLon: 0,
			start:     MakeTime(2020, time.January, 1, 0, 0, 0),
			wantAfter: time.Date(2020, 10, 5, 0, 0, 0, 0, time.UTC),
			wantBy:    time.Date(2020, 10, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Venus inferior conjunction 2020",
			body: Venus, targetLon: 0,
			start:     MakeTime(2020, time.January, 1, 0, 0, 0),
			wantAfter: time.Date(2020, 5, 30, 0, 0, 0, 0, time.UTC),
			wantBy:    time.Date(2020, 6, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Jupiter opposition 2021",
			body: Jupiter, targetLon: 0,
			start:     MakeTime(2021, time.January, 1, 0, 0, 0),
			wantAfter: time.Date(2021, 8, 14, 0, 0, 0, 0, time.UTC),
			wantBy:    time.Date(2021, 8, 26, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SearchRelativeLongitude(tt.body, tt.targetLon, tt.start)
			if err != nil {
				t.Fatalf("SearchRelativeLongitude error: %v", err)
			}
			utc := got.UTC()
			if utc.Before(tt.wantAfter) || utc.After(tt.wantBy) {
				t.Errorf("found %v, want between %v and %v", utc, tt.wantAfter, tt.wantBy)
			}

			// The event is defined by the relative longitude matching the
			// target, so verify that directly as well.
			plon, err := EclipticLongitude(tt.body, got)
			if err != nil {
				t.Fatal(err)
			}
			elon, err := EclipticLongitude(Earth, got)
			if err != nil {
				t.Fatal(err)
			}
			direction := 1.0
			if !isSuperior(tt.body) {
				direction = -1.0
			}
			off := longitudeOffset(direction*(elon-plon) - tt.targetLon)
			if math.Abs(off) > 0.1 {
				t.Errorf("relative longitude off target by %.3f deg", off)
			}
		})
	}
}

func TestSearchRelativeLongitudeRejects(t *testing.T) {
	start := MakeTime(2024, time.January, 1, 0, 0, 0)
	if _, err := SearchRelativeLongitude(Earth, 0, start); !errors.Is(err, ErrEarthNotAllowed) {
		t.Errorf("Earth: got %v, want ErrEarthNotAllowed", err)
	}
	if _, err := SearchRelativeLongitude(Moon, 0, start); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("Moon: got %v, want ErrInvalidBody", err)
	}
}
