package almanac

import (
	"errors"
	"math"
	"testing"
)

func TestSearchLinear(t *testing.T) {
	// f(t) = t - t0 has its ascending crossing exactly at t0.
	t0 := 1234.56789
	fn := func(tm AstroTime) (float64, error) {
		return tm.UT - t0, nil
	}
	t1 := timeFromUT(t0 - 5)
	t2 := timeFromUT(t0 + 5)

	for _, tolSeconds := range []float64{60, 1, 0.1, 0.001, 1e-6} {
		got, err := Search(fn, t1, t2, tolSeconds)
		if err != nil {
			t.Fatalf("Search(tol=%g) error: %v", tolSeconds, err)
		}
		diffSeconds := math.Abs(got.UT-t0) * secondsPerDay
		if diffSeconds > tolSeconds {
			t.Errorf("Search(tol=%g) off by %g s", tolSeconds, diffSeconds)
		}
		if got.UT < t1.UT || got.UT > t2.UT {
			t.Errorf("Search(tol=%g) = %v outside original window", tolSeconds, got)
		}
	}
}

func TestSearchCubic(t *testing.T) {
	// A curved function exercises the quadratic refinement path.
	fn := func(tm AstroTime) (float64, error) {
		x := tm.UT - 100
		return x*x*x + 0.5*x, nil
	}
	got, err := Search(fn, timeFromUT(97), timeFromUT(104), 0.01)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if diff := math.Abs(got.UT-100) * secondsPerDay; diff > 0.01 {
		t.Errorf("root off by %g s", diff)
	}
}

func TestSearchNoCrossing(t *testing.T) {
	tests := []struct {
		name string
		fn   SearchFunc
	}{
		{"all positive", func(tm AstroTime) (float64, error) { return 1.0, nil }},
		{"all negative", func(tm AstroTime) (float64, error) { return -1.0, nil }},
		{
			// Dips through zero twice inside the window: ambiguous.
			"double crossing",
			func(tm AstroTime) (float64, error) {
				return (tm.UT - 30) * (tm.UT - 70) / 100, nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Search(tt.fn, timeFromUT(0), timeFromUT(100), 1.0)
			if !errors.Is(err, ErrSearchFailure) {
				t.Errorf("Search = %v, want ErrSearchFailure", err)
			}
		})
	}
}

func TestSearchPropagatesFunctionError(t *testing.T) {
	boom := errors.New("ephemeris exploded")
	fn := func(tm AstroTime) (float64, error) {
		if tm.UT > 50 {
			return 0, boom
		}
		return tm.UT - 60, nil
	}
	_, err := Search(fn, timeFromUT(0), timeFromUT(100), 1.0)
	if !errors.Is(err, boom) {
		t.Errorf("Search = %v, want the function's own error", err)
	}
}

func TestQuadInterp(t *testing.T) {
	tests := []struct {
		name       string
		fa, fm, fb float64
		tm, dt     float64
		wantT      float64
		wantSlope  float64
		wantOK     bool
	}{
		{
			// f(x) = (x-0.5)(x-3): single in-range root at x=0.5.
			name: "unique parabola root",
			fa:   6.0, fm: 1.5, fb: -1.0,
			tm: 100, dt: 2,
			wantT:     101.0,
			wantSlope: -1.25,
			wantOK:    true,
		},
		{
			// f(x) = x: a line through zero at x=0.
			name: "line root",
			fa:   -1, fm: 0, fb: 1,
			tm: 10, dt: 0.5,
			wantT:     10,
			wantSlope: 2,
			wantOK:    true,
		},
		{
			// f(x) = x^2 - 0.25: roots at both +0.5 and -0.5, ambiguous.
			name: "two roots in range",
			fa:   0.75, fm: -0.25, fb: 0.75,
			tm: 0, dt: 1,
			wantOK: false,
		},
		{
			// f(x) = x^2: the vertex only touches zero.
			name: "tangent vertex",
			fa:   1, fm: 0, fb: 1,
			tm: 0, dt: 1,
			wantOK: false,
		},
		{
			// f(x) = x - 2: the line crosses outside [-1, 1].
			name: "line root out of range",
			fa:   -3, fm: -2, fb: -1,
			tm: 0, dt: 1,
			wantOK: false,
		},
		{
			name: "horizontal line",
			fa:   1, fm: 1, fb: 1,
			tm: 0, dt: 1,
			wantOK: false,
		},
		{
			// f(x) = x^2 + 1: no real roots.
			name: "no real roots",
			fa:   2, fm: 1, fb: 2,
			tm: 0, dt: 1,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, gotSlope, ok := quadInterp(tt.tm, tt.dt, tt.fa, tt.fm, tt.fb)
			if ok != tt.wantOK {
				t.Fatalf("quadInterp ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(gotT-tt.wantT) > 1e-12 {
				t.Errorf("quadInterp t = %v, want %v", gotT, tt.wantT)
			}
			if math.Abs(gotSlope-tt.wantSlope) > 1e-12 {
				t.Errorf("quadInterp slope = %v, want %v", gotSlope, tt.wantSlope)
			}
		})
	}
}
