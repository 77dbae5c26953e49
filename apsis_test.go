package almanac

import (
	"testing"
	"time"
)

func TestSearchLunarApsis(t *testing.T) {
	start := MakeTime(2024, time.January, 1, 0, 0, 0)
	apsis, err := SearchLunarApsis(start)
	if err != nil {
		t.Fatalf("SearchLunarApsis: %v", err)
	}
	if apsis.Time.UT < start.UT {
		t.Errorf("apsis %v precedes the search start", apsis.Time)
	}
	// Perigee and apogee each recur within an anomalistic month, so the
	// first one of either kind is never far off.
	if apsis.Time.UT > start.UT+20 {
		t.Errorf("first apsis %v more than 20 days after start", apsis.Time)
	}
	checkApsisDistance(t, apsis)
}

func TestNextLunarApsisAlternates(t *testing.T) {
	apsis, err := SearchLunarApsis(MakeTime(2024, time.January, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("SearchLunarApsis: %v", err)
	}
	for i := 0; i < 6; i++ {
		next, err := NextLunarApsis(apsis)
		if err != nil {
			t.Fatalf("NextLunarApsis #%d: %v", i, err)
		}
		if next.Kind == apsis.Kind {
			t.Fatalf("apsis #%d repeats kind %v", i, next.Kind)
		}
		gap := next.Time.UT - apsis.Time.UT
		if gap < 11.5 || gap > 16.5 {
			t.Errorf("apsis gap #%d = %.2f days, want within [11.5, 16.5]", i, gap)
		}
		checkApsisDistance(t, next)
		apsis = next
	}
}

func checkApsisDistance(t *testing.T, apsis Apsis) {
	t.Helper()
	var lo, hi float64
	switch apsis.Kind {
	case Pericenter:
		lo, hi = 345_000, 375_000
	case Apocenter:
		lo, hi = 395_000, 415_000
	default:
		t.Fatalf("unexpected apsis kind %d", apsis.Kind)
	}
	if apsis.DistKM < lo || apsis.DistKM > hi {
		t.Errorf("%v distance = %.0f km, want within [%.0f, %.0f]",
			apsis.Kind, apsis.DistKM, lo, hi)
	}
	km := apsis.DistAU * 1.4959787069098932e+8
	if diff := km - apsis.DistKM; diff > 1 || diff < -1 {
		t.Errorf("DistKM inconsistent with DistAU by %.3f km", diff)
	}
}

func TestNextLunarApsisRejectsBadKind(t *testing.T) {
	bogus := Apsis{Time: MakeTime(2024, time.January, 1, 0, 0, 0), Kind: ApsisKind(7)}
	if _, err := NextLunarApsis(bogus); err == nil {
		t.Fatal("want error for invalid apsis kind")
	}
}
