package almanac

import "math"

// SearchFunc is the continuous-function contract for event searches: any
// scalar function of time. A non-nil error aborts the search immediately and
// is returned to the caller verbatim.
type SearchFunc func(t AstroTime) (float64, error)

// searchIterLimit caps the bisection/interpolation loop. Twenty halvings
// shrink any practical window below a one-second tolerance, so exceeding the
// cap means the function is misbehaving, not that the window is large.
const searchIterLimit = 20

const secondsPerDay = 24 * 3600.0

// Search finds the time within [t1, t2] at which fn crosses from negative to
// non-negative values. The caller must arrange fn(t1) < 0 and fn(t2) >= 0
// with a single crossing between them; Search verifies only what it can see
// from its samples and returns ErrSearchFailure when the window shows no
// clean crossing (which callers probing uncertain windows treat as a normal
// miss, not a bug).
//
// The returned time is within tolSeconds of the true crossing and always
// inside the original window. Iteration combines bisection, which guarantees
// progress, with quadratic interpolation, which usually lands within
// tolerance in a handful of evaluations.
func Search(fn SearchFunc, t1, t2 AstroTime, tolSeconds float64) (AstroTime, error) {
	dtDays := math.Abs(tolSeconds / secondsPerDay)

	f1, err := fn(t1)
	if err != nil {
		return AstroTime{}, err
	}
	f2, err := fn(t2)
	if err != nil {
		return AstroTime{}, err
	}

	var fmid float64
	calcFmid := true
	for iter := 1; ; iter++ {
		if iter > searchIterLimit {
			return AstroTime{}, ErrNoConverge
		}

		dt := (t2.TT - t1.TT) / 2.0
		tmid := t1.AddDays(dt)
		if math.Abs(dt) < dtDays {
			// Close enough to the event to stop.
			return tmid, nil
		}

		if calcFmid {
			fmid, err = fn(tmid)
			if err != nil {
				return AstroTime{}, err
			}
		} else {
			// fmid is still valid from the adopted bracket of the last pass.
			calcFmid = true
		}

		// Try a parabola through (t1,f1), (tmid,fmid), (t2,f2).
		if qt, qdfdt, ok := quadInterp(tmid.UT, t2.UT-tmid.UT, f1, fmid, f2); ok {
			tq := timeFromUT(qt)
			fq, err := fn(tq)
			if err != nil {
				return AstroTime{}, err
			}
			if qdfdt != 0 {
				if math.Abs(fq/qdfdt) < dtDays {
					// The estimated residual time error is already within
					// tolerance.
					return tq, nil
				}

				// Guess a much tighter bracket centered on the interpolated
				// root. Adopt it only when it is a real improvement and the
				// sign change is confirmed at both shrunk endpoints.
				dtGuess := 1.2 * math.Abs(fq/qdfdt)
				if dtGuess < dt/10.0 {
					tleft := tq.AddDays(-dtGuess)
					tright := tq.AddDays(+dtGuess)
					if (tleft.UT-t1.UT)*(tleft.UT-t2.UT) < 0 &&
						(tright.UT-t1.UT)*(tright.UT-t2.UT) < 0 {
						fleft, err := fn(tleft)
						if err != nil {
							return AstroTime{}, err
						}
						fright, err := fn(tright)
						if err != nil {
							return AstroTime{}, err
						}
						if fleft < 0.0 && fright >= 0.0 {
							f1, t1 = fleft, tleft
							f2, t2 = fright, tright
							fmid = fq
							calcFmid = false
							continue
						}
					}
				}
			}
		}

		// Plain bisection: keep whichever half shows the sign change.
		if f1 < 0.0 && fmid >= 0.0 {
			t2, f2 = tmid, fmid
			continue
		}
		if fmid < 0.0 && f2 >= 0.0 {
			t1, f1 = tmid, fmid
			continue
		}

		// Neither half contains a negative-to-non-negative transition: the
		// window holds zero crossings, or more than one.
		return AstroTime{}, ErrSearchFailure
	}
}

// quadInterp fits f(x) = Q x^2 + R x + S through samples fa, fm, fb at the
// normalized positions x = -1, 0, +1 and extracts a root. tm is the real
// time of the midpoint sample and dt the real half-width, so an accepted
// root maps back to outT = tm + x*dt with slope outDfDt at the root.
//
// The fit is rejected when it carries no information (horizontal line), has
// no real root, or has two roots inside [-1, +1] — an ambiguous double
// crossing the caller must resolve by narrowing the window.
func quadInterp(tm, dt, fa, fm, fb float64) (outT, outDfDt float64, ok bool) {
	Q := (fb+fa)/2.0 - fm
	R := (fb - fa) / 2.0
	S := fm

	var x float64
	if Q == 0.0 {
		// A line, not a parabola.
		if R == 0.0 {
			return 0, 0, false
		}
		x = -S / R
		if x < -1.0 || x > +1.0 {
			return 0, 0, false
		}
	} else {
		u := R*R - 4*Q*S
		if u <= 0.0 {
			// No real root, or the vertex just touches zero.
			return 0, 0, false
		}
		ru := math.Sqrt(u)
		x1 := (-R + ru) / (2.0 * Q)
		x2 := (-R - ru) / (2.0 * Q)
		in1 := -1.0 <= x1 && x1 <= +1.0
		in2 := -1.0 <= x2 && x2 <= +1.0
		switch {
		case in1 && in2:
			return 0, 0, false
		case in1:
			x = x1
		case in2:
			x = x2
		default:
			return 0, 0, false
		}
	}

	return tm + x*dt, (2*Q*x + R) / dt, true
}
