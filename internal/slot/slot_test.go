package slot

import (
	"math"
	"testing"
)

const tol = 1e-4

func TestSolveSOISlot(t *testing.T) {
	// 180 nm silicon rails around a 100 nm low-index slot at 1.55 um.
	r := Solve(1.44, 3.47, 1.44, 1.55, 0.1, 0.18, 0)

	if math.Abs(r.Even-2.0889954) > tol {
		t.Errorf("even = %.7f, want 2.0889954", r.Even)
	}
	if r.Odd != 1.44 {
		t.Errorf("odd = %v, want exactly 1.44 (no guided odd mode)", r.Odd)
	}
}

func TestSolveWiderRails(t *testing.T) {
	r := Solve(1.44, 3.47, 1.44, 1.55, 0.2, 0.25, 0)

	if math.Abs(r.Even-2.3706232) > tol {
		t.Errorf("even = %.7f, want 2.3706232", r.Even)
	}
}

func TestSolveCutoffFallback(t *testing.T) {
	// Thin rails guide no third-order mode in either symmetry.
	r := Solve(1.44, 3.47, 1.44, 1.55, 0.1, 0.18, 3)

	if r.Even != 1.44 {
		t.Errorf("even = %v, want exactly 1.44", r.Even)
	}
	if r.Odd != 1.44 {
		t.Errorf("odd = %v, want exactly 1.44", r.Odd)
	}
}

func TestSolveBounds(t *testing.T) {
	for _, gap := range []float64{0.05, 0.1, 0.2} {
		r := Solve(1.44, 3.47, 1.44, 1.55, gap, 0.2, 0)
		if r.Even < 1.44 || r.Even > 3.47 {
			t.Errorf("gap=%g: even index %f outside [1.44, 3.47]", gap, r.Even)
		}
	}
}

func TestResidualAtRoot(t *testing.T) {
	r := Solve(1.44, 3.47, 1.44, 1.55, 0.1, 0.18, 0)

	a, b := 0.05, 0.05+0.18
	res := ResidualEven(1.44, 3.47, 1.44, 1.55, a, b, 0, r.Even)
	if math.Abs(res) > 1e-3 {
		t.Errorf("even residual at returned root = %e", res)
	}
}

func TestEvenAboveOddWhenBothGuided(t *testing.T) {
	// A wide enough structure guides both symmetries; the even mode,
	// peaking across the slot, always carries the larger index.
	r := Solve(1.44, 3.47, 1.44, 1.55, 0.2, 0.5, 0)

	if math.Abs(r.Odd-3.1435818) > tol {
		t.Errorf("odd = %.7f, want 3.1435818", r.Odd)
	}
	if !(r.Even > r.Odd) {
		t.Errorf("expected even > odd, got %f vs %f", r.Even, r.Odd)
	}
}
