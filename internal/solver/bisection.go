// Package solver provides the scalar root finder used to invert the slab
// characteristic equations.
package solver

import "math"

// State classifies the outcome of a root-finding run.
type State uint8

const (
	Converged State = iota
	Diverged
	InvalidRange
)

func (s State) String() string {
	switch s {
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	}
	return "invalid range"
}

// Status reports the run statistics of one bisection call.
type Status struct {
	State      State
	Iterations int
	Residual   float64
}

// Defaults for the characteristic-equation searches.
const (
	DefaultTol     = 1e-4
	DefaultMaxIter = 100
)

// Func is a scalar residual evaluated at a trial root.
type Func func(x float64) float64

// Bisect runs BisectTol with the default tolerance and iteration budget.
func Bisect(f Func, a, b float64) (float64, Status) {
	return BisectTol(f, a, b, DefaultTol, DefaultMaxIter)
}

// BisectTol finds a root of f in [a, b] by bisection.
//
// If f does not change sign across the bracket the run reports
// InvalidRange immediately and returns a; the residual then carries the
// smaller endpoint magnitude so the caller can decide on a fallback.
// A run that exhausts its iteration budget is Converged only if the
// remaining half-bracket fits inside tol, and never if the midpoint has
// drifted within tol of an original endpoint: a root pinned at the
// cladding index is not a guided mode.
func BisectTol(f Func, a, b, tol float64, maxIter int) (float64, Status) {
	fa := f(a)
	fb := f(b)

	if fa*fb > 0 {
		return a, Status{
			State:    InvalidRange,
			Residual: math.Min(math.Abs(fa), math.Abs(fb)),
		}
	}

	a0, b0 := a, b

	var mid, fmid float64
	iter := 0
	for ; iter < maxIter; iter++ {
		mid = (a + b) / 2
		fmid = f(mid)

		if math.Abs(fmid) < tol {
			return mid, Status{State: Converged, Iterations: iter, Residual: math.Abs(fmid)}
		}

		if fa*fmid < 0 {
			b = mid
			fb = fmid
		} else {
			a = mid
			fa = fmid
		}
	}

	mid = (a + b) / 2
	fmid = f(mid)

	s := Status{Iterations: iter, Residual: math.Abs(fmid)}
	if (b-a)/2 <= tol {
		s.State = Converged
	} else {
		s.State = Diverged
	}
	if math.Abs(mid-a0) < tol || math.Abs(mid-b0) < tol {
		s.State = Diverged
	}

	return mid, s
}
