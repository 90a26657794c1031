// Package slot solves the symmetric five-layer slot slab waveguide
// (clad | core | slot | core | clad) for the case
// n_core > n_clad >= n_slot. The slot is centered with half-width a and
// outer core edge b = a + core width; even (cosh-type) and odd
// (sinh-type) transverse symmetries have separate characteristic
// equations.
package slot

import (
	"math"

	"github.com/san-kum/eimlab/internal/optic"
	"github.com/san-kum/eimlab/internal/solver"
)

// ResidualEven evaluates the cosh-type (even symmetry) characteristic
// equation at a trial effective index.
func ResidualEven(nClad, nCore, nSlot, lambda, a, b float64, order int, neff float64) float64 {
	k0 := 2 * optic.Pi / lambda

	gammaSlot := k0 * math.Sqrt(neff*neff-nSlot*nSlot)
	kappaCore := k0 * math.Sqrt(nCore*nCore-neff*neff)
	gammaClad := k0 * math.Sqrt(neff*neff-nClad*nClad)

	term1 := math.Atan2(nCore*nCore*gammaClad, nClad*nClad*kappaCore)
	term2 := math.Atan2(nCore*nCore*gammaSlot*math.Tanh(gammaSlot*a), nSlot*nSlot*kappaCore)

	return kappaCore*(b-a) - (term1 + term2 + float64(order)*optic.Pi)
}

// ResidualOdd evaluates the sinh-type (odd symmetry) characteristic
// equation at a trial effective index.
func ResidualOdd(nClad, nCore, nSlot, lambda, a, b float64, order int, neff float64) float64 {
	k0 := 2 * optic.Pi / lambda

	gammaSlot := k0 * math.Sqrt(neff*neff-nSlot*nSlot)
	kappaCore := k0 * math.Sqrt(nCore*nCore-neff*neff)
	gammaClad := k0 * math.Sqrt(neff*neff-nClad*nClad)

	coth := 1 / math.Tanh(gammaSlot*a)

	term1 := math.Atan2(nCore*nCore*gammaClad, nClad*nClad*kappaCore)
	term2 := math.Atan2(nCore*nCore*gammaSlot*coth, nSlot*nSlot*kappaCore)

	return kappaCore*(b-a) - (term1 + term2 + float64(order)*optic.Pi)
}

// Result carries the even and odd mode effective indices.
type Result struct {
	Even float64
	Odd  float64
}

// Solve finds the order-j even and odd effective indices of the
// five-layer slot slab with slot width wSlot (= 2a) and core width wCore
// (= b - a). An unguided symmetry falls back to max(nClad, nSlot).
func Solve(nClad, nCore, nSlot, lambda, wSlot, wCore float64, order int) Result {
	a := wSlot / 2
	b := a + wCore
	nmin := math.Max(nClad, nSlot)

	even, se := solver.Bisect(func(neff float64) float64 {
		return ResidualEven(nClad, nCore, nSlot, lambda, a, b, order, neff)
	}, nmin, nCore)

	odd, so := solver.Bisect(func(neff float64) float64 {
		return ResidualOdd(nClad, nCore, nSlot, lambda, a, b, order, neff)
	}, nmin, nCore)

	if se.State != solver.Converged {
		even = nmin
	}
	if so.State != solver.Converged {
		odd = nmin
	}
	return Result{Even: even, Odd: odd}
}
