package slab

import (
	"math"

	"github.com/san-kum/eimlab/internal/optic"
	"github.com/san-kum/eimlab/internal/solver"
)

// Result carries the effective indices of both polarizations. Both are
// always solved: the effective index method composition picks one or the
// other depending on the axis role-swap.
type Result struct {
	TE float64
	TM float64
}

// Index selects the component for the given polarization.
func (r Result) Index(m optic.Mode) float64 {
	if m == optic.TE {
		return r.TE
	}
	return r.TM
}

// Solve finds the order-j TE and TM effective indices of the three-layer
// slab n1|n2|n3 with core extent w at the given wavelength.
//
// If a polarization is unsupported at this order (no root in the bracket,
// or bisection fails to converge) its index is min(n1, n3), the lower of
// the two bounding layers.
func Solve(n1, n2, n3, lambda, w float64, order int) Result {
	nmin := math.Min(n1, n3)

	te, ste := solver.Bisect(func(neff float64) float64 {
		return Residual(optic.TE, n1, n2, n3, lambda, w, order, neff)
	}, nmin, n2)

	tm, stm := solver.Bisect(func(neff float64) float64 {
		return Residual(optic.TM, n1, n2, n3, lambda, w, order, neff)
	}, nmin, n2)

	if ste.State != solver.Converged {
		te = nmin
	}
	if stm.State != solver.Converged {
		tm = nmin
	}
	return Result{TE: te, TM: tm}
}
