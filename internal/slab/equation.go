package slab

import (
	"math"

	"github.com/san-kum/eimlab/internal/optic"
)

// Residual evaluates the characteristic equation of the three-layer slab
// at a trial effective index: the difference between the right and left
// hand sides of the transverse resonance condition. A root of the residual
// in neff, for fixed order j, is the j-th order mode index.
//
// The decay constants are real only for neff inside
// (max(n1,n3), n2); outside that band the residual is NaN, which the
// bisection bracket avoids by construction.
func Residual(mode optic.Mode, n1, n2, n3, lambda, w float64, order int, neff float64) float64 {
	k0 := 2 * optic.Pi / lambda
	gamma1 := k0 * math.Sqrt(neff*neff-n1*n1)
	gamma2 := k0 * math.Sqrt(n2*n2-neff*neff)
	gamma3 := k0 * math.Sqrt(neff*neff-n3*n3)

	lhs := gamma2 * w

	if mode == optic.TE {
		rhs := -math.Atan2(gamma2, gamma1) - math.Atan2(gamma2, gamma3) + float64(order+1)*optic.Pi
		return rhs - lhs
	}

	// TM weights each interface term by the adjacent index squared, the
	// impedance-mismatch correction to the transverse resonance.
	rhs := -math.Atan2(n1*n1*gamma2, n2*n2*gamma1) -
		math.Atan2(n3*n3*gamma2, n2*n2*gamma3) + float64(order+1)*optic.Pi
	return rhs - lhs
}
