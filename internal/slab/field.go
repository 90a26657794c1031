package slab

import (
	"math"

	"github.com/san-kum/eimlab/internal/optic"
	"github.com/san-kum/eimlab/internal/parallel"
)

// Profile holds the sampled 1D mode field: the transverse amplitude plus
// the impedance-scaled lateral component and the normal component derived
// from the spatial derivative, aligned index-for-index with the sample
// axis. No power normalization is applied; the scale is fixed by the unit
// core coefficient.
type Profile struct {
	Amplitude []complex128
	Lateral   []complex128
	Normal    []complex128
}

// Mode1D reconstructs the closed-form mode profile at the sample
// positions x, given the effective index neff obtained from Solve with
// the same layer parameters. For TE the amplitude is Ey; for TM it is Hy.
//
// The profile is piecewise over three regions (exponential decay for
// x < 0, oscillatory inside the core, exponential decay past x > w) with
// coefficients matched at both boundaries. Samples are independent, so
// evaluation is chunked across workers; the output order always matches x.
func Mode1D(mode optic.Mode, x []float64, neff, n1, n2, n3, lambda, w float64, order, workers int) Profile {
	k0 := 2 * optic.Pi / lambda
	gamma1 := k0 * math.Sqrt(neff*neff-n1*n1)
	gamma2 := k0 * math.Sqrt(n2*n2-neff*neff)
	gamma3 := k0 * math.Sqrt(neff*neff-n3*n3)

	// Phase offset from boundary matching at x = 0, with the same index
	// weighting as the TM characteristic equation.
	w1, w2 := 1.0, 1.0
	if mode == optic.TM {
		w1 = n2 * n2
		w2 = n1 * n1
	}
	alpha := -math.Atan2(gamma1*w1, gamma2*w2) + float64(order)*optic.Pi

	// The boundary equations are homogeneous, so the solution is fixed up
	// to a common factor; c2 = 1 sets the scale and c1, c3 follow from
	// continuity at x = 0 and x = w.
	c2 := 1.0
	c1 := c2 * math.Cos(alpha)
	c3 := c2 * math.Cos(gamma2*w+alpha)
	if mode == optic.TM {
		c1 *= n2 * n2 / (n1 * n1)
		c3 *= n2 * n2 / (n3 * n3)
	}

	omega := 2 * optic.Pi * optic.C0 / lambda
	im := complex(1, 1)

	p := Profile{
		Amplitude: make([]complex128, len(x)),
		Lateral:   make([]complex128, len(x)),
		Normal:    make([]complex128, len(x)),
	}

	sample := func(i int) error {
		xi := x[i]
		var a, normal complex128

		switch {
		case xi < 0:
			a = complex(c1*math.Exp(gamma1*xi), 0)
			if mode == optic.TE {
				normal = complex(-gamma1, 0) * a / (im * complex(omega*optic.Mu0, 0))
			} else {
				normal = complex(gamma1, 0) * a / (im * complex(omega*optic.Eps0*n1*n1, 0))
			}
		case xi <= w:
			a = complex(c2*math.Cos(gamma2*xi+alpha), 0)
			d := complex(c2*gamma2*math.Sin(gamma2*xi+alpha), 0)
			if mode == optic.TE {
				normal = d / (im * complex(omega*optic.Mu0, 0))
			} else {
				normal = -d / (im * complex(omega*optic.Eps0*n2*n2, 0))
			}
		default:
			a = complex(c3*math.Exp(-gamma3*(xi-w)), 0)
			if mode == optic.TE {
				normal = complex(gamma3, 0) * a / (im * complex(omega*optic.Mu0, 0))
			} else {
				normal = complex(gamma3, 0) * a / (im * complex(omega*optic.Eps0*n3*n3, 0))
			}
		}

		p.Amplitude[i] = a
		if mode == optic.TE {
			p.Lateral[i] = a * complex(n1/optic.Eta0, 0)
		} else {
			p.Lateral[i] = a * complex(optic.Eta0/n1, 0)
		}
		p.Normal[i] = normal
		return nil
	}

	// sample never fails; ForEach is used for the chunked partition.
	_ = parallel.ForEach(len(x), workers, sample)
	return p
}
