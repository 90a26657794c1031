package waveguide

import (
	"github.com/san-kum/eimlab/internal/optic"
	"github.com/san-kum/eimlab/internal/slab"
)

// Waveguide is a 2D cross-section solvable by the effective index method.
type Waveguide interface {
	// Solve returns the composed effective index. Unsupported modes
	// return the fallback index of the lateral solve, never an error.
	Solve() float64

	// ModeField2D samples the 2D mode field over the vertical and
	// lateral axes as the outer product of the two 1D profiles.
	ModeField2D(vert, lat []float64, workers int) ([][]complex128, error)
}

// Strip is a strip or rib waveguide:
//
//	z ^
//	  |  clad  | clad | clad  |
//	  +--------+------+--------
//	  |  slab  | rib  | slab  |  <- t_rib (slab regions t_slab, may be 0)
//	  +--------+------+--------
//	  |  box   | box  | box   |
//	  +----------------------> y
//
// Fields may be mutated between calls for sweeps; each call is a pure
// function of the current values.
type Strip struct {
	Wavelength float64
	TRib       float64 // rib/core thickness
	TSlab      float64 // residual slab thickness, 0 for a plain strip
	WRib       float64 // rib width
	NBox       float64
	NCore      float64
	NClad      float64
	Order      int
	Mode       optic.Mode
}

// regions collapses the rib and surrounding-slab stacks into vertical
// slab solves. With no residual slab the surrounding region is the bare
// box/clad stack. The outer region equals the slab region by symmetry.
func (s Strip) regions() (rib, side slab.Result) {
	rib = slab.Solve(s.NBox, s.NCore, s.NClad, s.Wavelength, s.TRib, 0)
	if s.TSlab > 0 {
		side = slab.Solve(s.NBox, s.NCore, s.NClad, s.Wavelength, s.TSlab, 0)
	} else {
		side = slab.Solve(s.NBox, s.NClad, s.NClad, s.Wavelength, s.TRib, 0)
	}
	return rib, side
}

// lateral runs the role-swapped lateral solve over the effective-index
// stack: the device polarization selects the vertical components fed in,
// and the opposite polarization of the lateral solve is the answer.
func (s Strip) lateral(rib, side slab.Result) float64 {
	nSide := side.Index(s.Mode)
	lat := slab.Solve(nSide, rib.Index(s.Mode), nSide, s.Wavelength, s.WRib, s.Order)
	return lat.Index(s.Mode.Opposite())
}

// Solve returns the composed effective index of the strip mode.
func (s Strip) Solve() float64 {
	rib, side := s.regions()
	return s.lateral(rib, side)
}

// ModeField2D reconstructs the 2D mode field. The vertical profile is
// evaluated in the device polarization at the rib region's vertical
// effective index; the lateral profile in the opposite polarization at
// the composed index over the effective-index stack. The field is their
// outer product, indexed [vertical][lateral].
func (s Strip) ModeField2D(vert, lat []float64, workers int) ([][]complex128, error) {
	rib, side := s.regions()
	neff := s.lateral(rib, side)
	nSide := side.Index(s.Mode)

	vp := slab.Mode1D(s.Mode, vert, rib.Index(s.Mode),
		s.NBox, s.NCore, s.NClad, s.Wavelength, s.TRib, 0, workers)
	lp := slab.Mode1D(s.Mode.Opposite(), lat, neff,
		nSide, rib.Index(s.Mode), nSide, s.Wavelength, s.WRib, s.Order, workers)

	return Outer(vp.Amplitude, lp.Amplitude, workers), nil
}
