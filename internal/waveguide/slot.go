package waveguide

import (
	"github.com/san-kum/eimlab/internal/optic"
	"github.com/san-kum/eimlab/internal/slab"
	"github.com/san-kum/eimlab/internal/slot"
)

// Slot is a symmetric slot waveguide:
//
//	z ^
//	  |  clad  | clad  | clad  |
//	  +--------+-------+--------
//	  |  core  | slot  | core  |  <- t_core
//	  +--------+-------+--------
//	  |  box   | box   | box   |
//	  +----------------------> y
//	          w_core  w_slot
//
// The vertical analysis collapses the core, slot and outer cladding
// columns into three-layer slab solves; the lateral analysis is the
// five-layer slot solve over those effective indices, always taking the
// even (cosh-type) mode.
type Slot struct {
	Wavelength float64
	TCore      float64 // core thickness
	WCore      float64 // width of each core rail
	WSlot      float64 // slot gap width
	NBox       float64
	NClad      float64
	NCore      float64
	NSlot      float64
	Order      int
	Mode       optic.Mode
}

// Solve returns the composed effective index of the slot mode.
func (s Slot) Solve() float64 {
	core := slab.Solve(s.NBox, s.NCore, s.NClad, s.Wavelength, s.TCore, 0)
	gap := slab.Solve(s.NBox, s.NSlot, s.NClad, s.Wavelength, s.TCore, 0)
	clad := slab.Solve(s.NBox, s.NClad, s.NClad, s.Wavelength, s.TCore, 0)

	r := slot.Solve(clad.Index(s.Mode), core.Index(s.Mode), gap.Index(s.Mode),
		s.Wavelength, s.WSlot, s.WCore, s.Order)
	return r.Even
}

// ModeField2D is not available for slot geometries.
func (s Slot) ModeField2D(_, _ []float64, _ int) ([][]complex128, error) {
	return nil, optic.ErrFieldUnsupported
}
