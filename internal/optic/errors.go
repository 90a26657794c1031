package optic

import "errors"

// Domain errors shared by the solver and CLI layers.
var (
	// ErrUnknownMode indicates a polarization label other than TE or TM.
	ErrUnknownMode = errors.New("optic: mode must be 'TE' or 'TM'")

	// ErrUnknownDevice indicates a waveguide type other than strip or slot.
	ErrUnknownDevice = errors.New("optic: device must be 'strip' or 'slot'")

	// ErrFieldUnsupported indicates a 2D mode field request for a geometry
	// that has no field reconstruction (slot waveguides).
	ErrFieldUnsupported = errors.New("optic: 2D mode field not implemented for slot waveguides")
)
