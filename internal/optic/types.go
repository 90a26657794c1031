package optic

import "fmt"

// Mode is the waveguide polarization.
type Mode uint8

const (
	TE Mode = iota
	TM
)

func (m Mode) String() string {
	if m == TE {
		return "TE"
	}
	return "TM"
}

// Opposite returns the other polarization. The effective index method
// swaps polarization roles between the vertical and lateral slab analyses.
func (m Mode) Opposite() Mode {
	if m == TE {
		return TM
	}
	return TE
}

// ParseMode converts a mode label ("TE" or "TM") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "TE":
		return TE, nil
	case "TM":
		return TM, nil
	}
	return TE, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Device is the waveguide geometry family.
type Device uint8

const (
	Strip Device = iota
	Slot
)

func (d Device) String() string {
	if d == Strip {
		return "strip"
	}
	return "slot"
}

// ParseDevice converts a device label ("strip" or "slot") to a Device.
func ParseDevice(s string) (Device, error) {
	switch s {
	case "strip":
		return Strip, nil
	case "slot":
		return Slot, nil
	}
	return Strip, fmt.Errorf("%w: %q", ErrUnknownDevice, s)
}
