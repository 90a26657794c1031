package optic

import "math"

// Physical constants of free space. C0 and Eta0 are derived from Eps0 and
// Mu0 (1/sqrt(eps0*mu0) and sqrt(mu0/eps0)); they are spelled out as
// literals because Go constant expressions cannot take square roots.
const (
	Pi   = math.Pi
	Eps0 = 8.854188e-12     // vacuum permittivity (F/m)
	Mu0  = 4 * Pi * 1e-7    // vacuum permeability (H/m)
	C0   = 2.997924549e8    // free space speed of light (m/s)
	Eta0 = 376.730309581803 // free space impedance (ohm)
)
