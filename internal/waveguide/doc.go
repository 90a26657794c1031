// Package waveguide composes 1D slab solutions into 2D waveguide modes
// by the effective index method. A cross-section is split into lateral
// regions; each region is collapsed vertically into a three-layer slab
// solve, and the resulting effective indices form the layer stack of a
// final lateral solve. Polarization roles swap between the two analyses:
// the device TE mode is analyzed laterally as TM, and vice versa.
package waveguide
