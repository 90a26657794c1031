// Package optic defines the shared vocabulary of the effective index
// method solver:
//
//   - [Mode]: waveguide polarization (TE or TM)
//   - [Device]: waveguide geometry family (strip or slot)
//   - physical constants of free space
//   - domain errors shared by the solver packages
//
// All values are immutable; the package holds no state.
package optic
