// Package slab solves the three-layer dielectric slab waveguide.
//
// The transverse-resonance characteristic equation is inverted by
// bisection over the physically valid effective-index bracket
// (min(n1,n3), n2); a mode order with no root in that bracket falls back
// to min(n1, n3), the documented cutoff behavior. The closed-form mode
// profile is reconstructed piecewise from the converged index.
//
// Coordinates put x = 0 at the first layer boundary:
//
//	y
//	^
//	| n1 | n2 | n3
//	|----0----W---> x
package slab
