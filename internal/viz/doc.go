// Package viz renders mode profiles in the terminal: asciigraph charts
// for one-shot profile plots and a bubbletea explorer that re-solves the
// waveguide as geometry parameters are adjusted interactively.
package viz
