package viz

import (
	"math/cmplx"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/eimlab/internal/slab"
)

// RenderProfile plots the real part of a 1D mode amplitude.
func RenderProfile(p slab.Profile, caption string) string {
	data := make([]float64, len(p.Amplitude))
	for i, a := range p.Amplitude {
		data[i] = real(a)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// RenderCut plots the magnitude of one row of a 2D field grid.
func RenderCut(row []complex128, caption string) string {
	data := make([]float64, len(row))
	for i, a := range row {
		data[i] = cmplx.Abs(a)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
