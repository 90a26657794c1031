// Package sweep runs cartesian parameter sweeps over the waveguide
// solvers, producing one CSV-ready row per sweep point. A point whose
// mode is unsupported still yields a row carrying the fallback index;
// sweeps never abort on cutoff.
package sweep

import (
	"fmt"
	"strconv"

	"github.com/san-kum/eimlab/internal/config"
	"github.com/san-kum/eimlab/internal/optic"
	"github.com/san-kum/eimlab/internal/parallel"
	"github.com/san-kum/eimlab/internal/waveguide"
)

// Row is one sweep point and its solved effective index.
type Row struct {
	Wavelength float64
	Width      float64
	Gap        float64 // slot width, zero for strip devices
	Order      int
	NEff       float64
}

// Job is a fully resolved sweep: device, polarization, fixed geometry and
// the axes to sweep.
type Job struct {
	Device optic.Device
	Mode   optic.Mode

	NBox  float64
	NCore float64
	NClad float64
	NSlot float64

	TCore float64
	TSlab float64

	Wavelengths []float64
	Widths      []float64
	Gaps        []float64
	Orders      []int

	Workers int
}

// FromConfig builds a Job from a validated configuration.
func FromConfig(c *config.Config) (Job, error) {
	device, err := optic.ParseDevice(c.Device)
	if err != nil {
		return Job{}, err
	}
	mode, err := optic.ParseMode(c.Mode)
	if err != nil {
		return Job{}, err
	}
	return Job{
		Device:      device,
		Mode:        mode,
		NBox:        c.Indices.Box,
		NCore:       c.Indices.Core,
		NClad:       c.Indices.Clad,
		NSlot:       c.Indices.Slot,
		TCore:       c.Geometry.TCore,
		TSlab:       c.Geometry.TSlab,
		Wavelengths: c.Wavelengths,
		Widths:      c.Widths,
		Gaps:        c.Gaps,
		Orders:      c.Orders,
		Workers:     c.Workers,
	}, nil
}

// Waveguide builds the solvable cross-section for one sweep point.
func (j Job) Waveguide(r Row) waveguide.Waveguide {
	if j.Device == optic.Slot {
		return waveguide.Slot{
			Wavelength: r.Wavelength,
			TCore:      j.TCore,
			WCore:      r.Width,
			WSlot:      r.Gap,
			NBox:       j.NBox,
			NClad:      j.NClad,
			NCore:      j.NCore,
			NSlot:      j.NSlot,
			Order:      r.Order,
			Mode:       j.Mode,
		}
	}
	return waveguide.Strip{
		Wavelength: r.Wavelength,
		TRib:       j.TCore,
		TSlab:      j.TSlab,
		WRib:       r.Width,
		NBox:       j.NBox,
		NCore:      j.NCore,
		NClad:      j.NClad,
		Order:      r.Order,
		Mode:       j.Mode,
	}
}

// Points enumerates the sweep in output order: wavelengths, then slot
// gaps, then widths, then mode orders.
func (j Job) Points() []Row {
	gaps := j.Gaps
	if j.Device == optic.Strip {
		gaps = []float64{0}
	}
	rows := make([]Row, 0, len(j.Wavelengths)*len(gaps)*len(j.Widths)*len(j.Orders))
	for _, l := range j.Wavelengths {
		for _, g := range gaps {
			for _, w := range j.Widths {
				for _, order := range j.Orders {
					rows = append(rows, Row{Wavelength: l, Gap: g, Width: w, Order: order})
				}
			}
		}
	}
	return rows
}

// Run solves every sweep point. Points are independent, so execution is
// chunked across Workers; the returned row order always matches the
// Points order regardless of worker count.
func (j Job) Run() ([]Row, error) {
	rows := j.Points()
	err := parallel.ForEach(len(rows), j.Workers, func(i int) error {
		rows[i].NEff = j.Waveguide(rows[i]).Solve()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Header returns the CSV header matching Record for this device.
func (j Job) Header() []string {
	if j.Device == optic.Slot {
		return []string{"t_core", "w_core", "w_slot", "wavelength", "mode", "neff"}
	}
	return []string{"t_slab", "t_rib", "width", "wavelength", "mode", "neff"}
}

// Record formats one solved row as a CSV record.
func (j Job) Record(r Row) []string {
	mode := fmt.Sprintf("%s%d", j.Mode, r.Order)
	if j.Device == optic.Slot {
		return []string{
			formatG(j.TCore, 3),
			formatG(r.Width, 3),
			formatG(r.Gap, 3),
			formatG(r.Wavelength, 4),
			mode,
			formatG(r.NEff, 6),
		}
	}
	return []string{
		formatG(j.TSlab, 3),
		formatG(j.TCore, 3),
		formatG(r.Width, 3),
		formatG(r.Wavelength, 4),
		mode,
		formatG(r.NEff, 6),
	}
}

func formatG(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}
