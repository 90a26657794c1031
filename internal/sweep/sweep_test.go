package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/eimlab/internal/config"
	"github.com/san-kum/eimlab/internal/optic"
)

func stripJob() Job {
	return Job{
		Device:      optic.Strip,
		Mode:        optic.TE,
		NBox:        1.44,
		NCore:       3.47,
		NClad:       1.44,
		TCore:       0.22,
		Wavelengths: []float64{1.55},
		Widths:      []float64{0.5},
		Orders:      []int{0},
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Workers = 3

	job, err := FromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, optic.Strip, job.Device)
	assert.Equal(t, optic.TE, job.Mode)
	assert.Equal(t, 0.22, job.TCore)
	assert.Equal(t, 3, job.Workers)
}

func TestFromConfigBadDevice(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Device = "ridge"

	_, err := FromConfig(cfg)
	assert.Error(t, err)
}

func TestPointsOrder(t *testing.T) {
	j := stripJob()
	j.Wavelengths = []float64{1.31, 1.55}
	j.Widths = []float64{0.4, 0.5}
	j.Orders = []int{0, 1}

	rows := j.Points()
	require.Len(t, rows, 8)

	// wavelengths vary slowest, orders fastest
	assert.Equal(t, Row{Wavelength: 1.31, Width: 0.4, Order: 0}, rows[0])
	assert.Equal(t, Row{Wavelength: 1.31, Width: 0.4, Order: 1}, rows[1])
	assert.Equal(t, Row{Wavelength: 1.31, Width: 0.5, Order: 0}, rows[2])
	assert.Equal(t, Row{Wavelength: 1.55, Width: 0.4, Order: 0}, rows[4])
	assert.Equal(t, Row{Wavelength: 1.55, Width: 0.5, Order: 1}, rows[7])
}

func TestPointsSlotGaps(t *testing.T) {
	j := stripJob()
	j.Device = optic.Slot
	j.NSlot = 1.44
	j.Gaps = []float64{0.08, 0.12}

	rows := j.Points()
	require.Len(t, rows, 2)
	assert.Equal(t, 0.08, rows[0].Gap)
	assert.Equal(t, 0.12, rows[1].Gap)

	// strip sweeps collapse the gap axis to a single zero
	j.Device = optic.Strip
	rows = j.Points()
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Gap)
}

func TestRunSolvesEveryPoint(t *testing.T) {
	j := stripJob()
	j.Widths = []float64{0.1, 0.5}
	j.Orders = []int{0, 1}

	rows, err := j.Run()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for _, r := range rows {
		assert.False(t, math.IsNaN(r.NEff), "row %+v", r)
		assert.GreaterOrEqual(t, r.NEff, 1.44)
	}

	// pinned fundamental mode at 500 nm
	assert.InDelta(t, 2.4843288, rows[2].NEff, 1e-4)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	j := stripJob()
	j.Widths = []float64{0.3, 0.4, 0.5, 0.6}
	j.Orders = []int{0, 1}

	seq, err := j.Run()
	require.NoError(t, err)

	j.Workers = 4
	par, err := j.Run()
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestHeaderAndRecord(t *testing.T) {
	j := stripJob()
	assert.Equal(t, []string{"t_slab", "t_rib", "width", "wavelength", "mode", "neff"}, j.Header())

	rec := j.Record(Row{Wavelength: 1.55, Width: 0.5, Order: 0, NEff: 2.4843288})
	assert.Equal(t, []string{"0", "0.22", "0.5", "1.55", "TE0", "2.48433"}, rec)

	j.Device = optic.Slot
	assert.Equal(t, []string{"t_core", "w_core", "w_slot", "wavelength", "mode", "neff"}, j.Header())

	rec = j.Record(Row{Wavelength: 1.55, Width: 0.18, Gap: 0.1, Order: 0, NEff: 1.8486132})
	assert.Equal(t, []string{"0.22", "0.18", "0.1", "1.55", "TE0", "1.84861"}, rec)
}
