package waveguide

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/eimlab/internal/grid"
	"github.com/san-kum/eimlab/internal/optic"
)

func TestOuter(t *testing.T) {
	u := []complex128{1, 2, 3}
	v := []complex128{10, 20}

	m := Outer(u, v, 0)

	if len(m) != 3 || len(m[0]) != 2 {
		t.Fatalf("expected 3x2 matrix, got %dx%d", len(m), len(m[0]))
	}
	for i := range u {
		for j := range v {
			if m[i][j] != u[i]*v[j] {
				t.Errorf("m[%d][%d] = %v, want %v", i, j, m[i][j], u[i]*v[j])
			}
		}
	}
}

func TestOuterWorkersMatchSequential(t *testing.T) {
	u := make([]complex128, 37)
	v := make([]complex128, 23)
	for i := range u {
		u[i] = complex(float64(i), 0)
	}
	for j := range v {
		v[j] = complex(0, float64(j))
	}

	seq := Outer(u, v, 1)
	par := Outer(u, v, 5)

	for i := range seq {
		for j := range seq[i] {
			if seq[i][j] != par[i][j] {
				t.Fatalf("element (%d,%d) differs between worker counts", i, j)
			}
		}
	}
}

func TestStripModeField2D(t *testing.T) {
	s := soiStrip(optic.TE, 0.5, 0)

	vert := grid.Linspace(-0.5, 0.72, 31)
	lat := grid.Linspace(-0.5, 1.0, 41)

	field, err := s.ModeField2D(vert, lat, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(field) != len(vert) {
		t.Fatalf("expected %d rows, got %d", len(vert), len(field))
	}
	for _, row := range field {
		if len(row) != len(lat) {
			t.Fatalf("expected %d columns, got %d", len(lat), len(row))
		}
	}

	// Outer product of two 1D profiles: every 2x2 minor vanishes.
	for _, i := range []int{0, 10, 20} {
		for _, j := range []int{0, 15, 30} {
			det := field[i][j]*field[i+5][j+5] - field[i][j+5]*field[i+5][j]
			if cmplx.Abs(det) > 1e-9 {
				t.Errorf("minor (%d,%d) = %v, field is not rank one", i, j, det)
			}
		}
	}

	// The field peaks inside the core, not in the cladding.
	var peak float64
	for _, row := range field {
		for _, v := range row {
			if a := cmplx.Abs(v); a > peak {
				peak = a
			}
		}
	}
	corner := cmplx.Abs(field[0][0])
	if !(peak > 10*corner) {
		t.Errorf("expected a confined mode, peak %e vs corner %e", peak, corner)
	}
	if math.IsNaN(peak) {
		t.Error("field contains NaN")
	}
}

func TestSlotModeField2DUnsupported(t *testing.T) {
	s := Slot{
		Wavelength: 1.55,
		TCore:      0.22,
		WCore:      0.18,
		WSlot:      0.1,
		NBox:       1.44,
		NClad:      1.44,
		NCore:      3.47,
		NSlot:      1.44,
		Mode:       optic.TE,
	}

	x := grid.Linspace(-1, 1, 8)
	field, err := s.ModeField2D(x, x, 0)

	if !errors.Is(err, optic.ErrFieldUnsupported) {
		t.Errorf("expected ErrFieldUnsupported, got %v", err)
	}
	if field != nil {
		t.Error("expected nil field on unsupported geometry")
	}
}
