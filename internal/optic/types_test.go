package optic

import (
	"errors"
	"testing"
)

func TestModeRoundTrip(t *testing.T) {
	for _, s := range []string{"TE", "TM"} {
		m, err := ParseMode(s)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", s, err)
		}
		if m.String() != s {
			t.Errorf("ParseMode(%q).String() = %q", s, m.String())
		}
	}
}

func TestModeOpposite(t *testing.T) {
	if TE.Opposite() != TM {
		t.Error("TE.Opposite() != TM")
	}
	if TM.Opposite() != TE {
		t.Error("TM.Opposite() != TE")
	}
}

func TestParseModeUnknown(t *testing.T) {
	for _, s := range []string{"te", "TEM", ""} {
		if _, err := ParseMode(s); !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) = %v, want ErrUnknownMode", s, err)
		}
	}
}

func TestDeviceRoundTrip(t *testing.T) {
	for _, s := range []string{"strip", "slot"} {
		d, err := ParseDevice(s)
		if err != nil {
			t.Fatalf("ParseDevice(%q): %v", s, err)
		}
		if d.String() != s {
			t.Errorf("ParseDevice(%q).String() = %q", s, d.String())
		}
	}
}

func TestParseDeviceUnknown(t *testing.T) {
	if _, err := ParseDevice("ridge"); !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("expected ErrUnknownDevice, got %v", err)
	}
}
