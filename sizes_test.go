package imgcap_test

import (
	"testing"

	imgcap "github.com/pleiades-br/canopus-imgcap"
)

func TestParseSize(t *testing.T) {
	presets := map[string]imgcap.Size{
		"small":  {Width: 640, Height: 480},
		"medium": {Width: 1640, Height: 1232},
		"large":  {Width: 1920, Height: 1080},
	}
	for name, exp := range presets {
		size, err := imgcap.ParseSize(name)
		if err != nil {
			t.Fatalf("parsing preset %q: %v", name, err)
		}
		if size != exp {
			t.Fatalf("preset %q, got %v, expected %v", name, size, exp)
		}
	}

	size, err := imgcap.ParseSize("LARGE")
	if err != nil {
		t.Fatalf("parsing uppercase preset: %v", err)
	}
	if size != presets["large"] {
		t.Fatalf("uppercase preset, got %v, expected %v", size, presets["large"])
	}

	size, err = imgcap.ParseSize("800x600")
	if err != nil {
		t.Fatalf("parsing explicit size: %v", err)
	}
	if (size != imgcap.Size{Width: 800, Height: 600}) {
		t.Fatalf("explicit size, got %v, expected 800x600", size)
	}

	for _, bad := range []string{"huge", "", "800x", "x600", "-640x480", "0x0", "640by480"} {
		if _, err := imgcap.ParseSize(bad); err == nil {
			t.Fatalf("missing error for size %q", bad)
		}
	}
}

func TestSizeString(t *testing.T) {
	s := imgcap.Size{Width: 1640, Height: 1232}
	if s.String() != "1640x1232" {
		t.Fatalf("size string, got %q, expected %q", s.String(), "1640x1232")
	}
}
