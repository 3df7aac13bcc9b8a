package pensool

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"short", "#f00", RGB(1, 0, 0)},
		{"long", "00ff00", RGB(0, 1, 0)},
		{"with alpha", "#0000ff80", RGBA{0, 0, 1, 128.0 / 255}},
		{"invalid falls back to black", "zzz", Black},
		{"wrong length falls back to black", "#12345", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.in)
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 || math.Abs(got.A-tt.want.A) > 1e-9 {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBAUnmarshalText(t *testing.T) {
	var c RGBA
	if err := c.UnmarshalText([]byte("#320000")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if c != Highlight {
		t.Errorf("UnmarshalText(#320000) = %+v, want Highlight %+v", c, Highlight)
	}
	if err := c.UnmarshalText([]byte("#nothex")); err == nil {
		t.Error("UnmarshalText(#nothex) error = nil, want error")
	}
}

func TestRGBAColorRoundTrip(t *testing.T) {
	c := RGB(1, 0.5, 0)
	r, g, b, a := c.Color().RGBA()
	if r != 0xffff || b != 0 || a != 0xffff {
		t.Errorf("Color().RGBA() = (%d,%d,%d,%d)", r, g, b, a)
	}
	back := FromColor(c.Color())
	if math.Abs(back.G-0.5) > 0.01 {
		t.Errorf("FromColor(Color()).G = %v, want ~0.5", back.G)
	}
}
