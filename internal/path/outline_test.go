package path

import (
	"math"
	"testing"

	"github.com/pensool/pensool"
)

func TestOutlineOrientation(t *testing.T) {
	p := pensool.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(40, 10)
	p.LineTo(-20, 30)
	p.LineTo(5, -7)

	for _, c := range []Cap{CapButt, CapRound, CapSquare} {
		polys := Outline(Flatten(p, Tolerance), Stroke{Width: 6, Cap: c})
		if len(polys) == 0 {
			t.Fatalf("Outline(cap %d) returned no polygons", c)
		}
		for i, poly := range polys {
			if a := SignedArea(poly); a >= 0 {
				t.Errorf("cap %d: polygon %d signed area %v, want negative", c, i, a)
			}
		}
	}
}

func TestOutlineCounts(t *testing.T) {
	p := pensool.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	lines := Flatten(p, Tolerance)

	tests := []struct {
		name string
		cap  Cap
		want int
	}{
		{"butt", CapButt, 3},   // two quads, one joint
		{"square", CapSquare, 3},
		{"round", CapRound, 5}, // plus two end discs
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Outline(lines, Stroke{Width: 2, Cap: tt.cap})); got != tt.want {
				t.Errorf("len(Outline) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutlineZeroWidth(t *testing.T) {
	if polys := Outline(Flatten(square(10), Tolerance), Stroke{}); polys != nil {
		t.Errorf("Outline(width 0) = %d polygons, want nil", len(polys))
	}
}

func TestDisc(t *testing.T) {
	c := pensool.V2(3, 4)
	pts := Disc(c, 10)
	if len(pts) < 8 {
		t.Fatalf("Disc has %d sides, want at least 8", len(pts))
	}
	for _, pt := range pts {
		if d := pt.Distance(c); math.Abs(d-10) > 1e-9 {
			t.Errorf("Disc vertex %v at distance %v, want 10", pt, d)
		}
	}
}
