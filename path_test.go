package pensool

import (
	"math"
	"testing"
)

func TestPathRectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 20)

	count := len(p.Elements())
	if count != 5 { // MoveTo, LineTo x3, Close
		t.Fatalf("expected 5 elements, got %d", count)
	}
	if _, ok := p.Elements()[4].(Close); !ok {
		t.Errorf("last element = %T, want Close", p.Elements()[4])
	}
	if got := p.CurrentPoint(); got != V2(0, 0) {
		t.Errorf("CurrentPoint after Close = %v, want (0,0)", got)
	}
}

func TestPathArcStartsSubpath(t *testing.T) {
	p := NewPath()
	p.Arc(0.5, 0.5, 0.5, 0, 2*math.Pi)

	first, ok := p.Elements()[0].(MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", p.Elements()[0])
	}
	if !first.Point.Approx(V2(1, 0.5), eps) {
		t.Errorf("arc start = %v, want (1,0.5)", first.Point)
	}
	// Four quarter segments for a full turn.
	if got := len(p.Elements()); got != 5 {
		t.Errorf("full arc has %d elements, want 5", got)
	}
	if got := p.CurrentPoint(); !got.Approx(V2(1, 0.5), eps) {
		t.Errorf("arc end = %v, want (1,0.5)", got)
	}
}

func TestPathArcConnectsToCurrentPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(-5, 0)
	p.Arc(0, 0, 1, 0, math.Pi/2)

	line, ok := p.Elements()[1].(LineTo)
	if !ok {
		t.Fatalf("second element = %T, want LineTo", p.Elements()[1])
	}
	if !line.Point.Approx(V2(1, 0), eps) {
		t.Errorf("connecting line ends at %v, want (1,0)", line.Point)
	}
}

func TestPathArcMidpointOnCircle(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 40, 0, math.Pi/2)

	c := p.Elements()[1].(CubicTo)
	p0 := V2(40, 0)
	// Bezier point at t = 0.5.
	mid := p0.Add(c.Control1.Mul(3)).Add(c.Control2.Mul(3)).Add(c.Point).Mul(1.0 / 8)
	if r := mid.Length(); math.Abs(r-40) > 1e-9 {
		t.Errorf("quarter arc midpoint at radius %v, want 40", r)
	}
	if got := c.Control1.Y; math.Abs(got-40*0.5522847498) > 1e-6 {
		t.Errorf("control offset = %v, want %v", got, 40*0.5522847498)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)

	got := p.Transform(Derive(V2(10, 20), V2(100, 100), math.Pi/2))
	end := got.Elements()[1].(LineTo).Point
	if !end.Approx(V2(10, 120), 1e-9) {
		t.Errorf("transformed end = %v, want (10,120)", end)
	}
	if p.Elements()[1].(LineTo).Point != V2(1, 0) {
		t.Error("Transform modified the receiver")
	}
}

func TestPathExtend(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	b := NewPath()
	b.MoveTo(5, 5)
	b.LineTo(6, 6)

	a.Extend(b)
	if _, ok := a.Elements()[1].(LineTo); !ok {
		t.Errorf("Extend kept a MoveTo after a current point: %T", a.Elements()[1])
	}

	empty := NewPath()
	empty.Extend(b)
	if _, ok := empty.Elements()[0].(MoveTo); !ok {
		t.Errorf("Extend onto empty path starts with %T, want MoveTo", empty.Elements()[0])
	}
}
