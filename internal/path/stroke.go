package path

import (
	"math"

	"github.com/pensool/pensool"
)

// Cap is the shape of an open subpath's ends.
type Cap uint8

const (
	// CapButt ends the stroke flush with the endpoint.
	CapButt Cap = iota

	// CapRound ends the stroke with a half disc.
	CapRound

	// CapSquare extends the stroke by half its width past the endpoint.
	CapSquare
)

// Stroke describes the pen used for stroking. Joins are always round.
type Stroke struct {
	Width float64
	Cap   Cap
}

// Extents is an axis-aligned floating-point box. The zero value is empty.
type Extents struct {
	X0, Y0, X1, Y1 float64
	Valid          bool
}

// Add grows e to include p.
func (e *Extents) Add(p pensool.Vec2) {
	if !e.Valid {
		*e = Extents{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y, Valid: true}
		return
	}
	e.X0 = math.Min(e.X0, p.X)
	e.Y0 = math.Min(e.Y0, p.Y)
	e.X1 = math.Max(e.X1, p.X)
	e.Y1 = math.Max(e.Y1, p.Y)
}

// addDisc grows e to include the square around c with half side r.
func (e *Extents) addDisc(c pensool.Vec2, r float64) {
	e.Add(pensool.V2(c.X-r, c.Y-r))
	e.Add(pensool.V2(c.X+r, c.Y+r))
}

// PathExtents returns the box of the ideal (zero width) polylines.
func PathExtents(lines []Polyline) Extents {
	var e Extents
	for _, line := range lines {
		for _, p := range line.Points {
			e.Add(p)
		}
	}
	return e
}

// segment is a non-degenerate piece of a polyline.
type segment struct {
	a, b   pensool.Vec2
	dir    pensool.Vec2 // unit direction a→b
	length float64
}

// segments drops zero-length pieces. Closed polylines include the closing piece.
func segments(line Polyline) []segment {
	n := len(line.Points)
	count := n - 1
	if line.Closed {
		count = n
	}
	segs := make([]segment, 0, max(count, 0))
	for i := 0; i < count; i++ {
		a := line.Points[i]
		b := line.Points[(i+1)%n]
		d := b.Sub(a)
		l := d.Length()
		if l < 1e-12 {
			continue
		}
		segs = append(segs, segment{a: a, b: b, dir: d.Div(l), length: l})
	}
	return segs
}

// StrokeExtents returns the box of the ink laid down by stroking lines with s.
func StrokeExtents(lines []Polyline, s Stroke) Extents {
	var e Extents
	hw := s.Width / 2
	for _, line := range lines {
		segs := segments(line)
		if len(segs) == 0 {
			if len(line.Points) >= 2 && s.Cap != CapButt {
				e.addDisc(line.Points[0], hw)
			}
			continue
		}
		for _, sg := range segs {
			n := sg.dir.Orthogonal(pensool.Right).Mul(hw)
			e.Add(sg.a.Add(n))
			e.Add(sg.a.Sub(n))
			e.Add(sg.b.Add(n))
			e.Add(sg.b.Sub(n))
		}
		for _, v := range joints(line, segs) {
			e.addDisc(v, hw)
		}
		if line.Closed {
			continue
		}
		first, last := segs[0], segs[len(segs)-1]
		switch s.Cap {
		case CapRound:
			e.addDisc(first.a, hw)
			e.addDisc(last.b, hw)
		case CapSquare:
			for _, end := range [2]struct {
				p, out pensool.Vec2
			}{{first.a, first.dir.Neg()}, {last.b, last.dir}} {
				n := end.out.Orthogonal(pensool.Right).Mul(hw)
				tip := end.p.Add(end.out.Mul(hw))
				e.Add(tip.Add(n))
				e.Add(tip.Sub(n))
			}
		}
	}
	return e
}

// InStroke reports whether p lies in the ink of stroking lines with s.
func InStroke(lines []Polyline, s Stroke, p pensool.Vec2) bool {
	hw := s.Width / 2
	for _, line := range lines {
		segs := segments(line)
		if len(segs) == 0 {
			if len(line.Points) >= 2 && inDegenerate(line.Points[0], s, p) {
				return true
			}
			continue
		}
		for i, sg := range segs {
			lo, hi := 0.0, sg.length
			if !line.Closed && s.Cap == CapSquare {
				if i == 0 {
					lo = -hw
				}
				if i == len(segs)-1 {
					hi += hw
				}
			}
			rel := p.Sub(sg.a)
			t := rel.Dot(sg.dir)
			if t >= lo && t <= hi && math.Abs(sg.dir.Cross(rel)) <= hw {
				return true
			}
		}
		for _, v := range joints(line, segs) {
			if p.Distance(v) <= hw {
				return true
			}
		}
		if !line.Closed && s.Cap == CapRound {
			if p.Distance(segs[0].a) <= hw || p.Distance(segs[len(segs)-1].b) <= hw {
				return true
			}
		}
	}
	return false
}

// inDegenerate handles a zero-length subpath: a square cap inks an axis
// aligned square, a round cap a disc, a butt cap nothing.
func inDegenerate(c pensool.Vec2, s Stroke, p pensool.Vec2) bool {
	hw := s.Width / 2
	switch s.Cap {
	case CapSquare:
		return math.Abs(p.X-c.X) <= hw && math.Abs(p.Y-c.Y) <= hw
	case CapRound:
		return p.Distance(c) <= hw
	}
	return false
}

// joints returns the vertices where two segments meet.
func joints(line Polyline, segs []segment) []pensool.Vec2 {
	if line.Closed {
		pts := make([]pensool.Vec2, len(segs))
		for i, sg := range segs {
			pts[i] = sg.a
		}
		return pts
	}
	if len(segs) < 2 {
		return nil
	}
	pts := make([]pensool.Vec2, 0, len(segs)-1)
	for _, sg := range segs[1:] {
		pts = append(pts, sg.a)
	}
	return pts
}

// InFill reports whether p is inside lines under the non-zero rule.
func InFill(lines []Polyline, p pensool.Vec2) bool {
	return Winding(lines, p) != 0
}
