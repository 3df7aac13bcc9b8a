// Package path provides internal path processing utilities: flattening
// curves into polylines and the stroke geometry behind extents and hit tests.
package path

import (
	"math"

	"github.com/pensool/pensool"
)

// Tolerance is the maximum distance from the curve for flattening, in the
// units of the path being flattened (device pixels for render paths).
const Tolerance = 0.1

// Polyline is one flattened subpath.
type Polyline struct {
	Points []pensool.Vec2
	Closed bool
}

// Flatten converts a path with curves into polylines, one per subpath.
func Flatten(p *pensool.Path, tolerance float64) []Polyline {
	var lines []Polyline
	var cur *Polyline
	var current pensool.Vec2

	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			lines = append(lines, *cur)
		}
		cur = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case pensool.MoveTo:
			flush()
			cur = &Polyline{Points: []pensool.Vec2{e.Point}}
			current = e.Point

		case pensool.LineTo:
			if cur == nil {
				cur = &Polyline{Points: []pensool.Vec2{current}}
			}
			cur.Points = append(cur.Points, e.Point)
			current = e.Point

		case pensool.CubicTo:
			if cur == nil {
				cur = &Polyline{Points: []pensool.Vec2{current}}
			}
			flattenCubicRec(current, e.Control1, e.Control2, e.Point, tolerance, &cur.Points, 0)
			current = e.Point

		case pensool.Close:
			if cur != nil {
				cur.Closed = true
				current = cur.Points[0]
				flush()
			}
		}
	}
	flush()

	return lines
}

// maxDepth bounds the subdivision so degenerate control points cannot recurse forever.
const maxDepth = 16

// flattenCubicRec recursively subdivides a cubic Bezier curve.
func flattenCubicRec(p0, p1, p2, p3 pensool.Vec2, tolerance float64, points *[]pensool.Vec2, depth int) {
	d1 := SegmentDistance(p1, p0, p3)
	d2 := SegmentDistance(p2, p0, p3)
	if depth >= maxDepth || math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	// de Casteljau subdivision at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, points, depth+1)
	flattenCubicRec(s, r1, q2, p3, tolerance, points, depth+1)
}

// SegmentDistance returns the distance from p to the segment (a, b).
func SegmentDistance(p, a, b pensool.Vec2) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// Winding returns the non-zero winding number of the polylines around p.
// Open polylines are implicitly closed, as they are when filled.
func Winding(lines []Polyline, p pensool.Vec2) int {
	winding := 0
	for _, line := range lines {
		n := len(line.Points)
		for i := 0; i < n; i++ {
			a := line.Points[i]
			b := line.Points[(i+1)%n]
			if a.Y <= p.Y {
				if b.Y > p.Y && isLeft(a, b, p) > 0 {
					winding++
				}
			} else if b.Y <= p.Y && isLeft(a, b, p) < 0 {
				winding--
			}
		}
	}
	return winding
}

// isLeft is positive when p lies left of the directed line a→b.
func isLeft(a, b, p pensool.Vec2) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}
