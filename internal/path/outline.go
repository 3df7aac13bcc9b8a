package path

import (
	"math"

	"github.com/pensool/pensool"
)

// Outline returns polygons whose union covers the ink of stroking lines
// with s: one quad per segment, a disc per joint, and the caps.
//
// Every polygon has negative signed area (clockwise with y up), so a
// rasterizer that accumulates signed coverage paints the union without
// cancelling overlaps.
func Outline(lines []Polyline, s Stroke) [][]pensool.Vec2 {
	hw := s.Width / 2
	if hw <= 0 {
		return nil
	}

	var polys [][]pensool.Vec2
	for _, line := range lines {
		segs := segments(line)
		if len(segs) == 0 {
			if len(line.Points) < 2 {
				continue
			}
			c := line.Points[0]
			switch s.Cap {
			case CapSquare:
				polys = append(polys, []pensool.Vec2{
					pensool.V2(c.X-hw, c.Y+hw),
					pensool.V2(c.X+hw, c.Y+hw),
					pensool.V2(c.X+hw, c.Y-hw),
					pensool.V2(c.X-hw, c.Y-hw),
				})
			case CapRound:
				polys = append(polys, Disc(c, hw))
			}
			continue
		}

		last := len(segs) - 1
		for i, sg := range segs {
			a, b := sg.a, sg.b
			if !line.Closed && s.Cap == CapSquare {
				if i == 0 {
					a = a.Sub(sg.dir.Mul(hw))
				}
				if i == last {
					b = b.Add(sg.dir.Mul(hw))
				}
			}
			n := sg.dir.Orthogonal(pensool.Right).Mul(hw)
			polys = append(polys, []pensool.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
		}
		for _, v := range joints(line, segs) {
			polys = append(polys, Disc(v, hw))
		}
		if !line.Closed && s.Cap == CapRound {
			polys = append(polys, Disc(segs[0].a, hw), Disc(segs[last].b, hw))
		}
	}
	return polys
}

// Disc approximates a circle by a polygon, clockwise with y up.
func Disc(c pensool.Vec2, r float64) []pensool.Vec2 {
	sides := int(math.Ceil(math.Pi * r))
	sides = max(8, min(sides, 64))
	pts := make([]pensool.Vec2, sides)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / float64(sides)
		pts[i] = pensool.V2(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

// SignedArea returns twice the signed area of the polygon (shoelace sum).
func SignedArea(poly []pensool.Vec2) float64 {
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p.Cross(q)
	}
	return sum
}
