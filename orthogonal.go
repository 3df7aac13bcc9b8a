package pensool

// Orthogonal vectors give the outward direction of a shape's edge at a
// point. Handle menus lay themselves out along them.

// LineOrthogonal returns the unit left-handed orthogonal of the segment p1→p2.
// A zero-length segment yields the zero vector.
func LineOrthogonal(p1, p2 Vec2) Vec2 {
	return p2.Sub(p1).Orthogonal(Left).Normalize()
}

// MagnitudeToLine returns the signed distance of the relative point p along
// the left-handed orthogonal of p1→p2.
func MagnitudeToLine(p1, p2, p Vec2) float64 {
	return p.ScalarProjection(LineOrthogonal(p1, p2))
}

// DistanceToLine returns the unsigned distance from p to the infinite line through p1 and p2.
func DistanceToLine(p1, p2, p Vec2) float64 {
	d := MagnitudeToLine(p1, p2, p.Sub(p1))
	if d < 0 {
		return -d
	}
	return d
}

// CircleOrthogonal returns the unit vector from center toward p.
// At the center itself there is no direction and the zero vector is returned.
func CircleOrthogonal(center, p Vec2) Vec2 {
	return p.Sub(center).Normalize()
}

// RectOrthogonal returns one of the four axis-aligned outward unit vectors
// for p relative to r. The two diagonals divide the plane into four
// quadrants; the quadrant containing p selects the side.
func RectOrthogonal(r Rect, p Vec2) Vec2 {
	c := r.Corners()
	fromUpperLeft := p.Sub(c[0])
	fromLowerLeft := p.Sub(c[3])

	belowFalling := MagnitudeToLine(c[0], c[2], fromUpperLeft) < 0
	belowRising := MagnitudeToLine(c[3], c[1], fromLowerLeft) < 0

	switch {
	case belowFalling && belowRising:
		return Vec2{X: 0, Y: 1}
	case belowFalling:
		return Vec2{X: -1, Y: 0}
	case belowRising:
		return Vec2{X: 1, Y: 0}
	default:
		return Vec2{X: 0, Y: -1}
	}
}
