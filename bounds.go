package pensool

import (
	"fmt"
	"math"
)

// Bounds is an axis-aligned integer rectangle in device pixels.
//
// Width == 0 && Height == 0 is the null bounds: it is the identity of Union
// and intersects no point. The zero value is the null bounds.
//
// Width and Height are never negative for bounds built by FromExtents or
// Union.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// NullBounds returns the null bounds.
func NullBounds() Bounds {
	return Bounds{}
}

// FromExtents snaps floating-point extents outward to whole pixels:
// the minimum corner is floored and the maximum corner is ceiled, so inked
// geometry is never clipped. The corners may be given in any order.
// A degenerate extent (zero width or height) is valid. A single point
// that lands on whole pixels on both axes yields the 1x1 bounds at that
// point rather than the null bounds.
func FromExtents(x0, y0, x1, y1 float64) Bounds {
	minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
	minY, maxY := math.Min(y0, y1), math.Max(y0, y1)
	ulx := int(math.Floor(minX))
	uly := int(math.Floor(minY))
	lrx := int(math.Ceil(maxX))
	lry := int(math.Ceil(maxY))
	if lrx == ulx && lry == uly {
		return Bounds{X: ulx, Y: uly, Width: 1, Height: 1}
	}
	return Bounds{X: ulx, Y: uly, Width: lrx - ulx, Height: lry - uly}
}

// IsNull reports whether b is the null bounds.
func (b Bounds) IsNull() bool {
	return b.Width == 0 && b.Height == 0
}

// Union returns the smallest bounds containing both b and other.
// The null bounds is the identity.
func (b Bounds) Union(other Bounds) Bounds {
	if other.IsNull() {
		return b
	}
	if b.IsNull() {
		return other
	}
	ulx := min(b.X, other.X)
	uly := min(b.Y, other.Y)
	lrx := max(b.X+b.Width, other.X+other.Width)
	lry := max(b.Y+b.Height, other.Y+other.Height)
	return Bounds{X: ulx, Y: uly, Width: lrx - ulx, Height: lry - uly}
}

// IsIntersect reports whether p lies inside b, edges included.
// The null bounds intersects nothing.
func (b Bounds) IsIntersect(p Vec2) bool {
	if b.IsNull() {
		return false
	}
	return p.X >= float64(b.X) && p.X <= float64(b.X+b.Width) &&
		p.Y >= float64(b.Y) && p.Y <= float64(b.Y+b.Height)
}

// Contains reports whether other lies entirely inside b.
// Every bounds contains the null bounds.
func (b Bounds) Contains(other Bounds) bool {
	if other.IsNull() {
		return true
	}
	if b.IsNull() {
		return false
	}
	return other.X >= b.X && other.Y >= b.Y &&
		other.X+other.Width <= b.X+b.Width &&
		other.Y+other.Height <= b.Y+b.Height
}

// Center returns the center using integer division, so odd sizes round down.
func (b Bounds) Center() Vec2 {
	return Vec2{X: float64(b.X + b.Width/2), Y: float64(b.Y + b.Height/2)}
}

// Corners returns the corners clockwise on screen starting at the origin:
// upper left, upper right, lower right, lower left.
func (b Bounds) Corners() [4]Vec2 {
	return b.Rect().Corners()
}

// Sides returns the four sides as consecutive corner pairs, the last side
// closing back to the first corner.
func (b Bounds) Sides() [4][2]Vec2 {
	c := b.Corners()
	var sides [4][2]Vec2
	for i := range c {
		sides[i] = [2]Vec2{c[i], c[(i+1)%len(c)]}
	}
	return sides
}

// Rect converts b to a floating-point rectangle.
func (b Bounds) Rect() Rect {
	return Rect{X: float64(b.X), Y: float64(b.Y), W: float64(b.Width), H: float64(b.Height)}
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", b.X, b.Y, b.Width, b.Height)
}

// Rect is a floating-point axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Corners returns the corners in the same order as Bounds.Corners.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// Center returns the exact center of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
