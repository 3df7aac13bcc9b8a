package pensool

import "math"

// Vec2 is a 2D point or displacement.
// Positions and directions share the type; the operation decides which
// interpretation applies (see Matrix.TransformPoint and Matrix.TransformDistance).
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Downward is the unit vector pointing down the screen (device y grows downward).
var Downward = Vec2{X: 0, Y: 1}

// Handedness selects which of the two perpendiculars Orthogonal returns.
type Handedness int

const (
	// Left rotates a vector 90 degrees clockwise on screen: (x, y) -> (y, -x).
	Left Handedness = -1

	// Right rotates a vector 90 degrees counter-clockwise on screen: (x, y) -> (-y, x).
	Right Handedness = 1
)

// HandednessOf maps a signed quantity onto a handedness: negative is Left,
// zero and positive are Right.
func HandednessOf(sign float64) Handedness {
	if sign < 0 {
		return Left
	}
	return Right
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector; use NormalizeChecked
// when the caller needs to know.
func (v Vec2) Normalize() Vec2 {
	n, _ := v.NormalizeChecked()
	return n
}

// NormalizeChecked is Normalize that reports ErrZeroVector for a zero input.
func (v Vec2) NormalizeChecked() (Vec2, error) {
	length := v.Length()
	if length == 0 {
		return Vec2{}, &DegenerateGeometryError{Op: "normalize", Err: ErrZeroVector}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}, nil
}

// Orthogonal returns v rotated by 90 degrees. Left yields (y, -x),
// Right yields (-y, x). The length is preserved.
func (v Vec2) Orthogonal(h Handedness) Vec2 {
	if h < 0 {
		return Vec2{X: v.Y, Y: -v.X}
	}
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns atan2(y, x), in [-π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle from v to w in radians.
func (v Vec2) AngleTo(w Vec2) float64 {
	return math.Atan2(v.Cross(w), v.Dot(w))
}

// ScalarProjection returns the signed length of v projected onto onto.
// Negative means v points away from onto. Projecting onto the zero vector yields 0.
func (v Vec2) ScalarProjection(onto Vec2) float64 {
	return v.Dot(onto.Normalize())
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}
