package pensool

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The linear part (a, b, d, e) carries rotation and scale, (c, f) the translation.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// singularEpsilon is the determinant magnitude below which a matrix
// is treated as not invertible.
const singularEpsilon = 1e-10

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Derive builds the transform of a node from its translation, scale and
// rotation. Points are rotated first, then scaled, then translated:
//
//	p' = T · S · R · p
//
// The result is a pure function of the three arguments.
func Derive(translation, scale Vec2, rotation float64) Matrix {
	return Translate(translation.X, translation.Y).
		Multiply(Scale(scale.X, scale.Y)).
		Multiply(Rotate(rotation))
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Compose returns the transform that applies m first, then other.
func (m Matrix) Compose(other Matrix) Matrix {
	return other.Multiply(m)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformDistance applies the transformation to a displacement, ignoring
// the translation. Used for pen widths and drag deltas, not positions.
func (m Matrix) TransformDistance(d Vec2) Vec2 {
	return Vec2{
		X: m.A*d.X + m.B*d.Y,
		Y: m.D*d.X + m.E*d.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Inverse returns the inverse matrix, or the identity and
// ErrSingularTransform when the determinant is approximately zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon {
		return Identity(), &DegenerateGeometryError{Op: "invert", Err: ErrSingularTransform}
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	inv, _ := m.Inverse()
	return inv
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// ScaleFactor returns the geometric mean of the axis scale factors,
// sqrt(|det|). It converts a user-space length into an approximate device length.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// Approx returns true if every coefficient of m is within epsilon of other.
func (m Matrix) Approx(other Matrix, epsilon float64) bool {
	return math.Abs(m.A-other.A) < epsilon && math.Abs(m.B-other.B) < epsilon &&
		math.Abs(m.C-other.C) < epsilon && math.Abs(m.D-other.D) < epsilon &&
		math.Abs(m.E-other.E) < epsilon && math.Abs(m.F-other.F) < epsilon
}
