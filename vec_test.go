package pensool

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"unit x", V2(3, 0), V2(1, 0)},
		{"diagonal", V2(2, 2), V2(math.Sqrt2/2, math.Sqrt2/2)},
		{"negative", V2(0, -5), V2(0, -1)},
		{"zero stays zero", V2(0, 0), V2(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !got.Approx(tt.want, eps) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec2NormalizeCheckedZero(t *testing.T) {
	_, err := Vec2{}.NormalizeChecked()
	if !errors.Is(err, ErrZeroVector) {
		t.Fatalf("NormalizeChecked() error = %v, want ErrZeroVector", err)
	}
	var dge *DegenerateGeometryError
	if !errors.As(err, &dge) || dge.Op != "normalize" {
		t.Errorf("NormalizeChecked() error = %#v, want DegenerateGeometryError{Op: normalize}", err)
	}
}

func TestVec2Orthogonal(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		h    Handedness
		want Vec2
	}{
		{"left of +x", V2(1, 0), Left, V2(0, -1)},
		{"right of +x", V2(1, 0), Right, V2(0, 1)},
		{"left of +y", V2(0, 2), Left, V2(2, 0)},
		{"right of +y", V2(0, 2), Right, V2(-2, 0)},
		{"from negative sign", V2(1, 0), HandednessOf(-3), V2(0, -1)},
		{"from zero sign", V2(1, 0), HandednessOf(0), V2(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Orthogonal(tt.h)
			if !got.Approx(tt.want, eps) {
				t.Errorf("%v.Orthogonal(%d) = %v, want %v", tt.v, tt.h, got, tt.want)
			}
			if got.Dot(tt.v) != 0 {
				t.Errorf("Orthogonal is not perpendicular: dot = %v", got.Dot(tt.v))
			}
		})
	}
}

func TestVec2Angle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{V2(1, 0), 0},
		{V2(0, 1), math.Pi / 2},
		{V2(-1, 0), math.Pi},
		{V2(0, -1), -math.Pi / 2},
		{V2(1, 1), math.Pi / 4},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(got-tt.want) > eps {
			t.Errorf("%v.Angle() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec2ScalarProjection(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		onto Vec2
		want float64
	}{
		{"same quadrant", V2(0, 1), V2(1, 1), 0.7071},
		{"opposite", V2(0, -1), V2(1, 1), -0.7071},
		{"onto axis", V2(3, 4), V2(10, 0), 3},
		{"onto zero", V2(3, 4), V2(0, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ScalarProjection(tt.onto)
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("%v.ScalarProjection(%v) = %v, want %v", tt.v, tt.onto, got, tt.want)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := V2(1, 2), V2(3, -4)
	if got := a.Add(b); got != V2(4, -2) {
		t.Errorf("Add = %v, want (4,-2)", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Errorf("Sub = %v, want (-2,6)", got)
	}
	if got := a.Mul(2); got != V2(2, 4) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := V2(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := V2(1, 0).Rotate(math.Pi / 2); !got.Approx(V2(0, 1), eps) {
		t.Errorf("Rotate = %v, want (0,1)", got)
	}
}
