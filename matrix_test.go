package pensool

import (
	"errors"
	"math"
	"testing"
)

func TestDeriveOrder(t *testing.T) {
	tests := []struct {
		name        string
		translation Vec2
		scale       Vec2
		rotation    float64
		in          Vec2
		want        Vec2
	}{
		{"identity", V2(0, 0), V2(1, 1), 0, V2(3, 4), V2(3, 4)},
		{"scale then translate", V2(10, 10), V2(100, 100), 0, V2(1, 1), V2(110, 110)},
		// rotation first: (1,0) -> (0,1), scaled to (0,2), translated to (5,2)
		{"rotate scale translate", V2(5, 0), V2(2, 2), math.Pi / 2, V2(1, 0), V2(5, 2)},
		{"non-uniform scale after rotation", V2(0, 0), V2(3, 1), math.Pi / 2, V2(1, 0), V2(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Derive(tt.translation, tt.scale, tt.rotation)
			got := m.TransformPoint(tt.in)
			if !got.Approx(tt.want, eps) {
				t.Errorf("Derive(%v,%v,%v).TransformPoint(%v) = %v, want %v",
					tt.translation, tt.scale, tt.rotation, tt.in, got, tt.want)
			}
		})
	}
}

func TestInverseRoundTrip(t *testing.T) {
	points := []Vec2{V2(0, 0), V2(1, 0), V2(-3.5, 7.25), V2(1e3, -1e3)}
	tests := []struct {
		name        string
		translation Vec2
		scale       Vec2
		rotation    float64
	}{
		{"translate", V2(10, -20), V2(1, 1), 0},
		{"scale", V2(0, 0), V2(100, 0.5), 0},
		{"rotate", V2(0, 0), V2(1, 1), 1.2},
		{"all", V2(-7, 3), V2(-2, 40), -2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Derive(tt.translation, tt.scale, tt.rotation)
			inv, err := m.Inverse()
			if err != nil {
				t.Fatalf("Inverse() error = %v", err)
			}
			roundTrip := inv.Compose(m)
			for _, p := range points {
				if got := roundTrip.TransformPoint(p); !got.Approx(p, 1e-6) {
					t.Errorf("inverse.Compose(m)(%v) = %v", p, got)
				}
				if got := inv.TransformPoint(m.TransformPoint(p)); !got.Approx(p, 1e-6) {
					t.Errorf("inverse(m(%v)) = %v", p, got)
				}
			}
		})
	}
}

func TestInverseSingular(t *testing.T) {
	m := Derive(V2(5, 5), V2(0, 3), 0)
	inv, err := m.Inverse()
	if !errors.Is(err, ErrSingularTransform) {
		t.Fatalf("Inverse() error = %v, want ErrSingularTransform", err)
	}
	if !inv.IsIdentity() {
		t.Errorf("Inverse() fallback = %+v, want identity", inv)
	}
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("Invert() = %+v, want identity", got)
	}
}

func TestComposeOrder(t *testing.T) {
	// Compose applies the receiver first.
	m := Scale(2, 2).Compose(Translate(10, 0))
	if got := m.TransformPoint(V2(1, 1)); !got.Approx(V2(12, 2), eps) {
		t.Errorf("Scale.Compose(Translate)(1,1) = %v, want (12,2)", got)
	}
	m = Translate(10, 0).Compose(Scale(2, 2))
	if got := m.TransformPoint(V2(1, 1)); !got.Approx(V2(22, 2), eps) {
		t.Errorf("Translate.Compose(Scale)(1,1) = %v, want (22,2)", got)
	}
}

func TestTransformDistanceIgnoresTranslation(t *testing.T) {
	m := Derive(V2(100, 200), V2(3, 3), 0)
	if got := m.TransformDistance(V2(1, 2)); !got.Approx(V2(3, 6), eps) {
		t.Errorf("TransformDistance = %v, want (3,6)", got)
	}
	if got := m.ScaleFactor(); math.Abs(got-3) > eps {
		t.Errorf("ScaleFactor = %v, want 3", got)
	}
}

func TestIsTranslation(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"pure translation", Translate(10, 20), true},
		{"uniform scale", Scale(2, 2), false},
		{"rotation", Rotate(math.Pi / 4), false},
		{"derived translation only", Derive(V2(1, 2), V2(1, 1), 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsTranslation(); got != tt.want {
				t.Errorf("Matrix%+v.IsTranslation() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}
