package ggdxf

import (
	"math"
	"testing"
)

func pointsNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	if got := m.TransformPoint(Pt(1, 1)); !pointsNear(got, Pt(12, 2)) {
		t.Errorf("got %v, want (12, 2)", got)
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(math.Pi / 2))
	if got := m.TransformVector(Pt(1, 0)); !pointsNear(got, Pt(0, 1)) {
		t.Errorf("got %v, want (0, 1)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -4)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(0.7)},
		{"shear", Shear(0.3, 0.1)},
		{"composite", Translate(10, 20).Multiply(Rotate(1)).Multiply(Scale(3, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert reported degenerate")
			}
			p := Pt(1.5, -2.5)
			if got := inv.TransformPoint(tt.m.TransformPoint(p)); !pointsNear(got, p) {
				t.Errorf("round trip = %v, want %v", got, p)
			}
		})
	}
}

func TestMatrixIsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), false},
		{"zero", Matrix{}, true},
		{"flat x", Scale(0, 1), true},
		{"collinear", Matrix{A: 1, B: 2, D: 2, E: 4}, true},
		{"tiny", Scale(1e-7, 1e-7), true},
		{"nan", Matrix{A: math.NaN(), E: 1}, true},
		{"inf translation", Matrix{A: 1, E: 1, C: math.Inf(1)}, true},
		{"mirror", Scale(-1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsDegenerate(); got != tt.want {
				t.Errorf("IsDegenerate() = %v, want %v", got, tt.want)
			}
			if _, ok := tt.m.Invert(); ok == tt.want {
				t.Errorf("Invert ok = %v, want %v", ok, !tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := NewRect(10, 10, 0, 0)
	if r != (Rect{0, 0, 10, 10}) {
		t.Errorf("NewRect = %+v", r)
	}
	if got := r.Intersect(NewRect(5, 5, 20, 20)); got != (Rect{5, 5, 10, 10}) {
		t.Errorf("Intersect = %+v", got)
	}
	if !r.Intersect(NewRect(20, 20, 30, 30)).IsEmpty() {
		t.Error("disjoint intersection not empty")
	}
	got := r.Transform(Rotate(math.Pi / 4))
	h := 10 * math.Sqrt2 / 2
	if math.Abs(got.MinX+h) > 1e-9 || math.Abs(got.MaxX-h) > 1e-9 || math.Abs(got.MaxY-2*h) > 1e-9 {
		t.Errorf("rotated bounds = %+v", got)
	}
}
