package clip

import (
	"math"
	"testing"
)

func assertPointNear(t *testing.T, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEdgeClipper_ClipLine(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	tests := []struct {
		name         string
		p0, p1       Point
		want0, want1 Point
		wantVisible  bool
	}{
		{"inside", Pt(10, 10), Pt(90, 90), Pt(10, 10), Pt(90, 90), true},
		{"from left", Pt(-50, 50), Pt(50, 50), Pt(0, 50), Pt(50, 50), true},
		{"to right", Pt(50, 50), Pt(150, 50), Pt(50, 50), Pt(100, 50), true},
		{"through", Pt(-10, 50), Pt(110, 50), Pt(0, 50), Pt(100, 50), true},
		{"diagonal", Pt(-10, -10), Pt(110, 110), Pt(0, 0), Pt(100, 100), true},
		{"left of", Pt(-50, 50), Pt(-10, 50), Point{}, Point{}, false},
		{"above", Pt(50, -50), Pt(50, -10), Point{}, Point{}, false},
		{"corner miss", Pt(-10, 5), Pt(5, -10), Point{}, Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := ec.ClipLine(tt.p0, tt.p1)
			if ok != tt.wantVisible {
				t.Fatalf("visible = %v, want %v", ok, tt.wantVisible)
			}
			if !ok {
				return
			}
			assertPointNear(t, a, tt.want0)
			assertPointNear(t, b, tt.want1)
		})
	}
}

func TestEdgeClipper_ClipPolyline(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 10, 10))

	t.Run("inside stays one run", func(t *testing.T) {
		runs := ec.ClipPolyline([]Point{{1, 1}, {5, 1}, {5, 5}}, false)
		if len(runs) != 1 || len(runs[0]) != 3 {
			t.Fatalf("runs = %v", runs)
		}
	})

	t.Run("leaving and reentering splits", func(t *testing.T) {
		// Goes out through the right edge and comes back.
		runs := ec.ClipPolyline([]Point{{5, 2}, {15, 2}, {15, 8}, {5, 8}}, false)
		if len(runs) != 2 {
			t.Fatalf("got %d runs, want 2: %v", len(runs), runs)
		}
		assertPointNear(t, runs[0][1], Pt(10, 2))
		assertPointNear(t, runs[1][0], Pt(10, 8))
	})

	t.Run("closed ring cut once is joined", func(t *testing.T) {
		runs := ec.ClipPolyline([]Point{{2, 2}, {8, 2}, {8, 20}, {2, 20}}, true)
		if len(runs) != 1 {
			t.Fatalf("got %d runs, want 1: %v", len(runs), runs)
		}
		run := runs[0]
		assertPointNear(t, run[0], Pt(2, 10))
		assertPointNear(t, run[len(run)-1], Pt(8, 10))
	})

	t.Run("outside is dropped", func(t *testing.T) {
		if runs := ec.ClipPolyline([]Point{{20, 20}, {30, 30}}, false); len(runs) != 0 {
			t.Errorf("runs = %v", runs)
		}
	})
}
