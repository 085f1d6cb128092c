package clip

import (
	"math"
	"testing"
)

func bounds(pts []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = minX, minY
	for _, p := range pts[1:] {
		minX, minY = min(minX, p.X), min(minY, p.Y)
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	return
}

func TestClipPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	tests := []struct {
		name     string
		poly     []Point
		clip     Rect
		wantN    int
		wantBBox [4]float64
	}{
		{"quarter", square, NewRect(0, 0, 5, 5), 4, [4]float64{0, 0, 5, 5}},
		{"inside untouched", square, NewRect(-1, -1, 20, 20), 4, [4]float64{0, 0, 10, 10}},
		{"strip", square, NewRect(2, -5, 3, 30), 4, [4]float64{2, 0, 5, 10}},
		{"corner cut of triangle", []Point{{0, 0}, {10, 0}, {0, 10}}, NewRect(0, 0, 6, 6), 5, [4]float64{0, 0, 6, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipPolygon(tt.poly, tt.clip)
			if len(got) != tt.wantN {
				t.Fatalf("got %d vertices %v, want %d", len(got), got, tt.wantN)
			}
			x0, y0, x1, y1 := bounds(got)
			box := [4]float64{x0, y0, x1, y1}
			for i := range box {
				if math.Abs(box[i]-tt.wantBBox[i]) > 1e-9 {
					t.Errorf("bbox = %v, want %v", box, tt.wantBBox)
					break
				}
			}
		})
	}
}

func TestClipPolygonOutside(t *testing.T) {
	tri := []Point{{20, 20}, {30, 20}, {25, 30}}
	if got := ClipPolygon(tri, NewRect(0, 0, 10, 10)); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := ClipPolygon(tri, NewRect(0, 0, 0, 10)); got != nil {
		t.Errorf("empty clip gave %v", got)
	}
}
