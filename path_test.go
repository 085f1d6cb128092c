package ggdxf

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func verbs(p *Path) []Verb {
	var out []Verb
	p.Walk(func(v Verb, _ []Point) { out = append(out, v) })
	return out
}

func TestPathLineToWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.LineTo(5, 5)
	p.LineTo(10, 5)
	if diff := cmp.Diff([]Verb{VerbMoveTo, VerbLineTo}, verbs(p)); diff != "" {
		t.Errorf("verbs mismatch (-want +got):\n%s", diff)
	}
}

func TestPathCurveWithoutCurrentPoint(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		verb  Verb
		start Point
	}{
		{"quad", func(p *Path) { p.QuadTo(2, 3, 4, 0) }, VerbQuadTo, Pt(2, 3)},
		{"cubic", func(p *Path) { p.CubicTo(1, 5, 3, 5, 4, 0) }, VerbCubicTo, Pt(1, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			if diff := cmp.Diff([]Verb{VerbMoveTo, tt.verb}, verbs(p)); diff != "" {
				t.Errorf("verbs mismatch (-want +got):\n%s", diff)
			}
			var first Point
			p.Walk(func(v Verb, pts []Point) {
				if v == VerbMoveTo {
					first = pts[0]
				}
			})
			if first != tt.start {
				t.Errorf("subpath starts at %v, want %v", first, tt.start)
			}
			if cur, ok := p.CurrentPoint(); !ok || cur != Pt(4, 0) {
				t.Errorf("current point = %v, %v, want (4, 0)", cur, ok)
			}
		})
	}
}

func TestPathClose(t *testing.T) {
	p := NewPath()
	p.Close()
	if !p.IsEmpty() {
		t.Error("Close without a subpath added a command")
	}
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.Close()
	if cp, ok := p.CurrentPoint(); !ok || cp != Pt(1, 2) {
		t.Errorf("current point after close = %v, %v", cp, ok)
	}
}

func TestPathTransformAndClone(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 2, 1)
	q := p.Transform(Translate(10, 0))
	var first Point
	q.Walk(func(v Verb, pts []Point) {
		if v == VerbMoveTo {
			first = pts[0]
		}
	})
	if first != Pt(10, 0) {
		t.Errorf("transformed start = %v", first)
	}
	c := p.Clone()
	c.Clear()
	if p.IsEmpty() {
		t.Error("clearing a clone emptied the original")
	}
}

func TestPathShapesStayOnCircle(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
	}{
		{"circle", func(p *Path) { p.Circle(0, 0, 10) }},
		{"arc", func(p *Path) { p.Arc(0, 0, 10, 0, 3*math.Pi/2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			for _, pl := range FlattenPath(p, Identity(), 0.001) {
				for _, pt := range pl {
					if r := pt.Length(); math.Abs(r-10) > 0.01 {
						t.Fatalf("vertex %v at radius %v", pt, r)
					}
				}
			}
		})
	}
}

func TestRoundedRectangleBounds(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(0, 0, 20, 10, 3)
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, pl := range FlattenPath(p, Identity(), 0.01) {
		for _, pt := range pl {
			minX, minY = math.Min(minX, pt.X), math.Min(minY, pt.Y)
			maxX, maxY = math.Max(maxX, pt.X), math.Max(maxY, pt.Y)
		}
	}
	got := [4]float64{minX, minY, maxX, maxY}
	if diff := cmp.Diff([4]float64{0, 0, 20, 10}, got, approx); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}
