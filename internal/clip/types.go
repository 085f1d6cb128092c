// Package clip confines flattened geometry to an axis-aligned rectangle.
//
// Open polylines are clipped segment by segment with the Cohen-Sutherland
// algorithm and split wherever they leave the rectangle. Closed polygons
// are clipped with Sutherland-Hodgman, which keeps them closed by running
// along the rectangle border.
package clip

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Pt returns Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is a clip rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect returns a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains reports whether p is inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0 && r.H > 0)
}
