package ggdxf

import "math"

// Rect is an axis-aligned rectangle. It is empty when Max is not greater
// than Min on both axes.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect returns the rectangle spanned by two corners in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// Width returns MaxX-MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY-MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return !(r.MaxX > r.MinX && r.MaxY > r.MinY)
}

// Intersect returns the overlap of r and o. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: math.Max(r.MinX, o.MinX),
		MinY: math.Max(r.MinY, o.MinY),
		MaxX: math.Min(r.MaxX, o.MaxX),
		MaxY: math.Min(r.MaxY, o.MaxY),
	}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Transform returns the bounding box of r mapped by m.
func (r Rect) Transform(m Matrix) Rect {
	corners := [4]Point{
		m.TransformPoint(Pt(r.MinX, r.MinY)),
		m.TransformPoint(Pt(r.MaxX, r.MinY)),
		m.TransformPoint(Pt(r.MaxX, r.MaxY)),
		m.TransformPoint(Pt(r.MinX, r.MaxY)),
	}
	out := Rect{MinX: corners[0].X, MinY: corners[0].Y, MaxX: corners[0].X, MaxY: corners[0].Y}
	for _, c := range corners[1:] {
		out.MinX = math.Min(out.MinX, c.X)
		out.MinY = math.Min(out.MinY, c.Y)
		out.MaxX = math.Max(out.MaxX, c.X)
		out.MaxY = math.Max(out.MaxY, c.Y)
	}
	return out
}
