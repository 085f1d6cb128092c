package recording

import (
	ggdxf "github.com/gogpu/gg-dxf"
)

func (r *Recorder) shape(build func(p *ggdxf.Path)) {
	p := ggdxf.NewPath()
	build(p)
	r.AppendPath(p)
}

// DrawPoint draws a dot of the given radius.
func (r *Recorder) DrawPoint(x, y, radius float64) {
	r.DrawCircle(x, y, radius)
}

// DrawLine adds a line between two points.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.MoveTo(x1, y1)
	r.LineTo(x2, y2)
}

// DrawRectangle adds a closed rectangle.
func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	r.shape(func(p *ggdxf.Path) { p.Rectangle(x, y, w, h) })
}

// DrawRoundedRectangle adds a rectangle with rounded corners.
func (r *Recorder) DrawRoundedRectangle(x, y, w, h, radius float64) {
	r.shape(func(p *ggdxf.Path) { p.RoundedRectangle(x, y, w, h, radius) })
}

// DrawCircle adds a circle.
func (r *Recorder) DrawCircle(x, y, radius float64) {
	r.shape(func(p *ggdxf.Path) { p.Circle(x, y, radius) })
}

// DrawEllipse adds an ellipse.
func (r *Recorder) DrawEllipse(x, y, rx, ry float64) {
	r.shape(func(p *ggdxf.Path) { p.Ellipse(x, y, rx, ry) })
}

// DrawArc adds a circular arc from angle1 to angle2 in radians.
func (r *Recorder) DrawArc(x, y, radius, angle1, angle2 float64) {
	r.shape(func(p *ggdxf.Path) { p.Arc(x, y, radius, angle1, angle2) })
}

// DrawPolyline adds an open polyline through pts.
func (r *Recorder) DrawPolyline(pts ...ggdxf.Point) {
	for i, p := range pts {
		if i == 0 {
			r.MoveTo(p.X, p.Y)
			continue
		}
		r.LineTo(p.X, p.Y)
	}
}

// DrawPolygon adds a closed polygon through pts.
func (r *Recorder) DrawPolygon(pts ...ggdxf.Point) {
	if len(pts) == 0 {
		return
	}
	r.DrawPolyline(pts...)
	r.ClosePath()
}
