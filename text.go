package ggdxf

import (
	"fmt"
	"math"

	"github.com/gogpu/gg-dxf/dxf"
	"github.com/gogpu/gg-dxf/text"
)

// orthoEpsilon is the relative tolerance for treating the text axes as
// perpendicular.
const orthoEpsilon = 1e-9

// DrawText places s with its anchor at (x, y).
//
// The text takes the fill color, or the stroke color when there is no
// fill. When the transform keeps the text axes perpendicular and unmirrored
// the result is a TEXT entity: rotation, uniform scale and a horizontal
// stretch all fit its rotation, height and width factor. Any other
// transform, such as a shear, cannot be expressed by TEXT, so the glyph
// outlines are drawn as polylines instead.
//
// Under a clip, text whose anchor lies outside the clip is skipped.
func (a *Adapter) DrawText(x, y float64, s string, f Font, st GraphicsState) error {
	if err := a.check("DrawText"); err != nil {
		return err
	}
	if s == "" || !(f.Size > 0) {
		a.stats.Skipped++
		return nil
	}
	c, ok := a.paint(st.Fill)
	if !ok {
		c, ok = a.paint(st.Stroke)
	}
	if !ok {
		a.stats.Skipped++
		return nil
	}
	m, ok := a.device("DrawText", st)
	if !ok {
		return nil
	}
	anchor := Pt(x, y)
	cr := a.activeClip(st)
	if cr != nil && !cr.Contains(m.TransformPoint(anchor)) {
		a.stats.Skipped++
		return nil
	}

	up := a.upLocal()
	full := a.flip.Multiply(m)
	u := full.TransformVector(Pt(1, 0))
	v := full.TransformVector(up)
	size := f.Size * a.opts.dpi / 72
	lu, lv := u.Length(), v.Length()

	if math.Abs(u.Dot(v)) <= orthoEpsilon*lu*lv && u.Cross(v) > 0 {
		rot := math.Atan2(u.Y, u.X) * 180 / math.Pi
		if rot < 0 {
			rot += 360
		}
		t := &dxf.Text{
			Attrs:    dxf.Attrs{Layer: a.layerFor(st), Color: a.style.Color(c)},
			Insert:   a.toDoc(m.TransformPoint(anchor)),
			Height:   size * lv,
			Rotation: rot,
			Value:    s,
			Style:    f.Style,
			HAlign:   f.HAlign,
			VAlign:   f.VAlign,
		}
		if wf := lu / lv; math.Abs(wf-1) > orthoEpsilon {
			t.WidthFactor = wf
		}
		a.add(t)
		return nil
	}
	return a.outlineText(anchor, s, size, f, c, m, st)
}

// upLocal is the local direction text grows in, against the y axis on
// y-down devices.
func (a *Adapter) upLocal() Point {
	if a.opts.origin == OriginTopLeft {
		return Pt(0, -1)
	}
	return Pt(0, 1)
}

func (a *Adapter) outliner() (*text.Outliner, error) {
	if a.opts.outliner != nil {
		return a.opts.outliner, nil
	}
	return text.Default()
}

// outlineText strokes the glyph outlines of s. Outline coordinates grow
// downward from the baseline and are mapped onto the local text axes.
func (a *Adapter) outlineText(anchor Point, s string, size float64, f Font, c RGBA, m Matrix, st GraphicsState) error {
	out, err := a.outliner()
	if err != nil {
		return fmt.Errorf("ggdxf: DrawText: %w", err)
	}
	run, err := out.Outline(s, size)
	if err != nil {
		return fmt.Errorf("ggdxf: DrawText: %w", err)
	}
	a.stats.Degraded++
	a.warnOnce("outline", "ggdxf: text transform not representable, drawing outlines", "text", s)
	if len(run.Segments) == 0 {
		return nil
	}

	var dx, dy float64
	switch f.HAlign {
	case AlignCenter:
		dx = -run.Advance / 2
	case AlignRight:
		dx = -run.Advance
	}
	switch f.VAlign {
	case AlignBottom:
		dy = -run.Descent
	case AlignTop:
		dy = run.Ascent
	case AlignMiddle:
		dy = (run.Ascent - run.Descent) / 2
	}
	down := a.upLocal().Mul(-1)
	local := func(p text.Point) Point {
		return anchor.Add(Pt(p.X+dx, 0)).Add(down.Mul(p.Y + dy))
	}

	p := NewPath()
	for _, seg := range run.Segments {
		switch seg.Op {
		case text.SegmentMoveTo:
			q := local(seg.Points[0])
			p.MoveTo(q.X, q.Y)
		case text.SegmentLineTo:
			q := local(seg.Points[0])
			p.LineTo(q.X, q.Y)
		case text.SegmentQuadTo:
			c1, e := local(seg.Points[0]), local(seg.Points[1])
			p.QuadTo(c1.X, c1.Y, e.X, e.Y)
		case text.SegmentCubeTo:
			c1, c2, e := local(seg.Points[0]), local(seg.Points[1]), local(seg.Points[2])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
		}
	}
	attrs := dxf.Attrs{
		Layer:      a.layerFor(st),
		Color:      a.style.Color(c),
		Lineweight: a.style.Lineweight(thinWidth),
	}
	a.strokePolylines(a.flat.flatten(p, m), attrs, a.activeClip(st))
	return nil
}
