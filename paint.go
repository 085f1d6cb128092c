package ggdxf

import (
	"github.com/gogpu/gg-dxf/dxf"
	"github.com/gogpu/gg-dxf/internal/clip"
)

// thinWidth is the stroke width used for outlined text, in points.
const thinWidth = 0.25

// StrokePath draws the current path as one LWPOLYLINE per subpath.
//
// The stroke takes its color, lineweight and linetype from st. Nothing is
// emitted for a transparent or missing stroke brush. Under a clip each
// subpath is cut at the clip border; a closed subpath that leaves the clip
// becomes open pieces.
func (a *Adapter) StrokePath(st GraphicsState) error {
	if err := a.check("StrokePath"); err != nil {
		return err
	}
	a.painted = true
	c, ok := a.paint(st.Stroke)
	if !ok {
		a.stats.Skipped++
		return nil
	}
	m, ok := a.device("StrokePath", st)
	if !ok {
		return nil
	}
	attrs := a.strokeAttrs(c, st)
	if n := a.strokePolylines(a.flat.flatten(a.path, m), attrs, a.activeClip(st)); n == 0 {
		a.stats.Skipped++
	}
	return nil
}

func (a *Adapter) strokeAttrs(c RGBA, st GraphicsState) dxf.Attrs {
	attrs := dxf.Attrs{
		Layer:      a.layerFor(st),
		Color:      a.style.Color(c),
		Lineweight: a.style.Lineweight(st.LineWidth),
	}
	if st.Dash.IsDashed() {
		if lt, scale, ok := a.style.Linetype(st.Dash); ok {
			attrs.Linetype = lt.Name
			attrs.LinetypeScale = scale
		} else {
			a.warnOnce("dash", "ggdxf: dash pattern has no matching linetype, drawn solid")
		}
	}
	return attrs
}

// strokePolylines emits device space polylines and returns how many
// entities were added.
func (a *Adapter) strokePolylines(lines []polyline, attrs dxf.Attrs, cr *Rect) int {
	var ec *clip.EdgeClipper
	if cr != nil {
		if cr.IsEmpty() {
			return 0
		}
		ec = clip.NewEdgeClipper(toClipRect(*cr))
	}
	n := 0
	emit := func(pts []Point, closed bool) {
		if len(pts) < 2 {
			return
		}
		a.add(&dxf.LWPolyline{Attrs: attrs, Points: a.toDocAll(pts), Closed: closed})
		n++
	}
	for _, pl := range lines {
		if ec == nil || allInside(pl.points, *cr) {
			emit(pl.points, pl.closed)
			continue
		}
		for _, run := range ec.ClipPolyline(toClipPoints(pl.points), pl.closed) {
			emit(fromClipPoints(run), false)
		}
	}
	return n
}

// FillPath draws the current path as one solid HATCH whose boundary loops
// are the closed subpaths. Subpaths are implicitly closed. Nothing is
// emitted for a transparent or missing fill brush.
func (a *Adapter) FillPath(st GraphicsState) error {
	if err := a.check("FillPath"); err != nil {
		return err
	}
	a.painted = true
	c, ok := a.paint(st.Fill)
	if !ok {
		a.stats.Skipped++
		return nil
	}
	m, ok := a.device("FillPath", st)
	if !ok {
		return nil
	}
	if st.FillRule == FillRuleNonZero {
		Logger().Debug("ggdxf: nonzero fill emitted as even-odd")
	}
	cr := a.activeClip(st)
	if cr != nil && cr.IsEmpty() {
		a.stats.Skipped++
		return nil
	}
	var loops [][]dxf.Vec2
	for _, pl := range a.flat.flatten(a.path, m) {
		pts := pl.points
		if cr != nil && !allInside(pts, *cr) {
			pts = fromClipPoints(clip.ClipPolygon(toClipPoints(pts), toClipRect(*cr)))
		}
		if len(pts) < 3 {
			continue
		}
		loops = append(loops, a.toDocAll(pts))
	}
	if len(loops) == 0 {
		a.stats.Skipped++
		return nil
	}
	a.add(&dxf.Hatch{
		Attrs: dxf.Attrs{Layer: a.layerFor(st), Color: a.style.Color(c)},
		Loops: loops,
	})
	return nil
}

func allInside(pts []Point, r Rect) bool {
	for _, p := range pts {
		if !r.Contains(p) {
			return false
		}
	}
	return true
}

func toClipRect(r Rect) clip.Rect {
	return clip.NewRect(r.MinX, r.MinY, r.Width(), r.Height())
}

func toClipPoints(pts []Point) []clip.Point {
	out := make([]clip.Point, len(pts))
	for i, p := range pts {
		out[i] = clip.Pt(p.X, p.Y)
	}
	return out
}

func fromClipPoints(pts []clip.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Pt(p.X, p.Y)
	}
	return out
}
