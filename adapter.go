package ggdxf

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg-dxf/dxf"
)

// Stats counts what an Adapter did with its input.
type Stats struct {
	Polylines int
	Hatches   int
	Texts     int
	Images    int
	// Skipped counts paint operations that produced nothing: transparent
	// paint, degenerate transforms, or geometry clipped away.
	Skipped int
	// Degraded counts approximations: gradients painted with their average
	// color and text drawn as outlines.
	Degraded    int
	Unsupported int
}

// Entities returns the number of entities emitted.
func (s Stats) Entities() int {
	return s.Polylines + s.Hatches + s.Texts + s.Images
}

// Adapter translates drawing primitives into entities of a DXF document.
//
// An Adapter serves one document. Primitives are translated in the order
// they arrive and the entities keep that order, so later ones overlap
// earlier ones as they did on screen. After Finalize every mutating call
// fails with ErrIllegalState.
//
// The coordinate pipeline is local, state transform, device, then the
// fixed flip into document space. Flattening and clipping happen in device
// space.
//
// An Adapter is not safe for concurrent use.
type Adapter struct {
	width, height float64
	opts          adapterOptions

	doc   *dxf.Document
	style *StyleMapper
	flat  *flattener
	flip  Matrix

	path    *Path
	painted bool
	clip    *Rect
	layer   string

	finalized bool
	stats     Stats
	warned    map[string]bool
}

// NewAdapter returns an adapter for a device canvas of the given size.
func NewAdapter(width, height float64, opts ...Option) *Adapter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a := &Adapter{
		width:  width,
		height: height,
		opts:   o,
		doc:    dxf.New(o.docOpts...),
		style:  NewStyleMapper(o.dpi/72, o.rawPalette),
		flat:   newFlattener(o.tolerance, o.maxDepth),
		path:   NewPath(),
		layer:  o.layer,
		warned: make(map[string]bool),
	}
	a.flip = Identity()
	if o.origin == OriginTopLeft {
		a.flip = Matrix{A: 1, E: -1, F: height}
	}
	a.doc.AddLayer(a.layer)
	a.doc.SetCanvas(dxf.Vec2{}, dxf.Vec2{X: width, Y: height})
	return a
}

// Size returns the device canvas size.
func (a *Adapter) Size() (width, height float64) {
	return a.width, a.height
}

// Stats returns the counters collected so far.
func (a *Adapter) Stats() Stats {
	return a.stats
}

// Finalized reports whether Finalize has been called.
func (a *Adapter) Finalized() bool {
	return a.finalized
}

func (a *Adapter) check(op string) error {
	if a.finalized {
		return fmt.Errorf("ggdxf: %s: %w", op, ErrIllegalState)
	}
	return nil
}

// building returns the path to append to. The first construction call
// after a paint starts a fresh path, so painting the same path twice, for
// a fill and then a stroke, needs no extra calls.
func (a *Adapter) building() *Path {
	if a.painted {
		a.path = NewPath()
		a.painted = false
	}
	return a.path
}

// BeginPath discards the current path and returns a builder for a new one.
func (a *Adapter) BeginPath() (*PathBuilder, error) {
	if err := a.check("BeginPath"); err != nil {
		return nil, err
	}
	a.path = NewPath()
	a.painted = false
	return &PathBuilder{a: a}, nil
}

// MoveTo starts a subpath at (x, y) in local coordinates.
func (a *Adapter) MoveTo(x, y float64) error {
	if err := a.check("MoveTo"); err != nil {
		return err
	}
	a.building().MoveTo(x, y)
	return nil
}

// LineTo adds a line to (x, y). Without a current point it starts a
// subpath there.
func (a *Adapter) LineTo(x, y float64) error {
	if err := a.check("LineTo"); err != nil {
		return err
	}
	a.building().LineTo(x, y)
	return nil
}

// QuadTo adds a quadratic Bezier curve. Without a current point the
// subpath starts at ctrl.
func (a *Adapter) QuadTo(ctrl, end Point) error {
	if err := a.check("QuadTo"); err != nil {
		return err
	}
	a.building().QuadTo(ctrl.X, ctrl.Y, end.X, end.Y)
	return nil
}

// CurveTo adds a cubic Bezier curve. It is flattened when painted, within
// the configured tolerance of the curve. Without a current point the
// subpath starts at ctrl1.
func (a *Adapter) CurveTo(ctrl1, ctrl2, end Point) error {
	if err := a.check("CurveTo"); err != nil {
		return err
	}
	a.building().CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, end.X, end.Y)
	return nil
}

// ClosePath closes the current subpath.
func (a *Adapter) ClosePath() error {
	if err := a.check("ClosePath"); err != nil {
		return err
	}
	a.building().Close()
	return nil
}

// SetLayer directs subsequent entities to the named layer, creating it on
// first use. An empty name selects layer "0".
func (a *Adapter) SetLayer(name string) error {
	if err := a.check("SetLayer"); err != nil {
		return err
	}
	if name == "" {
		name = "0"
	}
	a.layer = name
	a.doc.AddLayer(name)
	return nil
}

// Layer returns the current layer name.
func (a *Adapter) Layer() string {
	return a.layer
}

// Apply translates one primitive. Every primitive kind is handled here;
// anything else yields an *UnsupportedPrimitiveError.
func (a *Adapter) Apply(p Primitive, st GraphicsState) error {
	if err := a.check("Apply"); err != nil {
		return err
	}
	switch p := p.(type) {
	case BeginPath:
		_, err := a.BeginPath()
		return err
	case MoveTo:
		return a.MoveTo(p.P.X, p.P.Y)
	case LineTo:
		return a.LineTo(p.P.X, p.P.Y)
	case QuadTo:
		return a.QuadTo(p.Ctrl, p.End)
	case CurveTo:
		return a.CurveTo(p.Ctrl1, p.Ctrl2, p.End)
	case ClosePath:
		return a.ClosePath()
	case StrokePath:
		return a.StrokePath(st)
	case FillPath:
		return a.FillPath(st)
	case Text:
		return a.DrawText(p.X, p.Y, p.Text, p.Font, st)
	case Image:
		return a.DrawImage(p.X, p.Y, p.W, p.H, p.Pixels, st)
	case Clip:
		return a.ApplyClip(p.Rect, st)
	case ResetClip:
		return a.ResetClip()
	default:
		a.stats.Unsupported++
		return &UnsupportedPrimitiveError{Primitive: p}
	}
}

// Render applies steps in order. Unsupported primitives are logged and
// skipped; any other error stops rendering.
func (a *Adapter) Render(steps []Step) error {
	for i, s := range steps {
		err := a.Apply(s.Primitive, s.State)
		if err == nil {
			continue
		}
		var unsupported *UnsupportedPrimitiveError
		if errors.As(err, &unsupported) {
			Logger().Warn("ggdxf: skipping unsupported primitive", "step", i, "type", fmt.Sprintf("%T", s.Primitive))
			continue
		}
		return fmt.Errorf("ggdxf: step %d: %w", i, err)
	}
	return nil
}

// Finalize completes the document and hands it over. A path that was
// built but never painted is discarded. Calling Finalize again fails with
// ErrIllegalState; the document is returned only once.
func (a *Adapter) Finalize() (*dxf.Document, error) {
	if err := a.check("Finalize"); err != nil {
		return nil, err
	}
	if !a.path.IsEmpty() && !a.painted {
		Logger().Debug("ggdxf: discarding unpainted path at finalize")
	}
	a.finalized = true
	doc := a.doc
	a.doc, a.path, a.clip = nil, nil, nil
	Logger().Debug("ggdxf: finalized",
		"polylines", a.stats.Polylines,
		"hatches", a.stats.Hatches,
		"texts", a.stats.Texts,
		"images", a.stats.Images,
		"skipped", a.stats.Skipped,
		"degraded", a.stats.Degraded)
	return doc, nil
}

// warnOnce logs msg the first time key is seen by this adapter.
func (a *Adapter) warnOnce(key, msg string, args ...any) {
	if a.warned[key] {
		return
	}
	a.warned[key] = true
	Logger().Warn(msg, args...)
}

// device returns the state transform, or false after logging when it is
// degenerate.
func (a *Adapter) device(op string, st GraphicsState) (Matrix, bool) {
	if st.Transform.IsDegenerate() {
		a.stats.Skipped++
		Logger().Warn("ggdxf: degenerate transform, primitive skipped", "op", op, "determinant", st.Transform.Determinant())
		return Matrix{}, false
	}
	return st.Transform, true
}

// activeClip combines the adapter clip with the state clip.
func (a *Adapter) activeClip(st GraphicsState) *Rect {
	switch {
	case a.clip == nil && st.Clip == nil:
		return nil
	case a.clip == nil:
		c := *st.Clip
		return &c
	case st.Clip == nil:
		c := *a.clip
		return &c
	default:
		c := a.clip.Intersect(*st.Clip)
		return &c
	}
}

// paint resolves a brush to a palette color, counting approximations.
func (a *Adapter) paint(b Brush) (RGBA, bool) {
	c, approximated, ok := brushColor(b)
	if approximated && ok {
		a.stats.Degraded++
		a.warnOnce("gradient", "ggdxf: gradient painted with its average color")
	}
	return c, ok
}

func (a *Adapter) layerFor(st GraphicsState) string {
	if st.Layer != "" {
		return st.Layer
	}
	return a.layer
}

func (a *Adapter) toDoc(p Point) dxf.Vec2 {
	q := a.flip.TransformPoint(p)
	return dxf.Vec2{X: q.X, Y: q.Y}
}

func (a *Adapter) toDocAll(pts []Point) []dxf.Vec2 {
	out := make([]dxf.Vec2, len(pts))
	for i, p := range pts {
		out[i] = a.toDoc(p)
	}
	return out
}

func (a *Adapter) add(e dxf.Entity) {
	switch e.(type) {
	case *dxf.LWPolyline:
		a.stats.Polylines++
	case *dxf.Hatch:
		a.stats.Hatches++
	case *dxf.Text:
		a.stats.Texts++
	case *dxf.Image:
		a.stats.Images++
	}
	a.doc.Add(e)
}

// PathBuilder appends geometry to the adapter's current path.
type PathBuilder struct {
	a *Adapter
}

// MoveTo starts a subpath.
func (b *PathBuilder) MoveTo(x, y float64) error { return b.a.MoveTo(x, y) }

// LineTo adds a line.
func (b *PathBuilder) LineTo(x, y float64) error { return b.a.LineTo(x, y) }

// QuadTo adds a quadratic curve.
func (b *PathBuilder) QuadTo(ctrl, end Point) error { return b.a.QuadTo(ctrl, end) }

// CurveTo adds a cubic curve.
func (b *PathBuilder) CurveTo(ctrl1, ctrl2, end Point) error {
	return b.a.CurveTo(ctrl1, ctrl2, end)
}

// ClosePath closes the current subpath.
func (b *PathBuilder) ClosePath() error { return b.a.ClosePath() }

// Path returns a copy of the path built so far.
func (b *PathBuilder) Path() *Path {
	return b.a.path.Clone()
}
