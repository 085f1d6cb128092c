package recording

import (
	"image"

	ggdxf "github.com/gogpu/gg-dxf"
)

// Recorder captures drawing operations as primitives.
// It mirrors the gg.Context drawing API. Use FinishRecording to obtain an
// immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height float64
	steps         []ggdxf.Step

	state ggdxf.GraphicsState
	font  ggdxf.Font

	// path holds the construction steps of the current path so a
	// preserved path can be rebuilt before it is extended.
	path      []ggdxf.Primitive
	preserved bool

	// clips are the clip steps in effect. clipID names the clip state so
	// Pop can tell whether it changed.
	clips      []ggdxf.Step
	clipID     int
	nextClipID int

	stack []recorderState
}

// recorderState stores the graphics state for Push/Pop.
type recorderState struct {
	state  ggdxf.GraphicsState
	font   ggdxf.Font
	clips  []ggdxf.Step
	clipID int
}

// NewRecorder creates a Recorder for a canvas of the given size.
// It starts with a black 1pt stroke, a black fill, a 12pt font and the
// identity transform.
func NewRecorder(width, height float64) *Recorder {
	st := ggdxf.DefaultState()
	st.Fill = ggdxf.Solid(ggdxf.Black)
	return &Recorder{
		width:  width,
		height: height,
		steps:  make([]ggdxf.Step, 0, 256),
		state:  st,
		font:   ggdxf.Font{Size: 12},
		stack:  make([]recorderState, 0, 8),
	}
}

// Width returns the canvas width.
func (r *Recorder) Width() float64 {
	return r.width
}

// Height returns the canvas height.
func (r *Recorder) Height() float64 {
	return r.height
}

// FinishRecording returns the recorded steps. The Recorder should not be
// used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:  r.width,
		height: r.height,
		steps:  r.steps,
	}
}

// snapshot returns a copy of the state that later calls cannot change.
func (r *Recorder) snapshot() ggdxf.GraphicsState {
	st := r.state
	st.Dash = st.Dash.Clone()
	return st
}

func (r *Recorder) emit(p ggdxf.Primitive) {
	r.steps = append(r.steps, ggdxf.Step{Primitive: p, State: r.snapshot()})
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Push saves the graphics state, font and clip.
func (r *Recorder) Push() {
	r.stack = append(r.stack, recorderState{
		state:  r.snapshot(),
		font:   r.font,
		clips:  append([]ggdxf.Step(nil), r.clips...),
		clipID: r.clipID,
	})
}

// Pop restores the state saved by the matching Push. If the stack is
// empty, this is a no-op.
func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	s := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]

	r.state = s.state
	r.font = s.font
	if s.clipID != r.clipID {
		r.steps = append(r.steps, ggdxf.Step{Primitive: ggdxf.ResetClip{}, State: r.snapshot()})
		r.steps = append(r.steps, s.clips...)
		r.clips = s.clips
		r.clipID = s.clipID
	}
}

// --------------------------------------------------------------------------
// Transform
// --------------------------------------------------------------------------

// Identity resets the transform.
func (r *Recorder) Identity() {
	r.state.Transform = ggdxf.Identity()
}

// Translate moves the origin by (x, y).
func (r *Recorder) Translate(x, y float64) {
	r.state.Transform = r.state.Transform.Multiply(ggdxf.Translate(x, y))
}

// Scale scales the axes.
func (r *Recorder) Scale(sx, sy float64) {
	r.state.Transform = r.state.Transform.Multiply(ggdxf.Scale(sx, sy))
}

// Rotate rotates by angle radians.
func (r *Recorder) Rotate(angle float64) {
	r.state.Transform = r.state.Transform.Multiply(ggdxf.Rotate(angle))
}

// RotateAbout rotates around (x, y).
func (r *Recorder) RotateAbout(angle, x, y float64) {
	r.Translate(x, y)
	r.Rotate(angle)
	r.Translate(-x, -y)
}

// Shear applies a shear.
func (r *Recorder) Shear(x, y float64) {
	r.state.Transform = r.state.Transform.Multiply(ggdxf.Shear(x, y))
}

// Transform multiplies the current transform by m.
func (r *Recorder) Transform(m ggdxf.Matrix) {
	r.state.Transform = r.state.Transform.Multiply(m)
}

// SetTransform replaces the current transform.
func (r *Recorder) SetTransform(m ggdxf.Matrix) {
	r.state.Transform = m
}

// GetTransform returns the current transform.
func (r *Recorder) GetTransform() ggdxf.Matrix {
	return r.state.Transform
}

// --------------------------------------------------------------------------
// Color/Style
// --------------------------------------------------------------------------

// SetColor sets both fill and stroke color.
func (r *Recorder) SetColor(c ggdxf.RGBA) {
	r.state.Fill = ggdxf.Solid(c)
	r.state.Stroke = ggdxf.Solid(c)
}

// SetRGB sets both fill and stroke color using RGB values (0-1).
func (r *Recorder) SetRGB(red, green, blue float64) {
	r.SetColor(ggdxf.RGB(red, green, blue))
}

// SetHexColor sets both fill and stroke color using a hex string.
func (r *Recorder) SetHexColor(hex string) {
	r.SetColor(ggdxf.Hex(hex))
}

// SetFillStyle sets the fill brush. Nil disables filling.
func (r *Recorder) SetFillStyle(b ggdxf.Brush) {
	r.state.Fill = b
}

// SetStrokeStyle sets the stroke brush. Nil disables stroking.
func (r *Recorder) SetStrokeStyle(b ggdxf.Brush) {
	r.state.Stroke = b
}

// SetFillRGBA sets the fill color.
func (r *Recorder) SetFillRGBA(red, green, blue, alpha float64) {
	r.state.Fill = ggdxf.Solid(ggdxf.RGBA2(red, green, blue, alpha))
}

// SetStrokeRGBA sets the stroke color.
func (r *Recorder) SetStrokeRGBA(red, green, blue, alpha float64) {
	r.state.Stroke = ggdxf.Solid(ggdxf.RGBA2(red, green, blue, alpha))
}

// SetLineWidth sets the stroke width in points.
func (r *Recorder) SetLineWidth(width float64) {
	r.state.LineWidth = width
}

// SetDash sets the dash pattern for stroking. Passing no arguments clears
// the dash pattern.
func (r *Recorder) SetDash(lengths ...float64) {
	r.state.Dash = ggdxf.NewDash(lengths...)
}

// ClearDash returns to solid lines.
func (r *Recorder) ClearDash() {
	r.state.Dash = nil
}

// SetFillRule sets the fill rule.
func (r *Recorder) SetFillRule(rule ggdxf.FillRule) {
	r.state.FillRule = rule
}

// SetLayer sends later drawing to the named layer. Empty selects the
// adapter's current layer.
func (r *Recorder) SetLayer(name string) {
	r.state.Layer = name
}

// SetFont sets the font used by DrawString.
func (r *Recorder) SetFont(f ggdxf.Font) {
	r.font = f
}

// SetFontSize sets the font size in points.
func (r *Recorder) SetFontSize(points float64) {
	r.font.Size = points
}

// --------------------------------------------------------------------------
// Path Building
// --------------------------------------------------------------------------

func (r *Recorder) pathStep(p ggdxf.Primitive) {
	if r.preserved {
		r.emit(ggdxf.BeginPath{})
		for _, q := range r.path {
			r.emit(q)
		}
		r.preserved = false
	}
	r.path = append(r.path, p)
	r.emit(p)
}

// MoveTo starts a new subpath.
func (r *Recorder) MoveTo(x, y float64) {
	r.pathStep(ggdxf.MoveTo{P: ggdxf.Pt(x, y)})
}

// LineTo adds a line to the current path.
func (r *Recorder) LineTo(x, y float64) {
	r.pathStep(ggdxf.LineTo{P: ggdxf.Pt(x, y)})
}

// QuadraticTo adds a quadratic Bezier curve.
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.pathStep(ggdxf.QuadTo{Ctrl: ggdxf.Pt(cx, cy), End: ggdxf.Pt(x, y)})
}

// CubicTo adds a cubic Bezier curve.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.pathStep(ggdxf.CurveTo{Ctrl1: ggdxf.Pt(c1x, c1y), Ctrl2: ggdxf.Pt(c2x, c2y), End: ggdxf.Pt(x, y)})
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() {
	r.pathStep(ggdxf.ClosePath{})
}

// ClearPath discards the current path.
func (r *Recorder) ClearPath() {
	r.path = nil
	r.preserved = false
	r.emit(ggdxf.BeginPath{})
}

// AppendPath adds the commands of p to the current path.
func (r *Recorder) AppendPath(p *ggdxf.Path) {
	p.Walk(func(v ggdxf.Verb, pts []ggdxf.Point) {
		switch v {
		case ggdxf.VerbMoveTo:
			r.pathStep(ggdxf.MoveTo{P: pts[0]})
		case ggdxf.VerbLineTo:
			r.pathStep(ggdxf.LineTo{P: pts[0]})
		case ggdxf.VerbQuadTo:
			r.pathStep(ggdxf.QuadTo{Ctrl: pts[0], End: pts[1]})
		case ggdxf.VerbCubicTo:
			r.pathStep(ggdxf.CurveTo{Ctrl1: pts[0], Ctrl2: pts[1], End: pts[2]})
		case ggdxf.VerbClose:
			r.pathStep(ggdxf.ClosePath{})
		}
	})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

func (r *Recorder) paint(p ggdxf.Primitive, preserve bool) {
	if len(r.path) == 0 {
		return
	}
	r.emit(p)
	if preserve {
		r.preserved = true
		return
	}
	r.path = nil
	r.preserved = false
}

// Fill fills the current path and clears it.
func (r *Recorder) Fill() {
	r.paint(ggdxf.FillPath{}, false)
}

// FillPreserve fills the current path without clearing it.
func (r *Recorder) FillPreserve() {
	r.paint(ggdxf.FillPath{}, true)
}

// Stroke strokes the current path and clears it.
func (r *Recorder) Stroke() {
	r.paint(ggdxf.StrokePath{}, false)
}

// StrokePreserve strokes the current path without clearing it.
func (r *Recorder) StrokePreserve() {
	r.paint(ggdxf.StrokePath{}, true)
}

// FillStroke fills and then strokes the current path, then clears it.
func (r *Recorder) FillStroke() {
	r.FillPreserve()
	r.Stroke()
}

// --------------------------------------------------------------------------
// Clipping
// --------------------------------------------------------------------------

// ClipRect confines later drawing to the rectangle, mapped by the current
// transform and intersected with the clip in effect.
func (r *Recorder) ClipRect(x, y, w, h float64) {
	step := ggdxf.Step{
		Primitive: ggdxf.Clip{Rect: ggdxf.NewRect(x, y, x+w, y+h)},
		State:     r.snapshot(),
	}
	r.steps = append(r.steps, step)
	r.clips = append(r.clips, step)
	r.nextClipID++
	r.clipID = r.nextClipID
}

// ResetClip removes all clipping.
func (r *Recorder) ResetClip() {
	r.emit(ggdxf.ResetClip{})
	r.clips = nil
	r.nextClipID++
	r.clipID = r.nextClipID
}

// --------------------------------------------------------------------------
// Text and Images
// --------------------------------------------------------------------------

// DrawString draws s with its baseline starting at (x, y).
func (r *Recorder) DrawString(s string, x, y float64) {
	f := r.font
	f.HAlign, f.VAlign = ggdxf.AlignLeft, ggdxf.AlignBaseline
	r.emit(ggdxf.Text{X: x, Y: y, Text: s, Font: f})
}

// DrawStringAnchored draws s aligned to (x, y).
func (r *Recorder) DrawStringAnchored(s string, x, y float64, h ggdxf.HAlign, v ggdxf.VAlign) {
	f := r.font
	f.HAlign, f.VAlign = h, v
	r.emit(ggdxf.Text{X: x, Y: y, Text: s, Font: f})
}

// DrawImage draws img at its pixel size with its top left corner at (x, y).
func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	r.DrawImageScaled(img, x, y, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws img stretched over the rectangle (x, y, w, h).
func (r *Recorder) DrawImageScaled(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	r.emit(ggdxf.Image{X: x, Y: y, W: w, H: h, Pixels: img})
}
