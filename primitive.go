package ggdxf

import "image"

// PrimitiveKind identifies the type of a drawing primitive.
type PrimitiveKind uint8

const (
	KindBeginPath PrimitiveKind = iota
	KindMoveTo
	KindLineTo
	KindQuadTo
	KindCurveTo
	KindClosePath
	KindStrokePath
	KindFillPath
	KindText
	KindImage
	KindClip
	KindResetClip
)

var primitiveKindNames = [...]string{
	KindBeginPath:  "BeginPath",
	KindMoveTo:     "MoveTo",
	KindLineTo:     "LineTo",
	KindQuadTo:     "QuadTo",
	KindCurveTo:    "CurveTo",
	KindClosePath:  "ClosePath",
	KindStrokePath: "StrokePath",
	KindFillPath:   "FillPath",
	KindText:       "Text",
	KindImage:      "Image",
	KindClip:       "Clip",
	KindResetClip:  "ResetClip",
}

func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveKindNames) {
		return primitiveKindNames[k]
	}
	return "Unknown"
}

// Primitive is one drawing call of the host protocol. Geometry is in local
// coordinates; the GraphicsState that travels with it maps them to the
// device. The set of primitives is closed.
type Primitive interface {
	Kind() PrimitiveKind
	primitive()
}

// Step pairs a primitive with the state it is drawn with.
type Step struct {
	Primitive Primitive
	State     GraphicsState
}

// BeginPath discards the current path.
type BeginPath struct{}

// MoveTo starts a subpath.
type MoveTo struct{ P Point }

// LineTo adds a straight segment.
type LineTo struct{ P Point }

// QuadTo adds a quadratic Bezier segment.
type QuadTo struct{ Ctrl, End Point }

// CurveTo adds a cubic Bezier segment.
type CurveTo struct{ Ctrl1, Ctrl2, End Point }

// ClosePath closes the current subpath.
type ClosePath struct{}

// StrokePath draws the outline of the current path.
type StrokePath struct{}

// FillPath fills the current path.
type FillPath struct{}

// Text draws a single line of text anchored at (X, Y).
type Text struct {
	X, Y float64
	Text string
	Font Font
}

// Image draws pixels into the rectangle (X, Y, W, H).
type Image struct {
	X, Y, W, H float64
	Pixels     image.Image
}

// Clip confines later primitives to Rect.
type Clip struct{ Rect Rect }

// ResetClip removes the clip.
type ResetClip struct{}

func (BeginPath) Kind() PrimitiveKind  { return KindBeginPath }
func (MoveTo) Kind() PrimitiveKind     { return KindMoveTo }
func (LineTo) Kind() PrimitiveKind     { return KindLineTo }
func (QuadTo) Kind() PrimitiveKind     { return KindQuadTo }
func (CurveTo) Kind() PrimitiveKind    { return KindCurveTo }
func (ClosePath) Kind() PrimitiveKind  { return KindClosePath }
func (StrokePath) Kind() PrimitiveKind { return KindStrokePath }
func (FillPath) Kind() PrimitiveKind   { return KindFillPath }
func (Text) Kind() PrimitiveKind       { return KindText }
func (Image) Kind() PrimitiveKind      { return KindImage }
func (Clip) Kind() PrimitiveKind       { return KindClip }
func (ResetClip) Kind() PrimitiveKind  { return KindResetClip }

func (BeginPath) primitive()  {}
func (MoveTo) primitive()     {}
func (LineTo) primitive()     {}
func (QuadTo) primitive()     {}
func (CurveTo) primitive()    {}
func (ClosePath) primitive()  {}
func (StrokePath) primitive() {}
func (FillPath) primitive()   {}
func (Text) primitive()       {}
func (Image) primitive()      {}
func (Clip) primitive()       {}
func (ResetClip) primitive()  {}
