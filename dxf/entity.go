package dxf

import (
	"image"
	"math"
)

// Attrs are the properties shared by all entities.
type Attrs struct {
	// Layer defaults to "0" when empty.
	Layer string
	// Color is an ACI number. Zero means BYLAYER.
	Color int
	// Linetype defaults to BYLAYER when empty.
	Linetype string
	// LinetypeScale multiplies the linetype pattern. Zero means 1.
	LinetypeScale float64
	Lineweight    Lineweight
}

func (a *Attrs) attrs() *Attrs { return a }

// Entity is a drawable object of the ENTITIES section.
// The set of entity types is closed.
type Entity interface {
	// Type returns the DXF entity name, e.g. "LWPOLYLINE".
	Type() string
	// Bounds returns the extents of the entity geometry.
	Bounds() Extents
	attrs() *Attrs
	writeBody(s *serializer, h handle)
}

// Line is a single straight segment.
type Line struct {
	Attrs
	Start, End Vec2
}

func (*Line) Type() string { return "LINE" }

func (l *Line) Bounds() Extents {
	var e Extents
	e.Add(l.Start)
	e.Add(l.End)
	return e
}

// LWPolyline is a 2D polyline made of straight segments.
type LWPolyline struct {
	Attrs
	Points []Vec2
	Closed bool
}

func (*LWPolyline) Type() string { return "LWPOLYLINE" }

func (p *LWPolyline) Bounds() Extents {
	var e Extents
	for _, v := range p.Points {
		e.Add(v)
	}
	return e
}

// Hatch is a solid filled region. Loops are closed polygons combined with
// the odd parity rule: a point is filled when it is enclosed by an odd
// number of loops.
type Hatch struct {
	Attrs
	Loops [][]Vec2
}

func (*Hatch) Type() string { return "HATCH" }

func (h *Hatch) Bounds() Extents {
	var e Extents
	for _, loop := range h.Loops {
		for _, v := range loop {
			e.Add(v)
		}
	}
	return e
}

// HAlign is the horizontal text justification (group 72).
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical text justification (group 73).
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignBottom
	AlignMiddle
	AlignTop
)

// Text is a single line of text.
type Text struct {
	Attrs
	// Insert is the anchor point. It is written as both the first and the
	// second alignment point, so it holds for every justification.
	Insert Vec2
	Height float64
	// Rotation is in degrees, counterclockwise.
	Rotation float64
	// WidthFactor scales glyphs horizontally. Zero means 1.
	WidthFactor float64
	Value       string
	// Style defaults to "Standard".
	Style  string
	HAlign HAlign
	VAlign VAlign
}

func (*Text) Type() string { return "TEXT" }

// Bounds approximates the text box as the square of the text height at the
// anchor since glyph metrics are not known here.
func (t *Text) Bounds() Extents {
	var e Extents
	e.Add(t.Insert)
	s, c := math.Sincos(t.Rotation * math.Pi / 180)
	e.Add(t.Insert.Add(Vec2{-s * t.Height, c * t.Height}))
	return e
}

// ImageDef is a raster image shared by IMAGE entities. The pixels are
// written as a PNG asset when the document is saved.
type ImageDef struct {
	Pixels image.Image
}

// Size returns the image size in pixels.
func (d *ImageDef) Size() (w, h int) {
	b := d.Pixels.Bounds()
	return b.Dx(), b.Dy()
}

// Image places an image definition in the drawing.
type Image struct {
	Attrs
	Def *ImageDef
	// Origin is the lower left corner of the image.
	Origin Vec2
	// U and V span one pixel along the image rows and columns.
	// V points from the bottom row towards the top row.
	U, V Vec2
	// Clip is an optional rectangle in pixel coordinates, origin at the top
	// left pixel corner. Nil shows the whole image.
	Clip *image.Rectangle
	// Fade is 0 (opaque) to 100 (invisible).
	Fade int
}

func (*Image) Type() string { return "IMAGE" }

func (im *Image) Bounds() Extents {
	var e Extents
	if im.Def == nil {
		return e
	}
	w, h := im.Def.Size()
	u := im.U.Scale(float64(w))
	v := im.V.Scale(float64(h))
	e.Add(im.Origin)
	e.Add(im.Origin.Add(u))
	e.Add(im.Origin.Add(v))
	e.Add(im.Origin.Add(u).Add(v))
	return e
}
