package ggdxf

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/gg-dxf/dxf"
)

// DrawImage places pixels in the local rectangle with top left corner
// (x, y) and size w by h, where top is the side opposite the text up
// direction. The pixels are copied, so the caller may reuse them.
//
// The image becomes an IMAGE entity referring to a PNG saved next to the
// drawing. Under a clip the image is cropped to the pixels that cover the
// clip's bounding box, or skipped when it lies outside.
func (a *Adapter) DrawImage(x, y, w, h float64, pixels image.Image, st GraphicsState) error {
	if err := a.check("DrawImage"); err != nil {
		return err
	}
	if pixels == nil || pixels.Bounds().Empty() || !(w > 0) || !(h > 0) {
		a.stats.Skipped++
		return nil
	}
	m, ok := a.device("DrawImage", st)
	if !ok {
		return nil
	}
	pb := pixels.Bounds()
	pw, ph := pb.Dx(), pb.Dy()

	down := a.upLocal().Mul(-1)
	tl := Pt(x, y)
	if down.Y < 0 {
		tl = Pt(x, y+h)
	}
	col := Pt(w/float64(pw), 0)
	row := down.Mul(h / float64(ph))
	// pix maps pixel corner coordinates to local space.
	pix := Matrix{A: col.X, B: row.X, C: tl.X, D: col.Y, E: row.Y, F: tl.Y}
	dev := m.Multiply(pix)

	var crop *image.Rectangle
	if cr := a.activeClip(st); cr != nil {
		full := image.Rect(0, 0, pw, ph)
		r, ok := clipPixels(*cr, dev, full)
		if !ok {
			a.stats.Skipped++
			return nil
		}
		if r != full {
			crop = &r
		}
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(nrgba, nrgba.Bounds(), pixels, pb.Min, draw.Src)

	docm := a.flip.Multiply(dev)
	a.add(&dxf.Image{
		Attrs:  dxf.Attrs{Layer: a.layerFor(st)},
		Def:    a.doc.AddImage(nrgba),
		Origin: vec(docm.TransformPoint(Pt(0, float64(ph)))),
		U:      vec(docm.TransformVector(Pt(1, 0))),
		V:      vec(docm.TransformVector(Pt(0, -1))),
		Clip:   crop,
	})
	return nil
}

// clipPixels returns the pixels of full that cover the device rectangle
// cr, where dev maps pixel to device coordinates. It reports false when
// none do.
func clipPixels(cr Rect, dev Matrix, full image.Rectangle) (image.Rectangle, bool) {
	if cr.IsEmpty() {
		return image.Rectangle{}, false
	}
	bounds := NewRect(0, 0, float64(full.Dx()), float64(full.Dy())).Transform(dev)
	if bounds.Intersect(cr).IsEmpty() {
		return image.Rectangle{}, false
	}
	inv, ok := dev.Invert()
	if !ok {
		return image.Rectangle{}, false
	}
	pr := cr.Transform(inv)
	r := image.Rect(
		int(math.Floor(pr.MinX)), int(math.Floor(pr.MinY)),
		int(math.Ceil(pr.MaxX)), int(math.Ceil(pr.MaxY)),
	).Intersect(full)
	if r.Empty() {
		return image.Rectangle{}, false
	}
	return r, true
}

func vec(p Point) dxf.Vec2 {
	return dxf.Vec2{X: p.X, Y: p.Y}
}
