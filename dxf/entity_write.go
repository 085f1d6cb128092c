package dxf

import "image"

func (l *Line) writeBody(s *serializer, _ handle) {
	s.tw.raw(100, "AcDbLine")
	s.tw.point3(10, l.Start)
	s.tw.point3(11, l.End)
}

func (p *LWPolyline) writeBody(s *serializer, _ handle) {
	flags := 128 // continuous linetype pattern across vertices
	if p.Closed {
		flags |= 1
	}
	s.tw.raw(100, "AcDbPolyline")
	s.tw.int(90, len(p.Points))
	s.tw.int(70, flags)
	s.tw.float(43, 0)
	for _, v := range p.Points {
		s.tw.point(10, v)
	}
}

func (ht *Hatch) writeBody(s *serializer, _ handle) {
	s.tw.raw(100, "AcDbHatch")
	s.tw.point3(10, Vec2{})
	s.tw.float(210, 0)
	s.tw.float(220, 0)
	s.tw.float(230, 1)
	s.tw.raw(2, "SOLID")
	s.tw.int(70, 1)
	s.tw.int(71, 0)
	s.tw.int(91, len(ht.Loops))
	for i, loop := range ht.Loops {
		flags := 2 // polyline boundary
		if i == 0 {
			flags |= 1 // external
		}
		s.tw.int(92, flags)
		s.tw.int(72, 0)
		s.tw.int(73, 1)
		s.tw.int(93, len(loop))
		for _, v := range loop {
			s.tw.point(10, v)
		}
		s.tw.int(97, 0)
	}
	s.tw.int(75, 0) // odd parity
	s.tw.int(76, 1)
	s.tw.int(98, 0)
}

func (t *Text) writeBody(s *serializer, _ handle) {
	style := t.Style
	if style == "" {
		style = "Standard"
	}
	s.tw.raw(100, "AcDbText")
	s.tw.point3(10, t.Insert)
	s.tw.float(40, t.Height)
	s.tw.str(1, t.Value)
	if t.Rotation != 0 {
		s.tw.float(50, t.Rotation)
	}
	if t.WidthFactor != 0 && t.WidthFactor != 1 {
		s.tw.float(41, t.WidthFactor)
	}
	s.tw.str(7, style)
	if t.HAlign != AlignLeft {
		s.tw.int(72, int(t.HAlign))
	}
	if t.HAlign != AlignLeft || t.VAlign != AlignBaseline {
		s.tw.point3(11, t.Insert)
	}
	s.tw.raw(100, "AcDbText")
	if t.VAlign != AlignBaseline {
		s.tw.int(73, int(t.VAlign))
	}
}

// Display flags of group 70.
const (
	imageShow          = 1
	imageShowUnaligned = 2
	imageUseClip       = 4
	imageTransparency  = 8
)

func (im *Image) writeBody(s *serializer, h handle) {
	w, hgt := im.Def.Size()
	r := s.alloc()
	s.reactors = append(s.reactors, reactor{h: r, owner: h})
	s.defReactors[im.Def] = append(s.defReactors[im.Def], r)

	flags := imageShow | imageShowUnaligned | imageTransparency
	clip := image.Rect(0, 0, w, hgt)
	if im.Clip != nil {
		flags |= imageUseClip
		clip = im.Clip.Intersect(clip)
	}
	s.tw.raw(100, "AcDbRasterImage")
	s.tw.int(90, 0)
	s.tw.point3(10, im.Origin)
	s.tw.point3(11, im.U)
	s.tw.point3(12, im.V)
	s.tw.point(13, Vec2{float64(w), float64(hgt)})
	s.tw.handle(340, s.imageDefs[s.imageIndex[im.Def]])
	s.tw.int(70, flags)
	if im.Clip != nil {
		s.tw.int(280, 1)
	} else {
		s.tw.int(280, 0)
	}
	s.tw.int(281, 50)
	s.tw.int(282, 50)
	s.tw.int(283, clampFade(im.Fade))
	s.tw.handle(360, r)
	// Clip vertices are pixel corners; pixel centers sit on integers.
	s.tw.int(71, 1)
	s.tw.int(91, 2)
	s.tw.point(14, Vec2{float64(clip.Min.X) - 0.5, float64(clip.Min.Y) - 0.5})
	s.tw.point(14, Vec2{float64(clip.Max.X) - 0.5, float64(clip.Max.Y) - 0.5})
}

func clampFade(f int) int {
	return min(max(f, 0), 100)
}
