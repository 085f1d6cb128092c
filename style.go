package ggdxf

import (
	"math"

	"github.com/gogpu/gg-dxf/dxf"
)

// hundredthsMMPerPoint converts points to the unit of DXF lineweights.
const hundredthsMMPerPoint = 2540.0 / 72.0

// Remapped palette indices.
const (
	aciWhite     = 7
	aciDarkGray  = 250
	aciTrueWhite = 255
)

// StyleMapper maps styles onto what a DXF entity can carry: a palette
// color, a lineweight and a named linetype.
type StyleMapper struct {
	raw           bool
	unitsPerPoint float64
}

// NewStyleMapper returns a mapper for a document with the given device
// units per point. With raw set, colors map to the plain nearest index.
func NewStyleMapper(unitsPerPoint float64, raw bool) *StyleMapper {
	if !(unitsPerPoint > 0) {
		unitsPerPoint = 1
	}
	return &StyleMapper{raw: raw, unitsPerPoint: unitsPerPoint}
}

// Color returns the palette index for c, ignoring alpha.
//
// Unless the mapper is raw, any color at least as close to black as to its
// nearest palette entry becomes dark gray 250, and anything nearest to
// index 7 becomes 255. Index 7 is drawn black or white
// depending on the viewer background, which would turn white areas black
// on white paper.
func (m *StyleMapper) Color(c RGBA) int {
	r, g, b := c.Bytes()
	idx := dxf.NearestACI(r, g, b)
	if m.raw {
		return idx
	}
	if pc, _ := dxf.ACIColor(idx); rgbDist(r, g, b, pc.R, pc.G, pc.B) >= rgbDist(r, g, b, 0, 0, 0) {
		return aciDarkGray
	}
	if idx == aciWhite {
		return aciTrueWhite
	}
	return idx
}

func rgbDist(r1, g1, b1, r2, g2, b2 uint8) int {
	dr := int(r1) - int(r2)
	dg := int(g1) - int(g2)
	db := int(b1) - int(b2)
	return dr*dr + dg*dg + db*db
}

// Lineweight returns the standard lineweight nearest to a width in points.
func (m *StyleMapper) Lineweight(points float64) dxf.Lineweight {
	return dxf.NearestLineweight(points * hundredthsMMPerPoint)
}

// Linetype returns the named linetype closest to d and the linetype scale
// that stretches its period to the period of d.
//
// Patterns are compared after dividing by their period, so only the
// rhythm matters, and only against linetypes with as many elements. A
// solid or unmatched pattern returns ok false.
func (m *StyleMapper) Linetype(d *Dash) (lt dxf.Linetype, scale float64, ok bool) {
	pattern := d.Even()
	period := d.PatternLength()
	if !(period > 0) {
		return dxf.Linetype{}, 0, false
	}
	bestDist := math.Inf(1)
	for _, cand := range dxf.StandardLinetypes() {
		if len(cand.Pattern) != len(pattern) {
			continue
		}
		cp := cand.Period()
		var dist float64
		for i, v := range pattern {
			diff := v/period - cand.Pattern[i]/cp
			dist += diff * diff
		}
		if dist < bestDist {
			lt, bestDist, ok = cand, dist, true
		}
	}
	if !ok {
		return dxf.Linetype{}, 0, false
	}
	return lt, period * m.unitsPerPoint / lt.Period(), true
}
