package dxf

import (
	"image/color"
	"math"
)

// Special color numbers. Entity colors 1..255 index the AutoCAD Color Index.
const (
	ByBlock = 0
	ByLayer = 256
)

// aciValues are the brightness steps of each hue block, one per pair of
// indices. Even indices are fully saturated, odd ones half saturated.
var aciValues = [5]float64{255, 204, 153, 127, 76}

// aciGrays are the shades of indices 250..255.
var aciGrays = [6]uint8{51, 80, 105, 130, 190, 255}

var aciPalette = buildPalette()

func buildPalette() [256]color.RGBA {
	var p [256]color.RGBA
	fixed := [...]color.RGBA{
		{0, 0, 0, 255},
		{255, 0, 0, 255},
		{255, 255, 0, 255},
		{0, 255, 0, 255},
		{0, 255, 255, 255},
		{0, 0, 255, 255},
		{255, 0, 255, 255},
		{255, 255, 255, 255},
		{128, 128, 128, 255},
		{192, 192, 192, 255},
	}
	copy(p[:], fixed[:])
	for i := 10; i < 250; i++ {
		hue := float64((i-10)/10) * 15
		step := (i - 10) % 10
		sat := 1.0
		if step%2 == 1 {
			sat = 0.5
		}
		p[i] = hsv(hue, sat, aciValues[step/2])
	}
	for i, g := range aciGrays {
		p[250+i] = color.RGBA{g, g, g, 255}
	}
	return p
}

// hsv converts hue in degrees, saturation in [0,1] and value in [0,255].
// Channels are truncated, which is how the AutoCAD table was produced.
func hsv(h, s, v float64) color.RGBA {
	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	return color.RGBA{
		R: uint8(math.Floor(r + m)),
		G: uint8(math.Floor(g + m)),
		B: uint8(math.Floor(b + m)),
		A: 255,
	}
}

// ACIColor returns the RGB value of a palette index. It reports false for
// indices outside 1..255.
func ACIColor(index int) (color.RGBA, bool) {
	if index < 1 || index > 255 {
		return color.RGBA{}, false
	}
	return aciPalette[index], true
}

// NearestACI returns the palette index in 1..255 closest to the given color
// by Euclidean distance in RGB space. Ties go to the lowest index, so the
// result is defined for every input.
func NearestACI(r, g, b uint8) int {
	best, bestDist := 1, math.MaxInt
	for i := 1; i < 256; i++ {
		c := aciPalette[i]
		dr := int(c.R) - int(r)
		dg := int(c.G) - int(g)
		db := int(c.B) - int(b)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return best
}
