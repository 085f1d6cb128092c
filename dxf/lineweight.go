package dxf

import "math"

// Lineweight is a pen width in hundredths of a millimetre.
type Lineweight int16

// Symbolic lineweights.
const (
	LineweightByLayer Lineweight = -1
	LineweightByBlock Lineweight = -2
	LineweightDefault Lineweight = -3
)

// StandardLineweights are the widths a DXF reader accepts for group 370.
var StandardLineweights = []Lineweight{
	0, 5, 9, 13, 15, 18, 20, 25, 30, 35, 40, 50, 53,
	60, 70, 80, 90, 100, 106, 120, 140, 158, 200, 211,
}

// NearestLineweight rounds a width in hundredths of a millimetre to the
// closest standard lineweight. Ties go to the thinner pen.
func NearestLineweight(hundredths float64) Lineweight {
	if math.IsNaN(hundredths) || hundredths <= 0 {
		return 0
	}
	best := StandardLineweights[0]
	bestDist := math.Inf(1)
	for _, lw := range StandardLineweights {
		d := math.Abs(float64(lw) - hundredths)
		if d < bestDist {
			best, bestDist = lw, d
		}
	}
	return best
}

// Millimetres returns the width in millimetres, or 0 for symbolic values.
func (lw Lineweight) Millimetres() float64 {
	if lw < 0 {
		return 0
	}
	return float64(lw) / 100
}
