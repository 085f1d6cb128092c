package dxf

import "strings"

// Linetype is an entry of the LTYPE table.
//
// Pattern alternates dash and gap lengths in drawing units, starting with a
// dash. A zero dash is a dot. An empty pattern is a continuous line.
type Linetype struct {
	Name        string
	Description string
	Pattern     []float64
}

// Period returns the length of one repetition of the pattern.
func (lt Linetype) Period() float64 {
	var sum float64
	for _, v := range lt.Pattern {
		sum += v
	}
	return sum
}

// IsContinuous reports whether lt draws a solid line.
func (lt Linetype) IsContinuous() bool {
	return len(lt.Pattern) == 0
}

// Names that are always present in the LTYPE table.
const (
	LinetypeByBlock    = "ByBlock"
	LinetypeByLayer    = "ByLayer"
	LinetypeContinuous = "Continuous"
)

// The dashed linetypes below match the definitions of acad.lin in inches.
var standardLinetypes = []Linetype{
	{Name: "DASHED", Description: "Dashed __ __ __ __ __ __", Pattern: []float64{0.5, 0.25}},
	{Name: "DOT", Description: "Dot . . . . . . . . . . .", Pattern: []float64{0, 0.25}},
	{Name: "DASHDOT", Description: "Dash dot __ . __ . __ . __", Pattern: []float64{0.5, 0.25, 0, 0.25}},
	{Name: "CENTER", Description: "Center ____ _ ____ _ ____", Pattern: []float64{1.25, 0.25, 0.25, 0.25}},
	{Name: "DIVIDE", Description: "Divide ____ . . ____ . . __", Pattern: []float64{0.5, 0.25, 0, 0.25, 0, 0.25}},
	{Name: "BORDER", Description: "Border __ __ . __ __ . __", Pattern: []float64{0.5, 0.25, 0.5, 0.25, 0, 0.25}},
}

// StandardLinetypes returns copies of the named dashed linetypes in table
// order.
func StandardLinetypes() []Linetype {
	out := make([]Linetype, len(standardLinetypes))
	for i, lt := range standardLinetypes {
		lt.Pattern = append([]float64(nil), lt.Pattern...)
		out[i] = lt
	}
	return out
}

// StandardLinetype looks up a standard linetype by name, ignoring case.
func StandardLinetype(name string) (Linetype, bool) {
	for _, lt := range standardLinetypes {
		if strings.EqualFold(lt.Name, name) {
			lt.Pattern = append([]float64(nil), lt.Pattern...)
			return lt, true
		}
	}
	return Linetype{}, false
}

func isBuiltinLinetype(name string) bool {
	return strings.EqualFold(name, LinetypeByBlock) ||
		strings.EqualFold(name, LinetypeByLayer) ||
		strings.EqualFold(name, LinetypeContinuous)
}
