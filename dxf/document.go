package dxf

import (
	"image"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Units is the $INSUNITS drawing unit.
type Units int

const (
	UnitsUnitless    Units = 0
	UnitsInches      Units = 1
	UnitsFeet        Units = 2
	UnitsMillimeters Units = 4
	UnitsCentimeters Units = 5
	UnitsMeters      Units = 6
)

func (u Units) metric() bool {
	return u == UnitsMillimeters || u == UnitsCentimeters || u == UnitsMeters
}

// DefaultCodepage is the $DWGCODEPAGE of new documents.
const DefaultCodepage = "ANSI_1252"

var codepages = map[string]*charmap.Charmap{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
}

// Option configures a Document.
type Option func(*Document)

// WithUnits sets the drawing units.
func WithUnits(u Units) Option {
	return func(d *Document) {
		d.units = u
	}
}

// WithCodepage selects the code page used for strings, e.g. "ANSI_1251".
// Unknown names keep the default.
func WithCodepage(name string) Option {
	return func(d *Document) {
		name = strings.ToUpper(name)
		if _, ok := codepages[name]; !ok {
			Logger().Warn("dxf: unknown code page, keeping default", "codepage", name, "default", d.codepage)
			return
		}
		d.codepage = name
	}
}

// Layer is an entry of the LAYER table.
type Layer struct {
	Name       string
	Color      int
	Linetype   string
	Lineweight Lineweight
}

// Document is an in-memory DXF drawing.
type Document struct {
	units    Units
	codepage string

	layers     []*Layer
	layerIndex map[string]int
	linetypes  []Linetype
	ltypeIndex map[string]int
	entities   []Entity
	images     []*ImageDef
	canvas     Extents
}

// New returns an empty drawing that contains layer "0".
func New(opts ...Option) *Document {
	d := &Document{
		codepage:   DefaultCodepage,
		layerIndex: make(map[string]int),
		ltypeIndex: make(map[string]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.AddLayer("0")
	return d
}

// Units returns the drawing units.
func (d *Document) Units() Units { return d.units }

// Codepage returns the $DWGCODEPAGE name.
func (d *Document) Codepage() string { return d.codepage }

// AddLayer returns the layer with the given name, creating it with color 7
// and a continuous linetype if it does not exist. Layer names are case
// insensitive.
func (d *Document) AddLayer(name string) *Layer {
	key := strings.ToUpper(name)
	if i, ok := d.layerIndex[key]; ok {
		return d.layers[i]
	}
	l := &Layer{Name: name, Color: 7, Linetype: LinetypeContinuous, Lineweight: LineweightDefault}
	d.layerIndex[key] = len(d.layers)
	d.layers = append(d.layers, l)
	return l
}

// Layer looks up a layer by name.
func (d *Document) Layer(name string) (*Layer, bool) {
	i, ok := d.layerIndex[strings.ToUpper(name)]
	if !ok {
		return nil, false
	}
	return d.layers[i], true
}

// Layers returns the layer table in creation order.
func (d *Document) Layers() []*Layer {
	return append([]*Layer(nil), d.layers...)
}

// AddLinetype registers lt in the LTYPE table. Adding a name twice keeps
// the first definition. The built-in names are ignored.
func (d *Document) AddLinetype(lt Linetype) {
	if isBuiltinLinetype(lt.Name) {
		return
	}
	key := strings.ToUpper(lt.Name)
	if _, ok := d.ltypeIndex[key]; ok {
		return
	}
	lt.Pattern = append([]float64(nil), lt.Pattern...)
	d.ltypeIndex[key] = len(d.linetypes)
	d.linetypes = append(d.linetypes, lt)
}

// Linetype looks up a registered linetype by name.
func (d *Document) Linetype(name string) (Linetype, bool) {
	i, ok := d.ltypeIndex[strings.ToUpper(name)]
	if !ok {
		return Linetype{}, false
	}
	return d.linetypes[i], true
}

// Linetypes returns the registered linetypes, without the built-in ones.
func (d *Document) Linetypes() []Linetype {
	return append([]Linetype(nil), d.linetypes...)
}

// Add appends an entity. The entity layer is created if needed. A linetype
// that is neither registered nor a standard linetype is replaced by BYLAYER.
func (d *Document) Add(e Entity) {
	a := e.attrs()
	if a.Layer == "" {
		a.Layer = "0"
	}
	d.AddLayer(a.Layer)
	if a.Linetype != "" && !isBuiltinLinetype(a.Linetype) {
		if _, ok := d.Linetype(a.Linetype); !ok {
			if lt, ok := StandardLinetype(a.Linetype); ok {
				d.AddLinetype(lt)
			} else {
				Logger().Warn("dxf: unknown linetype, using BYLAYER", "linetype", a.Linetype, "entity", e.Type())
				a.Linetype = ""
			}
		}
	}
	if im, ok := e.(*Image); ok {
		if im.Def == nil {
			Logger().Warn("dxf: image without definition dropped")
			return
		}
		if !d.hasImage(im.Def) {
			d.images = append(d.images, im.Def)
		}
	}
	d.entities = append(d.entities, e)
}

// Entities returns the entities in insertion order.
func (d *Document) Entities() []Entity {
	return append([]Entity(nil), d.entities...)
}

// AddImage registers pixels as a new image definition.
func (d *Document) AddImage(pixels image.Image) *ImageDef {
	def := &ImageDef{Pixels: pixels}
	d.images = append(d.images, def)
	return def
}

// Images returns the image definitions in the order they are saved.
func (d *Document) Images() []*ImageDef {
	return append([]*ImageDef(nil), d.images...)
}

func (d *Document) hasImage(def *ImageDef) bool {
	for _, x := range d.images {
		if x == def {
			return true
		}
	}
	return false
}

// SetCanvas records the drawing area. It is part of the $EXTMIN/$EXTMAX
// extents even when no entity reaches its corners.
func (d *Document) SetCanvas(min, max Vec2) {
	d.canvas = Extents{}
	d.canvas.Add(min)
	d.canvas.Add(max)
}

// Bounds returns the union of all entity bounds.
func (d *Document) Bounds() Extents {
	var e Extents
	for _, ent := range d.entities {
		e.Union(ent.Bounds())
	}
	return e
}

// Extents returns the canvas grown by the entity bounds.
func (d *Document) Extents() Extents {
	e := d.canvas
	e.Union(d.Bounds())
	return e
}
