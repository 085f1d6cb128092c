package dxf

import (
	"bytes"
	"io"
	"strings"
)

// firstHandle is the first allocated handle. Small handles are left free
// for readers that reserve them.
const firstHandle handle = 0x20

type reactor struct {
	h, owner handle
}

// serializer writes one document. Table, block and dictionary handles are
// allocated up front because records refer to their owners.
type serializer struct {
	doc       *Document
	tw        *tagWriter
	next      handle
	assetName func(int) string

	vportTable, vport         handle
	ltypeTable, layerTable    handle
	styleTable, style         handle
	viewTable, ucsTable       handle
	appidTable, appid         handle
	dimstyleTable, dimstyle   handle
	recordTable               handle
	modelRecord, paperRecord  handle
	modelBegin, modelEnd      handle
	paperBegin, paperEnd      handle
	rootDict, groupDict       handle
	imageDict                 handle
	builtinLtypes             [3]handle
	ltypes, layers, imageDefs []handle
	imageIndex                map[*ImageDef]int
	reactors                  []reactor
	defReactors               map[*ImageDef][]handle
}

func (s *serializer) alloc() handle {
	h := s.next
	s.next++
	return h
}

func (s *serializer) allocate() {
	for _, p := range []*handle{
		&s.vportTable, &s.vport, &s.ltypeTable, &s.layerTable,
		&s.styleTable, &s.style, &s.viewTable, &s.ucsTable,
		&s.appidTable, &s.appid, &s.dimstyleTable, &s.dimstyle,
		&s.recordTable, &s.modelRecord, &s.paperRecord,
		&s.modelBegin, &s.modelEnd, &s.paperBegin, &s.paperEnd,
		&s.rootDict, &s.groupDict, &s.imageDict,
	} {
		*p = s.alloc()
	}
	for i := range s.builtinLtypes {
		s.builtinLtypes[i] = s.alloc()
	}
	for range s.doc.linetypes {
		s.ltypes = append(s.ltypes, s.alloc())
	}
	for range s.doc.layers {
		s.layers = append(s.layers, s.alloc())
	}
	s.imageIndex = make(map[*ImageDef]int, len(s.doc.images))
	s.defReactors = make(map[*ImageDef][]handle)
	for i, def := range s.doc.images {
		s.imageIndex[def] = i
		s.imageDefs = append(s.imageDefs, s.alloc())
	}
}

// encode serializes d. assetName maps an image index to the file name the
// IMAGEDEF refers to.
func (d *Document) encode(w io.Writer, assetName func(int) string) error {
	cm := codepages[d.codepage]
	var body bytes.Buffer
	s := &serializer{
		doc:       d,
		tw:        newTagWriter(&body, cm),
		next:      firstHandle,
		assetName: assetName,
	}
	s.allocate()
	s.writeClasses()
	s.writeTables()
	s.writeBlocks()
	s.writeEntities()
	s.writeObjects()
	s.tw.raw(0, "EOF")
	if err := s.tw.flush(); err != nil {
		return err
	}

	// The header goes last into the buffer order but first into the file:
	// $HANDSEED is only known once every handle has been allocated.
	hdr := newTagWriter(w, cm)
	s.tw = hdr
	s.writeHeader()
	if err := hdr.flush(); err != nil {
		return err
	}
	_, err := body.WriteTo(w)
	return err
}

func (s *serializer) section(name string) {
	s.tw.raw(0, "SECTION")
	s.tw.raw(2, name)
}

func (s *serializer) endsec() {
	s.tw.raw(0, "ENDSEC")
}

func (s *serializer) header(name string) {
	s.tw.raw(9, name)
}

func (s *serializer) writeHeader() {
	ext := s.doc.Extents()
	limits := ext
	if ext.IsEmpty() {
		ext.Add(Vec2{})
		limits = ext
	}
	measurement := 0
	if s.doc.units.metric() {
		measurement = 1
	}

	s.section("HEADER")
	s.header("$ACADVER")
	s.tw.raw(1, "AC1015")
	s.header("$DWGCODEPAGE")
	s.tw.raw(3, s.doc.codepage)
	s.header("$INSBASE")
	s.tw.point3(10, Vec2{})
	s.header("$EXTMIN")
	s.tw.point3(10, ext.Min)
	s.header("$EXTMAX")
	s.tw.point3(10, ext.Max)
	s.header("$LIMMIN")
	s.tw.point(10, limits.Min)
	s.header("$LIMMAX")
	s.tw.point(10, limits.Max)
	s.header("$LTSCALE")
	s.tw.float(40, 1)
	s.header("$INSUNITS")
	s.tw.int(70, int(s.doc.units))
	s.header("$MEASUREMENT")
	s.tw.int(70, measurement)
	s.header("$LWDISPLAY")
	s.tw.int(290, 1)
	s.header("$HANDSEED")
	s.tw.handle(5, s.next)
	s.endsec()
}

func (s *serializer) writeClasses() {
	s.section("CLASSES")
	if len(s.doc.images) > 0 {
		s.class("IMAGE", "AcDbRasterImage", 127, true)
		s.class("IMAGEDEF", "AcDbRasterImageDef", 0, false)
		s.class("IMAGEDEF_REACTOR", "AcDbRasterImageDefReactor", 1, false)
	}
	s.endsec()
}

func (s *serializer) class(name, cpp string, flags int, entity bool) {
	s.tw.raw(0, "CLASS")
	s.tw.raw(1, name)
	s.tw.raw(2, cpp)
	s.tw.raw(3, "ISM")
	s.tw.int(90, flags)
	s.tw.int(280, 0)
	if entity {
		s.tw.int(281, 1)
	} else {
		s.tw.int(281, 0)
	}
}

func (s *serializer) table(name string, h handle, count int) {
	s.tw.raw(0, "TABLE")
	s.tw.raw(2, name)
	s.tw.handle(5, h)
	s.tw.raw(330, "0")
	s.tw.raw(100, "AcDbSymbolTable")
	s.tw.int(70, count)
}

func (s *serializer) record(kind string, h, owner handle, subclass string) {
	s.tw.raw(0, kind)
	s.tw.handle(5, h)
	s.tw.handle(330, owner)
	s.tw.raw(100, "AcDbSymbolTableRecord")
	s.tw.raw(100, subclass)
}

func (s *serializer) endtab() {
	s.tw.raw(0, "ENDTAB")
}

func (s *serializer) writeTables() {
	s.section("TABLES")

	s.table("VPORT", s.vportTable, 1)
	s.record("VPORT", s.vport, s.vportTable, "AcDbViewportTableRecord")
	s.tw.raw(2, "*Active")
	s.tw.int(70, 0)
	s.tw.point(10, Vec2{})
	s.tw.point(11, Vec2{1, 1})
	ext := s.doc.Extents()
	w, h := ext.Size()
	if h <= 0 {
		h = 1
	}
	s.tw.point(12, ext.Center())
	s.tw.float(40, h*1.1)
	if w > 0 {
		s.tw.float(41, w/h)
	} else {
		s.tw.float(41, 1)
	}
	s.endtab()

	s.table("LTYPE", s.ltypeTable, 3+len(s.doc.linetypes))
	builtin := [3]Linetype{
		{Name: LinetypeByBlock},
		{Name: LinetypeByLayer},
		{Name: LinetypeContinuous, Description: "Solid line"},
	}
	for i, lt := range builtin {
		s.linetype(s.builtinLtypes[i], lt)
	}
	for i, lt := range s.doc.linetypes {
		s.linetype(s.ltypes[i], lt)
	}
	s.endtab()

	s.table("LAYER", s.layerTable, len(s.doc.layers))
	for i, l := range s.doc.layers {
		s.record("LAYER", s.layers[i], s.layerTable, "AcDbLayerTableRecord")
		s.tw.str(2, l.Name)
		s.tw.int(70, 0)
		s.tw.int(62, l.Color)
		lt := l.Linetype
		if lt == "" {
			lt = LinetypeContinuous
		}
		s.tw.str(6, lt)
		s.tw.int(370, int(l.Lineweight))
	}
	s.endtab()

	s.table("STYLE", s.styleTable, 1)
	s.record("STYLE", s.style, s.styleTable, "AcDbTextStyleTableRecord")
	s.tw.raw(2, "Standard")
	s.tw.int(70, 0)
	s.tw.float(40, 0)
	s.tw.float(41, 1)
	s.tw.float(50, 0)
	s.tw.int(71, 0)
	s.tw.float(42, 2.5)
	s.tw.raw(3, "txt")
	s.tw.raw(4, "")
	s.endtab()

	s.table("VIEW", s.viewTable, 0)
	s.endtab()
	s.table("UCS", s.ucsTable, 0)
	s.endtab()

	s.table("APPID", s.appidTable, 1)
	s.record("APPID", s.appid, s.appidTable, "AcDbRegAppTableRecord")
	s.tw.raw(2, "ACAD")
	s.tw.int(70, 0)
	s.endtab()

	s.table("DIMSTYLE", s.dimstyleTable, 1)
	s.tw.raw(100, "AcDbDimStyleTable")
	s.tw.int(71, 0)
	s.tw.raw(0, "DIMSTYLE")
	s.tw.handle(105, s.dimstyle)
	s.tw.handle(330, s.dimstyleTable)
	s.tw.raw(100, "AcDbSymbolTableRecord")
	s.tw.raw(100, "AcDbDimStyleTableRecord")
	s.tw.raw(2, "Standard")
	s.tw.int(70, 0)
	s.endtab()

	s.table("BLOCK_RECORD", s.recordTable, 2)
	s.record("BLOCK_RECORD", s.modelRecord, s.recordTable, "AcDbBlockTableRecord")
	s.tw.raw(2, "*Model_Space")
	s.record("BLOCK_RECORD", s.paperRecord, s.recordTable, "AcDbBlockTableRecord")
	s.tw.raw(2, "*Paper_Space")
	s.endtab()

	s.endsec()
}

func (s *serializer) linetype(h handle, lt Linetype) {
	s.record("LTYPE", h, s.ltypeTable, "AcDbLinetypeTableRecord")
	s.tw.str(2, lt.Name)
	s.tw.int(70, 0)
	s.tw.str(3, lt.Description)
	s.tw.int(72, 65)
	s.tw.int(73, len(lt.Pattern))
	s.tw.float(40, lt.Period())
	for i, v := range lt.Pattern {
		if i%2 == 1 {
			v = -v
		}
		s.tw.float(49, v)
		s.tw.int(74, 0)
	}
}

func (s *serializer) writeBlocks() {
	s.section("BLOCKS")
	s.block("*Model_Space", s.modelBegin, s.modelEnd, s.modelRecord)
	s.block("*Paper_Space", s.paperBegin, s.paperEnd, s.paperRecord)
	s.endsec()
}

func (s *serializer) block(name string, begin, end, owner handle) {
	s.tw.raw(0, "BLOCK")
	s.tw.handle(5, begin)
	s.tw.handle(330, owner)
	s.tw.raw(100, "AcDbEntity")
	s.tw.raw(8, "0")
	s.tw.raw(100, "AcDbBlockBegin")
	s.tw.raw(2, name)
	s.tw.int(70, 0)
	s.tw.point3(10, Vec2{})
	s.tw.raw(3, name)
	s.tw.raw(1, "")
	s.tw.raw(0, "ENDBLK")
	s.tw.handle(5, end)
	s.tw.handle(330, owner)
	s.tw.raw(100, "AcDbEntity")
	s.tw.raw(8, "0")
	s.tw.raw(100, "AcDbBlockEnd")
}

func (s *serializer) writeEntities() {
	s.section("ENTITIES")
	for _, e := range s.doc.entities {
		s.entity(e)
	}
	s.endsec()
}

// entity writes the common part of e and then its body.
func (s *serializer) entity(e Entity) {
	a := e.attrs()
	h := s.alloc()
	s.tw.raw(0, e.Type())
	s.tw.handle(5, h)
	s.tw.handle(330, s.modelRecord)
	s.tw.raw(100, "AcDbEntity")
	layer := a.Layer
	if layer == "" {
		layer = "0"
	}
	s.tw.str(8, layer)
	if a.Linetype != "" && !strings.EqualFold(a.Linetype, LinetypeByLayer) {
		s.tw.str(6, a.Linetype)
	}
	if a.Color != 0 && a.Color != ByLayer {
		s.tw.int(62, a.Color)
	}
	s.tw.int(370, int(a.Lineweight))
	if a.LinetypeScale != 0 && a.LinetypeScale != 1 {
		s.tw.float(48, a.LinetypeScale)
	}
	e.writeBody(s, h)
}

func (s *serializer) writeObjects() {
	s.section("OBJECTS")

	s.tw.raw(0, "DICTIONARY")
	s.tw.handle(5, s.rootDict)
	s.tw.raw(330, "0")
	s.tw.raw(100, "AcDbDictionary")
	s.tw.int(281, 1)
	s.tw.raw(3, "ACAD_GROUP")
	s.tw.handle(350, s.groupDict)
	if len(s.doc.images) > 0 {
		s.tw.raw(3, "ACAD_IMAGE_DICT")
		s.tw.handle(350, s.imageDict)
	}

	s.dictionary(s.groupDict, s.rootDict)

	if len(s.doc.images) > 0 {
		s.dictionary(s.imageDict, s.rootDict)
		for i := range s.doc.images {
			s.tw.str(3, imageKey(s.assetName(i)))
			s.tw.handle(350, s.imageDefs[i])
		}
		for i, def := range s.doc.images {
			s.imageDef(i, def)
		}
		for _, r := range s.reactors {
			s.tw.raw(0, "IMAGEDEF_REACTOR")
			s.tw.handle(5, r.h)
			s.tw.handle(330, r.owner)
			s.tw.raw(100, "AcDbRasterImageDefReactor")
			s.tw.int(90, 2)
			s.tw.handle(330, r.owner)
		}
	}
	s.endsec()
}

func (s *serializer) dictionary(h, owner handle) {
	s.tw.raw(0, "DICTIONARY")
	s.tw.handle(5, h)
	s.tw.handle(330, owner)
	s.tw.raw(100, "AcDbDictionary")
	s.tw.int(281, 1)
}

func (s *serializer) imageDef(i int, def *ImageDef) {
	w, h := def.Size()
	s.tw.raw(0, "IMAGEDEF")
	s.tw.handle(5, s.imageDefs[i])
	s.tw.raw(102, "{ACAD_REACTORS")
	s.tw.handle(330, s.imageDict)
	for _, r := range s.defReactors[def] {
		s.tw.handle(330, r)
	}
	s.tw.raw(102, "}")
	s.tw.handle(330, s.imageDict)
	s.tw.raw(100, "AcDbRasterImageDef")
	s.tw.int(90, 0)
	s.tw.str(1, s.assetName(i))
	s.tw.point(10, Vec2{float64(w), float64(h)})
	s.tw.point(11, Vec2{1, 1})
	s.tw.int(280, 1)
	s.tw.int(281, 0)
}

// imageKey is the ACAD_IMAGE_DICT key of an asset: its name without the
// extension.
func imageKey(file string) string {
	if i := strings.LastIndexByte(file, '.'); i > 0 {
		return file[:i]
	}
	return file
}
