// Package dxf holds an in-memory model of an AutoCAD R2000 (AC1015) drawing
// and serializes it to the ASCII DXF interchange format.
//
// A [Document] is append-only: entities are stored in the order they are
// added, which is the order a CAD viewer paints them. Layers and linetypes
// referenced by entities are registered in the document tables on demand.
//
// Serialization allocates all object handles in one pass and writes the
// HEADER, CLASSES, TABLES, BLOCKS, ENTITIES and OBJECTS sections. Raster
// images are not embedded: [Document.SaveAs] writes every image as a PNG
// file next to the drawing and references it by relative file name.
//
// Strings are encoded to the drawing code page ($DWGCODEPAGE, ANSI_1252 by
// default). Characters the code page cannot represent are written as
// \U+XXXX escapes, which CAD readers decode back to Unicode.
package dxf
