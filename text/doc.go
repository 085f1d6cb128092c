// Package text turns strings into glyph outlines.
//
// Text is shaped with the HarfBuzz port of go-text/typesetting, so kerning
// and ligatures from the font are applied, and the outlines of the shaped
// glyphs are loaded with golang.org/x/image/font/sfnt. The result is a
// flat list of path segments that a drawing backend can stroke or fill
// where it has no native way to show the text, for example text under a
// sheared transform.
//
// Coordinates are y-down with the origin at the start of the baseline,
// the same orientation as glyph outlines in sfnt.
package text
