package text

import (
	"bytes"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gg-dxf/internal/cache"
)

// runCacheSize bounds the number of outlined strings kept per Outliner.
const runCacheSize = 256

// Point is a position in the outline coordinate space.
type Point struct {
	X, Y float64
}

// SegmentOp is the kind of an outline segment.
type SegmentOp uint8

const (
	SegmentMoveTo SegmentOp = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubeTo
)

// Segment is one outline command. MoveTo and LineTo use Points[0], QuadTo
// uses the control point and end point in Points[0:2], CubeTo all three.
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// Run is the outline of a shaped string.
type Run struct {
	Segments []Segment
	// Advance is the pen movement across the whole string.
	Advance float64
	// Ascent and Descent are the line extents above and below the baseline,
	// both positive.
	Ascent, Descent float64
}

// Outliner shapes text with one font and extracts glyph outlines.
// It is safe for concurrent use.
type Outliner struct {
	mu     sync.Mutex
	glyphs *opentype.Font
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
	runs   *cache.Cache[runKey, Run]
}

type runKey struct {
	s    string
	size float64
}

// NewOutliner parses a TrueType or OpenType font.
func NewOutliner(data []byte) (*Outliner, error) {
	glyphs, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &Outliner{
		glyphs: glyphs,
		face:   face,
		runs:   cache.New[runKey, Run](runCacheSize),
	}, nil
}

var (
	defaultOnce     sync.Once
	defaultOutliner *Outliner
	defaultErr      error
)

// Default returns a shared Outliner for the Go Regular font.
func Default() (*Outliner, error) {
	defaultOnce.Do(func() {
		defaultOutliner, defaultErr = NewOutliner(goregular.TTF)
	})
	return defaultOutliner, defaultErr
}

// Outline shapes s at size units per em and returns its outline. Glyphs
// without an outline, such as spaces, only advance the pen.
//
// Recent results are cached, so the returned segments are shared and must
// not be modified.
func (o *Outliner) Outline(s string, size float64) (Run, error) {
	if s == "" || !(size > 0) {
		return Run{}, nil
	}
	key := runKey{s, size}
	if run, ok := o.runs.Get(key); ok {
		return run, nil
	}
	run, err := o.outline(s, size)
	if err != nil {
		return Run{}, err
	}
	o.runs.Set(key, run)
	return run, nil
}

func (o *Outliner) outline(s string, size float64) (Run, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	runes := []rune(s)
	ppem := fixed.Int26_6(size * 64)
	out := o.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      o.face,
		Size:      ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	run := Run{
		Ascent:  abs(fixedToFloat(out.LineBounds.Ascent)),
		Descent: abs(fixedToFloat(out.LineBounds.Descent)),
	}
	var pen float64
	for _, g := range out.Glyphs {
		// Shaper offsets are y-up, outlines y-down.
		ox := pen + fixedToFloat(g.XOffset)
		oy := -fixedToFloat(g.YOffset)
		segs, err := o.glyphs.LoadGlyph(&o.buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err != nil {
			return Run{}, fmt.Errorf("text: load glyph %d: %w", g.GlyphID, err)
		}
		for _, seg := range segs {
			run.Segments = append(run.Segments, convertSegment(seg, ox, oy))
		}
		pen += fixedToFloat(g.Advance)
	}
	run.Advance = pen
	return run, nil
}

func convertSegment(seg sfnt.Segment, ox, oy float64) Segment {
	var out Segment
	n := 1
	switch seg.Op {
	case sfnt.SegmentOpMoveTo:
		out.Op = SegmentMoveTo
	case sfnt.SegmentOpLineTo:
		out.Op = SegmentLineTo
	case sfnt.SegmentOpQuadTo:
		out.Op, n = SegmentQuadTo, 2
	case sfnt.SegmentOpCubeTo:
		out.Op, n = SegmentCubeTo, 3
	}
	for i := range n {
		out.Points[i] = Point{
			X: ox + fixedToFloat(seg.Args[i].X),
			Y: oy + fixedToFloat(seg.Args[i].Y),
		}
	}
	return out
}

// detectScript returns the script of the first letter, Latin by default.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
