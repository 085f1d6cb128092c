package dxf

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// handle is an object handle, written in upper case hexadecimal.
type handle uint64

func (h handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

// tagWriter writes group code / value pairs. The first error sticks and
// turns all later writes into no-ops.
type tagWriter struct {
	w   *bufio.Writer
	cm  *charmap.Charmap
	buf []byte
	err error
}

func newTagWriter(w io.Writer, cm *charmap.Charmap) *tagWriter {
	return &tagWriter{w: bufio.NewWriter(w), cm: cm}
}

func (t *tagWriter) raw(code int, value string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, "%3d\n%s\n", code, value)
}

func (t *tagWriter) str(code int, s string) {
	t.raw(code, t.encode(s))
}

func (t *tagWriter) int(code, v int) {
	t.raw(code, strconv.Itoa(v))
}

func (t *tagWriter) float(code int, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if t.err == nil {
			t.err = fmt.Errorf("%w: group %d is %v", ErrInvalidValue, code, v)
		}
		return
	}
	t.raw(code, formatFloat(v))
}

// point writes a 2D point using code for X and code+10 for Y.
func (t *tagWriter) point(code int, p Vec2) {
	t.float(code, p.X)
	t.float(code+10, p.Y)
}

// point3 writes a 3D point with zero elevation.
func (t *tagWriter) point3(code int, p Vec2) {
	t.point(code, p)
	t.float(code+20, 0)
}

func (t *tagWriter) handle(code int, h handle) {
	t.raw(code, h.String())
}

func (t *tagWriter) flush() error {
	if t.err != nil {
		return t.err
	}
	t.err = t.w.Flush()
	return t.err
}

// formatFloat rounds to ten decimals so that binary noise like
// 0.30000000000000004 does not reach the file.
func formatFloat(v float64) string {
	if math.Abs(v) < 1e15 {
		v = math.Round(v*1e10) / 1e10
	}
	if v == 0 {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// encode converts s to the code page. Control characters become spaces,
// runes outside the code page become \U+XXXX escapes.
func (t *tagWriter) encode(s string) string {
	t.buf = t.buf[:0]
	for _, r := range s {
		switch {
		case r == utf8.RuneError:
			t.buf = append(t.buf, '?')
		case r < 0x20 || r == 0x7f:
			t.buf = append(t.buf, ' ')
		case r < 0x80:
			t.buf = append(t.buf, byte(r))
		default:
			if b, ok := t.cm.EncodeRune(r); ok {
				t.buf = append(t.buf, b)
			} else {
				t.buf = fmt.Appendf(t.buf, `\U+%04X`, r)
			}
		}
	}
	return string(t.buf)
}
