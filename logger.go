package ggdxf

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg-dxf/dxf"
)

// nopHandler discards all records. Enabled returns false so that callers
// skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures logging for ggdxf and its sub-packages. By default
// nothing is logged. Pass nil to silence logging again.
//
// Levels used:
//   - [slog.LevelDebug]: flattening and clipping details, discarded paths
//   - [slog.LevelInfo]: documents written to disk
//   - [slog.LevelWarn]: skipped or approximated primitives
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	dxf.SetLogger(l)
}

// Logger returns the current logger. The recording package logs through
// it as well.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
