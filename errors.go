package ggdxf

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalState is returned by every mutating call after Finalize.
	ErrIllegalState = errors.New("ggdxf: adapter already finalized")

	// ErrUnknownFormat is returned when no registered format matches the
	// output file name.
	ErrUnknownFormat = errors.New("ggdxf: unknown output format")
)

// UnsupportedPrimitiveError reports a primitive the adapter cannot
// translate. Render logs it and continues with the next primitive.
type UnsupportedPrimitiveError struct {
	Primitive Primitive
}

func (e *UnsupportedPrimitiveError) Error() string {
	if e.Primitive == nil {
		return "ggdxf: unsupported primitive <nil>"
	}
	return fmt.Sprintf("ggdxf: unsupported primitive %T", e.Primitive)
}
