package dxf

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is reported when a group value cannot be serialized,
// for example a NaN coordinate.
var ErrInvalidValue = errors.New("dxf: invalid value")

// WriteError records a failed save. No file is left at Path when it is
// returned: temporary files and already published image assets are removed.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("dxf: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
