package flowgrad

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned by Generate for negative dimensions or when
// width*height*4 does not fit in an int.
var ErrInvalidSize = errors.New("flowgrad: invalid image size")

// ErrUnknownPreset is returned for a color preset name that is not registered.
var ErrUnknownPreset = errors.New("flowgrad: unknown color preset")

// ParseError reports a malformed parameter document. The generator state is
// left unchanged when it is returned.
type ParseError struct {
	Field string // offending field, empty when the document itself is malformed
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("flowgrad: failed to parse params: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("flowgrad: failed to parse params: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
