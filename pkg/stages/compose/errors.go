package compose

import (
	"errors"
	"fmt"
)

// ErrDecode is wrapped by every ProcessingError raised while decoding a source image.
var ErrDecode = errors.New("compose: cannot decode image")

// Op names the step of composition that failed.
type Op string

const (
	OpRead   Op = "read"
	OpDecode Op = "decode"
	OpResize Op = "resize"
	OpEncode Op = "encode"
	OpWrite  Op = "write"
)

// ProcessingError reports a failure to compose a single screenshot.
// It is terminal for that file only.
type ProcessingError struct {
	Path string
	Op   Op
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
