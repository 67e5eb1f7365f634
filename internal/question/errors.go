package question

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when the file extension has no loader.
var ErrUnsupportedFormat = errors.New("unsupported question-set format")

// LoadError reports a question set that could not be read or decoded.
// A LoadError is fatal at startup.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load question set %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
