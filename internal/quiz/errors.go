package quiz

import (
	"errors"
	"fmt"
)

// Validation conditions. They are recoverable: the caller prompts the user
// to retry and the session is left untouched.
var (
	ErrNoSelection      = errors.New("no option selected")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// ErrInvalidState matches every *StateError through errors.Is.
var ErrInvalidState = errors.New("operation not allowed in current state")

// StateError reports an operation invoked outside the state that allows
// it. It signals an integration bug in the caller, not bad user input.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: not allowed in state %s", e.Op, e.State)
}

func (e *StateError) Is(target error) bool { return target == ErrInvalidState }

// IsValidation reports whether err is a recoverable input-validation
// condition.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoSelection) || errors.Is(err, ErrOptionOutOfRange)
}
