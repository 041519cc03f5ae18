package surface

import (
	"errors"
	"fmt"
)

// Domain errors for input parsing and evaluation.
var (
	// ErrUnknownVariant indicates a function label outside the fixed set.
	ErrUnknownVariant = errors.New("surface: unknown function variant")

	// ErrOutOfRange indicates a sample point outside [-2, 2] x [-2, 2].
	ErrOutOfRange = errors.New("surface: point outside [-2, 2] x [-2, 2]")
)

// InputError wraps a domain error with the input that caused it.
type InputError struct {
	Input   string
	Wrapped error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s (got %s)", e.Wrapped.Error(), e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}
