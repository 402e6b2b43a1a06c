package energetics

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the root of every failure the model reports.
// A bad input makes all derived quantities meaningless, so failures are
// raised before any sweep is attempted.
var ErrInvalidConfiguration = errors.New("invalid configuration")

var (
	ErrNegativeBoundaryConcentration = fmt.Errorf("%w: negative boundary concentration", ErrInvalidConfiguration)
	ErrChannelCapacityExceeded       = fmt.Errorf("%w: channel capacity exceeded", ErrInvalidConfiguration)
	ErrDegenerateGradient            = fmt.Errorf("%w: degenerate gradient", ErrInvalidConfiguration)
	ErrInvalidSweepRange             = fmt.Errorf("%w: invalid sweep range", ErrInvalidConfiguration)
)

// Error carries the offending quantity and its value.
type Error struct {
	Kind     error
	Quantity string
	Value    float64
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v (%s=%g)", e.Kind, e.Quantity, e.Value)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}
