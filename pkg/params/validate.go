package params

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConstant classifies every failure returned by Validate.
var ErrInvalidConstant = errors.New("invalid constant")

// Error reports the offending field and its value.
type Error struct {
	Field  string
	Value  float64
	Reason string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *Error) Unwrap() error { return ErrInvalidConstant }

// Validate checks signs and ordering. It returns the first violation.
func (c Constants) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"cell_radius", c.CellRadius},
		{"diffusivity", c.Diffusivity},
		{"calcification_flux", c.CalcificationFlux},
		{"ca_out", c.CaOut},
		{"ca_in", c.CaIn},
		{"channel_current", c.ChannelCurrent},
		{"channel_density", c.ChannelDensity},
		{"avogadro", c.Avogadro},
		{"atp_per_ca", c.ATPPerCa},
	}
	for _, p := range positive {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return &Error{Field: p.field, Value: p.value, Reason: "must be finite"}
		}
		if p.value <= 0 {
			return &Error{Field: p.field, Value: p.value, Reason: "must be positive"}
		}
	}

	// ca_out > ca_in is left to the model, which reports it as a degenerate gradient.

	if c.VesicleCa < 0 {
		return &Error{Field: "vesicle_ca", Value: c.VesicleCa, Reason: "must not be negative"}
	}
	if c.ReferenceSplit < 0 || c.ReferenceSplit >= 1 {
		return &Error{Field: "reference_split", Value: c.ReferenceSplit, Reason: "must lie in [0,1)"}
	}
	return nil
}
