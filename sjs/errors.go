package sjs

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveSlowness indicates the slowness field returned a
	// value <= 0, which is not physically valid: s(x) is a reciprocal
	// wave speed and must be strictly positive everywhere it is
	// sampled.
	ErrNonPositiveSlowness = errors.New("sjs: slowness field returned a non-positive value")

	// ErrHeapInvariant indicates the solver's internal heap back-pointer
	// no longer matches the heap's index array -- an internal bug, never
	// expected to occur in normal operation.
	ErrHeapInvariant = errors.New("sjs: heap back-pointer invariant violated")

	// ErrNilField indicates New was called without a slowness field.
	ErrNilField = errors.New("sjs: slowness field must not be nil")

	// ErrOutOfBounds indicates a coordinate lies outside the solver's
	// grid shape.
	ErrOutOfBounds = errors.New("sjs: coordinate out of bounds")
)

// wrapNonPositiveSlowness wraps ErrNonPositiveSlowness with the
// offending physical position.
func wrapNonPositiveSlowness(x, y float64) error {
	return fmt.Errorf("%w: at (%g, %g)", ErrNonPositiveSlowness, x, y)
}
