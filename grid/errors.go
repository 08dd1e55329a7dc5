package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrBadShape indicates a shape with a non-positive dimension.
	ErrBadShape = errors.New("grid: shape dimensions must be > 0")
	// ErrBadStep indicates a non-positive step size.
	ErrBadStep = errors.New("grid: step h must be > 0")
)
