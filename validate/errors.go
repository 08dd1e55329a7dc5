package validate

import "errors"

var (
	// ErrNilField indicates CoarseTravelTime was called without a
	// slowness field.
	ErrNilField = errors.New("validate: slowness field must not be nil")

	// ErrOutOfBounds indicates src lies outside the requested shape.
	ErrOutOfBounds = errors.New("validate: source coordinate out of bounds")
)
