package cubic

import "errors"

// ErrIndexOutOfBounds indicates a row or column index outside [0,4).
var ErrIndexOutOfBounds = errors.New("cubic: index out of bounds")
