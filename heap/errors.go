package heap

import "errors"

// ErrInvariant indicates the heap's index→position back-pointer no
// longer matches the heap's own index array -- an internal bug, never
// expected to occur in normal operation.
var ErrInvariant = errors.New("heap: back-pointer invariant violated")
