// Package heap implements an indexed binary min-heap: a priority queue
// of integer indices, keyed by a caller-supplied key function, that
// maintains an index→heap-position back-pointer so an arbitrary key can
// be decreased and the heap rebalanced in O(log n) without a linear
// search for its entry.
//
// Unlike container/heap's interface, the key is not stored inside the
// heap: Heap reads through a KeyFunc every time it compares two
// entries, so an external write to the underlying value (as the
// march loop makes to a node's jet) is picked up the next time Adjust
// is called.
package heap
