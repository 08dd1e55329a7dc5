package heap

// KeyFunc returns the current priority key for index ind. The heap
// calls it on every comparison rather than caching the value, so a
// caller that mutates the value ind keys off of must call Adjust
// afterwards to restore the heap invariant.
type KeyFunc func(ind int) float64

// notInHeap marks an index absent from position.
const notInHeap = -1

// Heap is a binary min-heap over integer indices in [0, universe),
// keyed externally by KeyFunc and ordered so that Front always returns
// the index with the smallest current key.
//
// inds holds the heap in array form; position is its mirror,
// position[inds[pos]] == pos for every occupied heap slot. The two are
// kept consistent on every swap, which is what lets Adjust relocate an
// arbitrary index without a linear scan.
type Heap struct {
	inds     []int
	position []int
	key      KeyFunc
}
