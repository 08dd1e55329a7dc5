package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsertMaintainsFront inserts nodes with T = [5, 4, 3, 2, 1] in
// that order; after each insert the front is the current minimum.
func TestInsertMaintainsFront(t *testing.T) {
	keys := map[int]float64{0: 5, 1: 4, 2: 3, 3: 2, 4: 1}
	h := New(5, func(ind int) float64 { return keys[ind] })

	order := []int{0, 1, 2, 3, 4}
	wantFront := []int{0, 1, 2, 3, 4}
	for step, ind := range order {
		h.Insert(ind)
		front, ok := h.Front()
		require.True(t, ok, "step %d: Front() ok=false after inserting %d", step, ind)
		assert.Equal(t, wantFront[step], front, "step %d", step)
	}
}

// TestAdjustAfterExternalDecrease externally sets keys[4] = 0 and calls
// Adjust; the front becomes that node.
func TestAdjustAfterExternalDecrease(t *testing.T) {
	keys := map[int]float64{0: 5, 1: 4, 2: 3, 3: 2, 4: 1}
	h := New(5, func(ind int) float64 { return keys[ind] })
	for _, ind := range []int{0, 1, 2, 3, 4} {
		h.Insert(ind)
	}

	keys[4] = 0
	require.NoError(t, h.Adjust(4))
	front, ok := h.Front()
	require.True(t, ok)
	assert.Equal(t, 4, front)
}

// TestAdjustUnknownIndex exercises the back-pointer bounds check: Adjust
// on an index never inserted reports ErrInvariant rather than panicking.
func TestAdjustUnknownIndex(t *testing.T) {
	keys := map[int]float64{0: 1, 1: 2}
	h := New(2, func(ind int) float64 { return keys[ind] })
	h.Insert(0)
	assert.ErrorIs(t, h.Adjust(1), ErrInvariant)
}

// TestBackPointerInvariant checks that for every index currently in the
// heap, inds[position[ind]] == ind.
func TestBackPointerInvariant(t *testing.T) {
	keys := map[int]float64{}
	n := 20
	for i := 0; i < n; i++ {
		keys[i] = float64((i*37 + 11) % n)
	}
	h := New(n, func(ind int) float64 { return keys[ind] })
	for i := 0; i < n; i++ {
		h.Insert(i)
	}

	popped := make(map[int]bool, n)
	checkInvariant := func(t *testing.T) {
		t.Helper()
		for ind := 0; ind < n; ind++ {
			if popped[ind] {
				assert.False(t, h.Contains(ind), "index %d: still in heap after Pop", ind)
				continue
			}
			pos := h.position[ind]
			require.True(t, pos >= 0 && pos < len(h.inds), "index %d: position %d out of range [0,%d)", ind, pos, len(h.inds))
			assert.Equal(t, ind, h.inds[pos], "index %d: inds[position[%d]]", ind, ind)
		}
	}
	checkInvariant(t)

	// Mutate a few keys and Adjust, checking the invariant still holds.
	for _, ind := range []int{5, 12, 0, 19} {
		keys[ind] = -float64(ind)
		require.NoError(t, h.Adjust(ind))
		checkInvariant(t)
	}

	// Pop everything and confirm extraction order is non-decreasing,
	// while the invariant holds over the shrinking remainder.
	prev := -1.0
	for h.Len() > 0 {
		front, _ := h.Front()
		k := keys[front]
		assert.GreaterOrEqual(t, k, prev, "Pop order not sorted")
		prev = k
		ind, ok := h.Pop()
		require.True(t, ok, "Pop() ok=false while Len()=%d", h.Len())
		popped[ind] = true
		checkInvariant(t)
	}
}

// TestPopEmpty confirms Pop and Front report ok=false on an empty heap.
func TestPopEmpty(t *testing.T) {
	h := New(3, func(ind int) float64 { return 0 })
	_, ok := h.Front()
	assert.False(t, ok, "Front() ok=true on empty heap")
	_, ok = h.Pop()
	assert.False(t, ok, "Pop() ok=true on empty heap")
}

// TestContains tracks membership across Insert and Pop.
func TestContains(t *testing.T) {
	keys := map[int]float64{0: 1, 1: 2}
	h := New(2, func(ind int) float64 { return keys[ind] })
	assert.False(t, h.Contains(0), "Contains(0) before Insert")
	h.Insert(0)
	assert.True(t, h.Contains(0), "Contains(0) after Insert")
	h.Pop()
	assert.False(t, h.Contains(0), "Contains(0) after Pop")
}
