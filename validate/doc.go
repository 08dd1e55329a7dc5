// Package validate computes an independent, low-order reference travel
// time for cross-checking the fourth-order Solver in sjs.
//
// CoarseTravelTime runs a textbook Dijkstra over the same 8-connected
// grid the Solver marches on, weighting each edge by the straight-line
// travel cost h·d·(s(u)+s(v))/2 -- the same formula sjs's own line
// update applies, but with no triangle update, no Hermite
// interpolation, and no factored-source correction. Its output
// converges to the true travel time only at first order in h, so it is
// not a replacement for sjs.Solver; it exists as an independent
// reference that the Solver's field can be compared against, to O(h).
//
// Complexity:
//
//   - Time:  O(N log N), N = number of grid nodes.
//   - Space: O(N).
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: a cheaper distance for a node already in the
//     heap is pushed again rather than repositioned in place; stale
//     entries are discarded on pop once the node is visited.
package validate
