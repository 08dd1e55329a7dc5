// Package sjs solves the eikonal equation |∇T(x)| = s(x) on a regular
// 2-D Cartesian grid to fourth-order accuracy, using a Dijkstra-like
// single-pass marching scheme over a jet field (travel time plus its
// first and mixed second partials at every node) with bicubic Hermite
// interpolants over each grid cell.
//
// # Usage
//
// Build a Solver with New, seed it with a point source via
// AddFactoredPointSource, then either Solve the whole field or step
// through it one accepted node at a time with Step. Read results back
// with T, Gradient, Mixed, and Cell.
//
// # Complexity
//
// Each accepted node re-updates at most its eight neighbours, and each
// such update runs at most eight candidate updates (two triangle
// pairings per axial direction, falling back to a line update for any
// neighbour left unpaired) plus up to four bicubic cell refits, so the
// whole march is
// O(n log n) in the number of grid nodes, dominated by the heap
// operations and the per-update root-finding.
//
// # Options
//
// WithWarningSink installs a callback for numerical warnings (root-finder
// non-convergence); WithRootFinderMaxIter overrides the root finder's
// iteration cap. Both default to sensible values if omitted.
//
// # Errors
//
// Step and Solve return ErrNonPositiveSlowness if the slowness field
// ever returns a non-positive value, and ErrHeapInvariant if the
// internal heap's back-pointer is ever found inconsistent with its
// index array (an internal bug, not expected in normal operation).
package sjs
