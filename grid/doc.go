// Package grid provides the padded-linear-index geometry shared by the
// eikonal marching solver: node addressing, and the four precomputed
// neighbour/cell offset tables the march loop and the update rules walk
// every iteration.
//
// Nodes live on a (M, N) shape with uniform step h, addressed by integer
// coordinates (i, j), 0 ≤ i < M, 0 ≤ j < N. Storage is a padded linear
// array of (M+2)(N+2) entries; the one-node pad in every direction lets
// neighbour offsets be applied unconditionally, without a bounds check
// on every lookup.
package grid
