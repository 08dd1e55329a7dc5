// Package cubic implements the 1-D cubic and 2-D Hermite bicubic
// polynomials the eikonal solver uses as its per-cell interpolant.
//
// A Cubic is four coefficients evaluated by Horner's method. A Bicubic
// stores a 4×4 coefficient matrix A such that the cell-local interpolant
// is p(λ, μ) = Σ A[α][β] λ^α μ^β over (λ, μ) ∈ [0,1]². Fit recovers A
// from a 4×4 corner datum of (f, fx, fy, fxy) values via the fixed
// Hermite transfer matrix V⁻¹; Restrict projects a Bicubic onto one
// edge, returning the Cubic that lives on it.
package cubic
