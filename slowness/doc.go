// Package slowness supplies the s(x) term of the eikonal equation
// |∇T(x)| = s(x): a callback that returns the reciprocal wave speed and
// its gradient at an arbitrary point in the plane.
//
// Field implementations are expected to be pure and cheap -- the solver
// calls Value and Gradient many times per cell during a march. Constant
// and Linear give closed-form analytic fields; NumericGradient adapts a
// value-only function into a Field by estimating the gradient with
// gonum's diff/fd package, for slowness functions that have no
// convenient analytic derivative.
package slowness
