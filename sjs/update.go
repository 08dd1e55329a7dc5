package sjs

import (
	"math"

	"github.com/larkspur-go/sjs/cubic"
	"github.com/larkspur-go/sjs/grid"
)

// rootEPS is the root finder's convergence tolerance, matching the
// reference implementation's EPS.
const rootEPS = 1e-13

func sgn(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// brentRoot finds λ ∈ [0,1] with df(λ) ≈ 0 by a secant step bounded and
// bisected whenever it would leave the current bracket or shrink too
// slowly. Pre-bracketing handles the common cases directly: if either
// endpoint is already within rootEPS of a root, or if df has the same
// sign at both endpoints (F is monotone on [0,1]), λ is that endpoint.
//
// converged is false if maxIter iterations pass without the bracket
// shrinking below rootEPS; the caller should treat the returned λ as
// the best endpoint seen and report a Warning, per invariant: later
// updates only ever improve on a suboptimal T.
func brentRoot(df func(lam float64) float64, maxIter int) (lam float64, converged bool) {
	fa := df(0)
	if math.Abs(fa) <= rootEPS {
		return 0, true
	}
	fb := df(1)
	if math.Abs(fb) <= rootEPS {
		return 1, true
	}
	if sgn(fa) == sgn(fb) {
		if sgn(fa) == 1 {
			return 0, true
		}
		return 1, true
	}

	a, b := 0.0, 1.0
	c, fc := a, fa

	for iter := 0; ; iter++ {
		if math.Abs(fc) < math.Abs(fb) {
			oldB, oldFb := b, fb
			b, fb = c, fc
			c, fc = oldB, oldFb
			a, fa = c, fc
		}
		if math.Abs(b-c) <= rootEPS {
			return (b + c) / 2, true
		}
		if iter >= maxIter {
			if math.Abs(fb) <= math.Abs(fc) {
				return b, false
			}
			return c, false
		}

		dm := (c - b) / 2
		denom := fa - fb
		var ds float64
		if denom == 0 {
			ds = dm
		} else {
			ds = -fb * (a - b) / denom
		}
		var dd float64
		if sgn(ds) != sgn(dm) || math.Abs(ds) > math.Abs(dm) {
			dd = dm
		} else {
			dd = ds
		}
		if math.Abs(dd) < rootEPS {
			dd = rootEPS * float64(sgn(dm)) / 2
		}

		d := b + dd
		fd := df(d)
		if fd == 0 {
			return d, true
		}
		a, fa = b, fb
		b, fb = d, fd
		if sgn(fb) == sgn(fc) {
			c, fc = a, fa
		}
	}
}

// triXY linearly interpolates between two neighbour positions at
// parameter λ ∈ [0,1].
func triXY(x0, y0, x1, y1, lam float64) (x, y float64) {
	return (1-lam)*x0 + lam*x1, (1-lam)*y0 + lam*y1
}

// triangleF evaluates F(λ) = p_e(λ) + h·s(x(λ))·√(1+λ²), the
// functional a triangle update minimises.
func (s *Solver) triangleF(edge cubic.Cubic, x0, y0, x1, y1, lam float64) float64 {
	xl, yl := triXY(x0, y0, x1, y1, lam)
	t := edge.Eval(lam)
	sv := s.sValue(xl, yl)
	l := math.Sqrt(1 + lam*lam)
	return t + s.geo.H*sv*l
}

// triangleDF evaluates dF/dλ.
func (s *Solver) triangleDF(edge cubic.Cubic, v cubic.Variable, x0, y0, x1, y1, lam float64) float64 {
	xl, yl := triXY(x0, y0, x1, y1, lam)
	sv := s.sValue(xl, yl)
	dsx, dsy := s.field.Gradient(xl, yl)
	// Chain rule through x(λ): the edge runs along y for Mu and along x
	// for Lambda, so only one component of (x1-x0, y1-y0) is non-zero.
	dsDlam := dsy * (y1 - y0)
	if v == cubic.Lambda {
		dsDlam = dsx * (x1 - x0)
	}
	dTdlam := edge.Deriv(lam)
	l := math.Sqrt(1 + lam*lam)
	dLdlam := lam / l
	return dTdlam + s.geo.H*(dsDlam*l+sv*dLdlam)
}

// triangleUpdate minimises F(λ) over the edge of the cell paired with
// axial direction axial between VALID neighbours l0 and l1, and writes
// the result to l's jet if it improves on the current T. It returns
// true iff it wrote.
func (s *Solver) triangleUpdate(l, l0, l1, axial int) bool {
	lc := s.triCell(l, axial)
	v := s.geo.TriVariable[axial]
	edge := s.cells[lc].Restrict(v, s.geo.TriEdge[axial])

	x0, y0 := s.position(l0)
	x1, y1 := s.position(l1)

	lam, converged := brentRoot(func(lam float64) float64 {
		return s.triangleDF(edge, v, x0, y0, x1, y1, lam)
	}, s.opts.rootFinderMaxIter)

	xl, yl := s.position(l)
	if !converged {
		s.warn(Warning{X: xl, Y: yl, Message: "triangle update root finder failed to converge"})
	}

	t := s.triangleF(edge, x0, y0, x1, y1, lam)
	if t >= s.jets[l].F {
		return false
	}

	xLam, yLam := triXY(x0, y0, x1, y1, lam)
	sAtL := s.sValue(xl, yl)
	L := math.Sqrt(1 + lam*lam)

	s.jets[l].F = t
	s.jets[l].Fx = sAtL * (xl - xLam) / L
	s.jets[l].Fy = sAtL * (yl - yLam) / L
	return true
}

// lineUpdate computes the straight-line candidate travel time at l from
// its VALID neighbour l0 in direction dir, and writes it if it improves
// on the current T. It returns true iff it wrote.
func (s *Solver) lineUpdate(l, l0, dir int) bool {
	d := 1.0
	if dir%2 == 0 {
		d = math.Sqrt2
	}

	xl, yl := s.position(l)
	x0, y0 := s.position(l0)
	sl := s.sValue(xl, yl)
	sl0 := s.sValue(x0, y0)
	t0 := s.jets[l0].F
	t := t0 + s.geo.H*d*(sl+sl0)/2

	if t >= s.jets[l].F {
		return false
	}

	offset := s.geo.NB[dir]
	s.jets[l].F = t
	s.jets[l].Fx = sl * float64(offset.I) / d
	s.jets[l].Fy = sl * float64(offset.J) / d
	return true
}

// update walks l's eight neighbour directions, running a triangle
// update for each axial VALID neighbour paired with either of its two
// adjacent diagonals, then a line update for any VALID neighbour left
// unpaired. It returns true iff any update wrote to l's jet.
func (s *Solver) update(l int) bool {
	var usedByTriangle [grid.NumDirections]bool
	updated := false

	for i := 1; i < grid.NumDirections; i += 2 {
		l0 := s.neighbour(l, i)
		if s.states[l0] != Valid {
			continue
		}
		if l1 := s.neighbour(l, i-1); s.states[l1] == Valid {
			if s.triangleUpdate(l, l0, l1, i) {
				updated = true
			}
			usedByTriangle[i] = true
			usedByTriangle[i-1] = true
		}
		if l1 := s.neighbour(l, i+1); s.states[l1] == Valid {
			if s.triangleUpdate(l, l0, l1, i) {
				updated = true
			}
			usedByTriangle[i] = true
			usedByTriangle[(i+1)%grid.NumDirections] = true
		}
	}

	for i := 0; i < grid.NumDirections; i++ {
		if usedByTriangle[i] {
			continue
		}
		l0 := s.neighbour(l, i)
		if s.states[l0] == Valid {
			if s.lineUpdate(l, l0, i) {
				updated = true
			}
		}
	}

	return updated
}
