package sjs

import (
	"fmt"
	"math"

	"github.com/larkspur-go/sjs/cubic"
	"github.com/larkspur-go/sjs/grid"
	"github.com/larkspur-go/sjs/heap"
	"github.com/larkspur-go/sjs/slowness"
)

// Solver owns the full eikonal march: the per-node jets, states, and
// factoring parents, the per-cell bicubics, and the indexed heap
// driving acceptance order. All arrays are allocated once at New for
// (M+2)(N+2) nodes; Go's garbage collector reclaims them when the
// Solver is dropped, so there is no explicit Teardown method.
//
// A Solver is single-shot and not safe for concurrent use: callers must
// not reenter Step or Solve, and must not mutate the grid shape or
// slowness field after New.
type Solver struct {
	geo   *grid.Geometry
	field slowness.Field
	opts  Options

	jets   []Jet
	states []State
	parent []int
	cells  []cubic.Bicubic
	heap   *heap.Heap

	err error
}

// New allocates a Solver for shape at step h, driven by field. Every
// node starts FAR (or BOUNDARY, for the single ring of padding nodes).
func New(shape grid.Shape, h float64, field slowness.Field, opts ...Option) (*Solver, error) {
	if field == nil {
		return nil, ErrNilField
	}
	geo, err := grid.New(shape, h)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := geo.NumNodes()
	s := &Solver{
		geo:    geo,
		field:  field,
		opts:   o,
		jets:   make([]Jet, n),
		states: make([]State, n),
		parent: make([]int, n),
		cells:  make([]cubic.Bicubic, n),
	}
	for l := 0; l < n; l++ {
		if geo.InBounds(geo.Coordinate(l)) {
			s.states[l] = Far
		} else {
			s.states[l] = Boundary
		}
		s.parent[l] = Unfactored
		// A FAR node's travel time is conceptually +∞ until some update
		// relaxes it; every candidate update compares its trial T against
		// J[l].F and only ever decreases it, so the starting value must be
		// larger than any reachable travel time.
		s.jets[l].F = math.Inf(1)
	}
	s.heap = heap.New(n, func(ind int) float64 { return s.jets[ind].F })

	return s, nil
}

// AddFactoredPointSource seeds the march at src: J[src] is zeroed,
// src becomes TRIAL, and it is inserted into the heap. Every node
// within normalised radius r0 of src (distance measured as a fraction
// of the grid's extent in each dimension) has its parent set to src's
// linear index, marking the factored region; all others are marked
// Unfactored.
func (s *Solver) AddFactoredPointSource(src grid.Coord, r0 float64) error {
	if !s.geo.InBounds(src) {
		return ErrOutOfBounds
	}

	l0 := s.geo.Index(src)
	m, n := s.geo.Shape.M, s.geo.Shape.N
	for i := 0; i < m; i++ {
		x := float64(i-src.I) / float64(m-1)
		for j := 0; j < n; j++ {
			y := float64(j-src.J) / float64(n-1)
			l := s.geo.Index(grid.Coord{I: i, J: j})
			if math.Hypot(x, y) <= r0 {
				s.parent[l] = l0
			} else {
				s.parent[l] = Unfactored
			}
		}
	}

	s.jets[l0] = Jet{}
	s.states[l0] = Trial
	s.heap.Insert(l0)
	return nil
}

// Step pops the smallest-T TRIAL node, freezes it VALID, promotes its
// FAR neighbours to TRIAL, and re-updates every TRIAL neighbour -- the
// two passes are required so a neighbour newly promoted in the first
// pass can still participate in a triangle pairing for its peers in the
// second. It is a no-op if the heap is empty.
func (s *Solver) Step() error {
	l0, ok := s.heap.Pop()
	if !ok {
		return nil
	}
	s.states[l0] = Valid

	for i := 0; i < grid.NumDirections; i++ {
		n := s.neighbour(l0, i)
		if s.states[n] == Far {
			s.states[n] = Trial
			s.heap.Insert(n)
		}
	}

	for i := 0; i < grid.NumDirections; i++ {
		n := s.neighbour(l0, i)
		if s.states[n] != Trial {
			continue
		}
		if s.update(n) {
			s.updateAdjacentCells(n)
		}
		if err := s.heap.Adjust(n); err != nil {
			return fmt.Errorf("%w: node %d", ErrHeapInvariant, n)
		}
	}

	return s.err
}

// Solve runs Step to completion. Calling Solve again on an already-solved
// field is a no-op, since the heap is already empty.
func (s *Solver) Solve() error {
	for s.heap.Len() > 0 {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// T returns the travel time at c.
func (s *Solver) T(c grid.Coord) (float64, error) {
	if !s.geo.InBounds(c) {
		return 0, ErrOutOfBounds
	}
	return s.jets[s.geo.Index(c)].F, nil
}

// Gradient returns (∂T/∂x, ∂T/∂y) at c.
func (s *Solver) Gradient(c grid.Coord) (dx, dy float64, err error) {
	if !s.geo.InBounds(c) {
		return 0, 0, ErrOutOfBounds
	}
	j := s.jets[s.geo.Index(c)]
	return j.Fx, j.Fy, nil
}

// Mixed returns ∂²T/∂x∂y at c.
func (s *Solver) Mixed(c grid.Coord) (float64, error) {
	if !s.geo.InBounds(c) {
		return 0, ErrOutOfBounds
	}
	return s.jets[s.geo.Index(c)].Fxy, nil
}

// NodeState returns c's current State.
func (s *Solver) NodeState(c grid.Coord) (State, error) {
	if !s.geo.InBounds(c) {
		return Boundary, ErrOutOfBounds
	}
	return s.states[s.geo.Index(c)], nil
}

// Cell returns the bicubic whose lower-left corner is the node at
// (i, j). i and j may each be as low as -1, addressing one of the
// (M+1)(N+1) cells that share a corner with the padding ring.
func (s *Solver) Cell(i, j int) (*cubic.Bicubic, error) {
	if i < -1 || i > s.geo.Shape.M-1 || j < -1 || j > s.geo.Shape.N-1 {
		return nil, ErrOutOfBounds
	}
	lc := s.geo.Index(grid.Coord{I: i, J: j})
	return &s.cells[lc], nil
}

// warn reports w through the configured warning sink, if any.
func (s *Solver) warn(w Warning) {
	if s.opts.warnSink != nil {
		s.opts.warnSink(w)
	}
}
