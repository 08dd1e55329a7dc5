package sjs

import "github.com/larkspur-go/sjs/grid"

// neighbour returns the linear index of l's neighbour in direction dir
// (0..8, with 8 repeating 0 so axial triangle pairings never need an
// explicit wraparound branch).
func (s *Solver) neighbour(l, dir int) int {
	return l + s.geo.NBLinear[dir]
}

// triCell returns the linear index of the cell used to pair an axial
// direction's two triangle updates.
func (s *Solver) triCell(l, axial int) int {
	return l + s.geo.TriCellLinear[axial]
}

// cellVert returns the linear index of corner k (in (0,0),(1,0),(0,1),
// (1,1) order) of the cell keyed by lc.
func (s *Solver) cellVert(lc, k int) int {
	return lc + s.geo.CellVertLinear[k]
}

// neighbourCell returns the linear index of the k-th cell incident at
// node l.
func (s *Solver) neighbourCell(l, k int) int {
	return l + s.geo.NbCellLinear[k]
}

// cellAllValid reports whether every corner of the cell keyed by lc is
// VALID. Cells straddling the padding ring are never all-valid, since
// padding nodes never leave BOUNDARY.
func (s *Solver) cellAllValid(lc int) bool {
	for k := 0; k < grid.NumCellVerts; k++ {
		if s.states[s.cellVert(lc, k)] != Valid {
			return false
		}
	}
	return true
}

// position returns the physical (x, y) coordinate of node l.
func (s *Solver) position(l int) (x, y float64) {
	return s.geo.Position(l)
}

// sValue samples the slowness field at (x, y), recording the first
// non-positive reading as a sticky error that Step and Solve surface as
// ErrNonPositiveSlowness once the current march step finishes.
func (s *Solver) sValue(x, y float64) float64 {
	v := s.field.Value(x, y)
	if v <= 0 && s.err == nil {
		s.err = wrapNonPositiveSlowness(x, y)
	}
	return v
}
