package grid

import "github.com/larkspur-go/sjs/cubic"

// Shape is the node count (M, N) of a 2-D grid, excluding padding.
type Shape struct {
	M, N int
}

// Coord is an integer grid coordinate (i, j), 0 ≤ i < M, 0 ≤ j < N.
type Coord struct {
	I, J int
}

// NumDirections is the number of distinct neighbour directions around a
// node: the eight compass points of a 2-D stencil.
const NumDirections = 8

// NumCellVerts is the number of corners of a grid cell.
const NumCellVerts = 4

// Geometry precomputes the padded linear indexing and the four
// neighbour/cell offset tables used by the march loop and the
// line/triangle update rules. It is immutable once built by New.
type Geometry struct {
	Shape Shape
	H     float64

	// NB holds the nine neighbour offsets in the fixed counter-clockwise
	// order starting at (-1,-1); NB[8] repeats NB[0] so that modular
	// access (direction i±1) never needs an explicit wraparound branch.
	NB [NumDirections + 1]Coord
	// NBLinear is NB expressed as linear-index deltas.
	NBLinear [NumDirections + 1]int

	// TriCellLinear[i], for axial direction i, gives the linear-index
	// delta to the cell used when pairing neighbour i with either of
	// its two adjacent diagonal neighbours for a triangle update.
	TriCellLinear [NumDirections]int
	// TriVariable[i] and TriEdge[i] select which edge of that cell's
	// bicubic the triangle update restricts to.
	TriVariable [NumDirections]cubic.Variable
	TriEdge     [NumDirections]int

	// CellVertLinear holds the linear-index deltas from a cell's key
	// (its lower-left node) to its four corners, in (0,0),(1,0),(0,1),(1,1)
	// order.
	CellVertLinear [NumCellVerts]int

	// NbCellLinear holds the linear-index deltas from a node to the (up
	// to four) cells it is a corner of.
	NbCellLinear [NumCellVerts]int
}
