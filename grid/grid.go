package grid

import "github.com/larkspur-go/sjs/cubic"

// baseOffsets is the fixed counter-clockwise neighbour ordering starting
// at the (-1,-1) corner, with index 8 repeating index 0.
var baseOffsets = [NumDirections + 1]Coord{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// triCellOffsets gives, for each axial direction, the cell consulted by
// the triangle update paired with that direction.
var triCellOffsets = [NumDirections]Coord{
	{-2, -1}, {-2, 0}, {-1, 1}, {0, 1}, {1, 0}, {1, -1}, {0, -2}, {-1, -2},
}

// triVariables and triEdges are indexed by the axial direction used for
// a triangle update (only odd indices are ever consulted).
var triVariables = [NumDirections]cubic.Variable{
	cubic.Mu, cubic.Mu, cubic.Lambda, cubic.Lambda,
	cubic.Mu, cubic.Mu, cubic.Lambda, cubic.Lambda,
}
var triEdges = [NumDirections]int{1, 1, 0, 0, 0, 0, 1, 1}

// cellVertOffsets is the {(0,0),(1,0),(0,1),(1,1)} corner layout of a cell.
var cellVertOffsets = [NumCellVerts]Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// nbCellOffsets gives the four cells incident to a node, keyed by each
// cell's lower-left corner relative to the node: the cell to the node's
// lower-left, lower-right, upper-left, and upper-right.
//
// A naive port of this table is prone to repeating one offset and
// omitting {0,0}, leaving the node's own lower-left cell unreachable;
// this lists the four cells a node can actually be a corner of.
var nbCellOffsets = [NumCellVerts]Coord{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}}

// New builds the padded-index Geometry for a shape/step pair.
func New(shape Shape, h float64) (*Geometry, error) {
	if shape.M <= 0 || shape.N <= 0 {
		return nil, ErrBadShape
	}
	if h <= 0 {
		return nil, ErrBadStep
	}

	g := &Geometry{Shape: shape, H: h}
	g.NB = baseOffsets
	for i, c := range baseOffsets {
		g.NBLinear[i] = g.linearDelta(c)
	}
	for i, c := range triCellOffsets {
		g.TriCellLinear[i] = g.linearDelta(c)
	}
	g.TriVariable = triVariables
	g.TriEdge = triEdges
	for i, c := range cellVertOffsets {
		g.CellVertLinear[i] = g.linearDelta(c)
	}
	for i, c := range nbCellOffsets {
		g.NbCellLinear[i] = g.linearDelta(c)
	}

	return g, nil
}

// stride is the row length of the padded linear array: M+2.
func (g *Geometry) stride() int {
	return g.Shape.M + 2
}

// NumNodes returns (M+2)(N+2), the padded node-array size.
func (g *Geometry) NumNodes() int {
	return g.stride() * (g.Shape.N + 2)
}

// Index maps a grid coordinate to its padded linear index
// L(i,j) = (M+2)(j+1) + (i+1).
func (g *Geometry) Index(c Coord) int {
	return g.stride()*(c.J+1) + (c.I + 1)
}

// linearDelta computes the linear-index delta for an (Δi, Δj) offset.
// Because the padded index is affine in (i, j), offsets compose by
// simple addition regardless of the base coordinate.
func (g *Geometry) linearDelta(c Coord) int {
	return g.stride()*c.J + c.I
}

// Coordinate inverts Index, recovering (i, j) from a padded linear index.
func (g *Geometry) Coordinate(l int) Coord {
	s := g.stride()
	return Coord{I: l%s - 1, J: l/s - 1}
}

// InBounds reports whether c lies within [0,M)×[0,N).
func (g *Geometry) InBounds(c Coord) bool {
	return c.I >= 0 && c.I < g.Shape.M && c.J >= 0 && c.J < g.Shape.N
}

// Position returns the physical (x, y) coordinate of node l: (i·h, j·h).
func (g *Geometry) Position(l int) (x, y float64) {
	c := g.Coordinate(l)
	return float64(c.I) * g.H, float64(c.J) * g.H
}
