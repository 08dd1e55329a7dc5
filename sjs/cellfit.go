package sjs

import (
	"gonum.org/v1/gonum/floats"

	"github.com/larkspur-go/sjs/cubic"
	"github.com/larkspur-go/sjs/grid"
)

// cornerLam and cornerMu locate each of a cell's four corners, in
// cellVert order, in the frame used to interpolate the bilinear fxy
// estimate: the midpoints of the bottom, right, left and top edges
// (where estimateFxyAtCorner's four finite differences sit) are that
// frame's (0,0), (1,0), (0,1) and (1,1).
var cornerLam = [grid.NumCellVerts]float64{-0.5, 0.5, 0.5, 1.5}
var cornerMu = [grid.NumCellVerts]float64{0.5, -0.5, 1.5, 0.5}

// refitCell rebuilds the bicubic at lc from its four corner jets.
func (s *Solver) refitCell(lc int) {
	var j [grid.NumCellVerts]*Jet
	for k := 0; k < grid.NumCellVerts; k++ {
		j[k] = &s.jets[s.cellVert(lc, k)]
	}
	// Jets are in physical units; the datum takes cell-local (λ, μ)
	// derivatives, so first derivatives scale by h and fxy by h².
	h := s.geo.H
	hh := h * h
	d := cubic.Datum{
		{j[0].F, j[2].F, h * j[0].Fy, h * j[2].Fy},
		{j[1].F, j[3].F, h * j[1].Fy, h * j[3].Fy},
		{h * j[0].Fx, h * j[2].Fx, hh * j[0].Fxy, hh * j[2].Fxy},
		{h * j[1].Fx, h * j[3].Fx, hh * j[1].Fxy, hh * j[3].Fxy},
	}
	s.cells[lc] = cubic.Fit(d)
}

// estimateFxyAtCorner estimates fxy at the corner of cell lc that sits
// at index cornerIdx, from a bilinear combination of the cell's four
// edge-wise finite differences of its corner first derivatives.
func (s *Solver) estimateFxyAtCorner(lc, cornerIdx int) float64 {
	var fx, fy [grid.NumCellVerts]float64
	for k := 0; k < grid.NumCellVerts; k++ {
		j := &s.jets[s.cellVert(lc, k)]
		fx[k] = j.Fx
		fy[k] = j.Fy
	}
	h := s.geo.H
	edges := [grid.NumCellVerts]float64{
		(fy[1] - fy[0]) / h, // bottom
		(fx[3] - fx[1]) / h, // right
		(fx[2] - fx[0]) / h, // left
		(fy[3] - fy[2]) / h, // top
	}
	lam, mu := cornerLam[cornerIdx], cornerMu[cornerIdx]
	return (1-mu)*((1-lam)*edges[0]+lam*edges[1]) + mu*((1-lam)*edges[2]+lam*edges[3])
}

// estimateFxyAt estimates fxy for node l using the cell keyed by lc,
// one of l's (up to four) incident cells.
func (s *Solver) estimateFxyAt(l, lc int) float64 {
	cornerIdx := 0
	for k := 0; k < grid.NumCellVerts; k++ {
		if s.cellVert(lc, k) == l {
			cornerIdx = k
			break
		}
	}
	return s.estimateFxyAtCorner(lc, cornerIdx)
}

// updateAdjacentCells estimates l's fxy by averaging the per-cell fxy
// estimate over l's VALID incident cells only (cells with a non-VALID
// corner contribute nothing, rather than diluting the average with an
// estimate built from stale or zero jets), then refits each fully-VALID
// incident cell's bicubic.
func (s *Solver) updateAdjacentCells(l int) {
	var lc [grid.NumCellVerts]int
	var valid [grid.NumCellVerts]bool
	nValid := 0
	for k := 0; k < grid.NumCellVerts; k++ {
		lc[k] = s.neighbourCell(l, k)
		valid[k] = s.cellAllValid(lc[k])
		if valid[k] {
			nValid++
		}
	}

	if nValid > 0 {
		estimates := make([]float64, 0, grid.NumCellVerts)
		for k := 0; k < grid.NumCellVerts; k++ {
			if valid[k] {
				estimates = append(estimates, s.estimateFxyAt(l, lc[k]))
			}
		}
		s.jets[l].Fxy = floats.Sum(estimates) / float64(nValid)
	}

	for k := 0; k < grid.NumCellVerts; k++ {
		if valid[k] {
			s.refitCell(lc[k])
		}
	}
}
