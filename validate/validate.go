package validate

import (
	"container/heap"
	"math"

	"github.com/larkspur-go/sjs/grid"
	"github.com/larkspur-go/sjs/slowness"
)

// CoarseTravelTime computes a first-order travel time at every node of
// shape from src, under field, by Dijkstra's algorithm over the grid's
// 8-connected neighbour graph. See the package doc for what this is
// and is not good for.
func CoarseTravelTime(shape grid.Shape, h float64, field slowness.Field, src grid.Coord) (map[grid.Coord]float64, error) {
	if field == nil {
		return nil, ErrNilField
	}
	geo, err := grid.New(shape, h)
	if err != nil {
		return nil, err
	}
	if !geo.InBounds(src) {
		return nil, ErrOutOfBounds
	}

	n := geo.NumNodes()
	dist := make([]float64, n)
	visited := make([]bool, n)
	for l := range dist {
		dist[l] = math.Inf(1)
	}
	l0 := geo.Index(src)
	dist[l0] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{l: l0, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		l := item.l

		// Stale heap entry: this node was already finalized through a
		// cheaper path found after this entry was pushed.
		if visited[l] {
			continue
		}
		visited[l] = true

		for dir := 0; dir < grid.NumDirections; dir++ {
			nl := l + geo.NBLinear[dir]
			nc := geo.Coordinate(nl)
			if !geo.InBounds(nc) {
				continue
			}

			d := 1.0
			if dir%2 == 0 {
				d = math.Sqrt2
			}
			x0, y0 := geo.Position(l)
			x1, y1 := geo.Position(nl)
			w := h * d * (field.Value(x0, y0) + field.Value(x1, y1)) / 2

			nd := dist[l] + w
			if nd < dist[nl] {
				dist[nl] = nd
				heap.Push(&pq, &nodeItem{l: nl, dist: nd})
			}
		}
	}

	result := make(map[grid.Coord]float64, shape.M*shape.N)
	for i := 0; i < shape.M; i++ {
		for j := 0; j < shape.N; j++ {
			c := grid.Coord{I: i, J: j}
			result[c] = dist[geo.Index(c)]
		}
	}
	return result, nil
}

// nodeItem pairs a linear grid index with its current best-known
// distance from the source, for ordering in the priority queue.
type nodeItem struct {
	l    int
	dist float64
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending, using
// the lazy decrease-key pattern: a cheaper distance is pushed as a new
// entry rather than repositioning the stale one in place.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
