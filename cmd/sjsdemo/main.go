// Command sjsdemo solves the eikonal equation on a rectangular grid
// from the command line and prints the travel time along a requested
// row.
//
// Usage:
//
//	sjsdemo -m 51 -n 51 -h 0.02 -src-i 25 -src-j 25 -slope-x 0 -slope-y 0 -row 25
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/larkspur-go/sjs/grid"
	"github.com/larkspur-go/sjs/sjs"
	"github.com/larkspur-go/sjs/slowness"
)

func main() {
	m := flag.Int("m", 51, "grid width (number of nodes)")
	n := flag.Int("n", 51, "grid height (number of nodes)")
	h := flag.Float64("h", 1.0/50, "grid step size")
	base := flag.Float64("slowness", 1.0, "base slowness s0, for s(x,y) = s0 + slopeX·x + slopeY·y")
	slopeX := flag.Float64("slope-x", 0, "slowness gradient along x")
	slopeY := flag.Float64("slope-y", 0, "slowness gradient along y")
	srcI := flag.Int("src-i", -1, "source node row index (default: grid centre)")
	srcJ := flag.Int("src-j", -1, "source node column index (default: grid centre)")
	factorRadius := flag.Float64("factor-radius", 0.1, "normalised radius of the factored region around the source")
	row := flag.Int("row", -1, "print travel time along this row (default: the source's row)")
	flag.Parse()

	if *srcI < 0 {
		*srcI = *m / 2
	}
	if *srcJ < 0 {
		*srcJ = *n / 2
	}
	if *row < 0 {
		*row = *srcI
	}

	field := slowness.Linear(*base, *slopeX, *slopeY)
	solver, err := sjs.New(grid.Shape{M: *m, N: *n}, *h, field)
	if err != nil {
		log.Fatalf("sjsdemo: %v", err)
	}

	src := grid.Coord{I: *srcI, J: *srcJ}
	if err := solver.AddFactoredPointSource(src, *factorRadius); err != nil {
		log.Fatalf("sjsdemo: %v", err)
	}
	if err := solver.Solve(); err != nil {
		log.Fatalf("sjsdemo: %v", err)
	}

	fmt.Printf("solved %dx%d grid, h=%g, source=(%d,%d)\n", *m, *n, *h, *srcI, *srcJ)
	fmt.Println("j\tT(row,j)")
	for j := 0; j < *n; j++ {
		t, err := solver.T(grid.Coord{I: *row, J: j})
		if err != nil {
			log.Fatalf("sjsdemo: %v", err)
		}
		fmt.Printf("%d\t%.6f\n", j, t)
	}
}
