package search

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Manhattan returns the L1 distance between two cells of gg. It is admissible
// and consistent for unit-cost Conn4 grids.
func Manhattan(gg *gridgraph.GridGraph) Heuristic {
	return func(v, goal int) int64 {
		vr, vc := gg.Coordinate(v)
		gr, gc := gg.Coordinate(goal)
		return int64(abs(vr-gr) + abs(vc-gc))
	}
}

// Chebyshev returns the L∞ distance between two cells of gg. It is the exact
// obstacle-free cost on a unit-cost Conn8 grid, where Manhattan would
// overestimate diagonal moves.
func Chebyshev(gg *gridgraph.GridGraph) Heuristic {
	return func(v, goal int) int64 {
		vr, vc := gg.Coordinate(v)
		gr, gc := gg.Coordinate(goal)
		return int64(max(abs(vr-gr), abs(vc-gc)))
	}
}

// Euclidean returns the floored straight-line distance between the centres of
// two cells, measured in the plane with x = col and y = row. It never exceeds
// Manhattan, so it is admissible on Conn4 grids, but it overestimates on
// Conn8 grids and must not be used there.
func Euclidean(gg *gridgraph.GridGraph) Heuristic {
	return func(v, goal int) int64 {
		return int64(math.Floor(planar.Distance(cellPoint(gg, v), cellPoint(gg, goal))))
	}
}

// ForGrid picks the strongest admissible heuristic for gg's connectivity:
// Manhattan under Conn4, Chebyshev under Conn8.
func ForGrid(gg *gridgraph.GridGraph) Heuristic {
	if gg.Conn == gridgraph.Conn8 {
		return Chebyshev(gg)
	}
	return Manhattan(gg)
}

// cellPoint places vertex v at its (col, row) centre.
func cellPoint(gg *gridgraph.GridGraph, v int) orb.Point {
	r, c := gg.Coordinate(v)
	return orb.Point{float64(c), float64(r)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
