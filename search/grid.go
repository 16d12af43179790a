package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Algorithm selects how Grid orders its frontier.
type Algorithm int

const (
	// Dijkstra expands by cost from the start only (h ≡ 0).
	Dijkstra Algorithm = iota
	// AStar adds the grid's admissible heuristic (see ForGrid).
	AStar
)

func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts "dijkstra", "astar" or "a*" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// GridResult is a Result expressed in grid coordinates.
type GridResult struct {
	Result

	Algorithm   Algorithm
	Start, Goal gridgraph.Cell

	// Cells is Result.Path as coordinates, start first; empty when not found.
	Cells []gridgraph.Cell
	// Visited is Result.Order as coordinates (only with WithOrder).
	Visited []gridgraph.Cell
}

// Grid searches gg from start to goal with the chosen algorithm.
//
// Start and goal must be in bounds and free (gridgraph.ErrOutOfBounds,
// gridgraph.ErrBlockedCell); they are checked before anything else happens.
// The heuristic for AStar is ForGrid(gg).
func Grid(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, algo Algorithm, opts ...Option) (GridResult, error) {
	if gg == nil {
		return GridResult{}, ErrNilGraph
	}
	for _, c := range []gridgraph.Cell{start, goal} {
		if err := gg.ValidateEndpoint(c); err != nil {
			return GridResult{}, err
		}
	}

	var h Heuristic
	switch algo {
	case Dijkstra:
		h = Zero
	case AStar:
		h = ForGrid(gg)
	default:
		return GridResult{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	res, err := Search(gg, gg.Index(start), gg.Index(goal), h, opts...)
	if err != nil {
		return GridResult{}, err
	}

	return GridResult{
		Result:    res,
		Algorithm: algo,
		Start:     start,
		Goal:      goal,
		Cells:     toCells(gg, res.Path),
		Visited:   toCells(gg, res.Order),
	}, nil
}

func toCells(gg *gridgraph.GridGraph, ids []int) []gridgraph.Cell {
	if ids == nil {
		return nil
	}
	cells := make([]gridgraph.Cell, len(ids))
	for i, id := range ids {
		cells[i] = gg.CellAt(id)
	}
	return cells
}
