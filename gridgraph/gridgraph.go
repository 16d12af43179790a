package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

var (
	offsets4 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	offsets8 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
)

// NewGridGraph builds a rows×cols grid where every listed obstacle is blocked.
// Obstacles may repeat. Returns ErrEmptyGrid if rows or cols is not positive,
// ErrOutOfBounds if any obstacle lies outside the grid.
// Complexity: O(R×C×d) time and memory.
func NewGridGraph(rows, cols int, obstacles []Cell, opts GridOptions) (*GridGraph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	blocked := make([]bool, rows*cols)
	for _, c := range obstacles {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%w: obstacle %v in %d×%d grid", ErrOutOfBounds, c, rows, cols)
		}
		blocked[c.Row*cols+c.Col] = true
	}

	return build(rows, cols, blocked, opts), nil
}

// FromMask builds a grid from a rectangular mask where mask[r][c] == true
// marks an obstacle. The mask is copied.
func FromMask(mask [][]bool, opts GridOptions) (*GridGraph, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(mask), len(mask[0])
	blocked := make([]bool, 0, rows*cols)
	for _, row := range mask {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		blocked = append(blocked, row...)
	}

	return build(rows, cols, blocked, opts), nil
}

// build precomputes the adjacency view over a validated occupancy slice.
func build(rows, cols int, blocked []bool, opts GridOptions) *GridGraph {
	gg := &GridGraph{
		Rows:      rows,
		Cols:      cols,
		Conn:      opts.Conn,
		blocked:   blocked,
		adjacency: make([][]core.Arc, rows*cols),
		offsets:   offsets4,
	}
	if opts.Conn == Conn8 {
		gg.offsets = offsets8
	}

	for i, b := range blocked {
		if b {
			gg.obstacles++
			continue
		}
		r, c := gg.Coordinate(i)
		for _, d := range gg.offsets {
			nr, nc := r+d[0], c+d[1]
			if !gg.InBounds(nr, nc) || blocked[nr*cols+nc] {
				continue
			}
			gg.adjacency[i] = append(gg.adjacency[i], core.Arc{To: nr*cols + nc, Weight: unitCost})
		}
	}

	return gg
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// Blocked reports whether c is an obstacle. Out-of-bounds cells count as blocked.
func (gg *GridGraph) Blocked(c Cell) bool {
	if !gg.InBounds(c.Row, c.Col) {
		return true
	}
	return gg.blocked[gg.Index(c)]
}

// Obstacles returns the number of blocked cells.
func (gg *GridGraph) Obstacles() int { return gg.obstacles }

// Index maps a cell to its row-major vertex id: row*Cols + col.
// The cell is not bounds-checked.
func (gg *GridGraph) Index(c Cell) int {
	return c.Row*gg.Cols + c.Col
}

// Coordinate converts a row-major vertex id back to (row, col).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Cols, idx % gg.Cols
}

// CellAt converts a row-major vertex id back to a Cell.
func (gg *GridGraph) CellAt(idx int) Cell {
	r, c := gg.Coordinate(idx)
	return Cell{Row: r, Col: c}
}

// VertexCount returns Rows×Cols. Blocked cells are vertices without arcs.
func (gg *GridGraph) VertexCount() int { return gg.Rows * gg.Cols }

// Neighbors returns the arcs from vertex v to its free neighbors, in
// right, down, left, up order (then the diagonals under Conn8).
// The slice is shared and must not be modified.
func (gg *GridGraph) Neighbors(v int) []core.Arc {
	if v < 0 || v >= len(gg.adjacency) {
		return nil
	}
	return gg.adjacency[v]
}

// Adjacent reports whether a single move connects cells a and b.
func (gg *GridGraph) Adjacent(a, b Cell) bool {
	if gg.Blocked(a) || gg.Blocked(b) {
		return false
	}
	to := gg.Index(b)
	for _, arc := range gg.adjacency[gg.Index(a)] {
		if arc.To == to {
			return true
		}
	}
	return false
}

// ValidateEndpoint checks that c can serve as a search start or goal.
// Returns ErrOutOfBounds or ErrBlockedCell.
func (gg *GridGraph) ValidateEndpoint(c Cell) error {
	if !gg.InBounds(c.Row, c.Col) {
		return fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, gg.Rows, gg.Cols)
	}
	if gg.blocked[gg.Index(c)] {
		return fmt.Errorf("%w: %v", ErrBlockedCell, c)
	}
	return nil
}

// ToCoreGraph converts the grid into a *core.Graph over the same vertex ids.
// Each pair of adjacent free cells is joined by one undirected unit edge;
// blocked cells stay isolated vertices.
// Complexity: O(R×C×d).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	var edges []core.Edge
	for u, arcs := range gg.adjacency {
		for _, a := range arcs {
			if u < a.To {
				edges = append(edges, core.Edge{From: u, To: a.To, Weight: a.Weight})
			}
		}
	}
	// Ids are in range and weights are positive by construction.
	g, _ := core.NewGraph(gg.VertexCount(), edges)

	return g
}
