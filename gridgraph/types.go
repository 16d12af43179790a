package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: right, down, left, up.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals. Every move still costs 1.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// Cell is a (row, col) grid coordinate.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is an immutable occupancy grid viewed as a graph.
// blocked[i] and adjacency[i] are indexed by the row-major cell id.
type GridGraph struct {
	Rows, Cols int
	Conn       Connectivity

	blocked   []bool
	obstacles int
	adjacency [][]core.Arc
	offsets   [][2]int
}

// unitCost is the weight of every move between adjacent free cells.
const unitCost int64 = 1
