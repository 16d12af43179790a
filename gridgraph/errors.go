package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: gridgraph: grid must have at least one row and one column", core.ErrInvalidInput)
	// ErrNonRectangular indicates mask rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: gridgraph: all rows must have the same length", core.ErrInvalidInput)
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: gridgraph: cell out of bounds", core.ErrInvalidInput)
	// ErrBlockedCell indicates a start or goal placed on an obstacle.
	ErrBlockedCell = fmt.Errorf("%w: gridgraph: cell is an obstacle", core.ErrInvalidInput)
	// ErrMalformedMap indicates an ASCII map that could not be parsed.
	ErrMalformedMap = fmt.Errorf("%w: gridgraph: malformed map", core.ErrInvalidInput)
	// ErrObstacleCount indicates a negative obstacle count.
	ErrObstacleCount = fmt.Errorf("%w: gridgraph: obstacle count must not be negative", core.ErrInvalidInput)
	// ErrNeedRandSource indicates RandomObstacles was called without WithSeed or WithRand.
	ErrNeedRandSource = fmt.Errorf("%w: gridgraph: random source required", core.ErrInvalidInput)
)
