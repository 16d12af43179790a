package gridgraph_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func layout(t *testing.T, gg *gridgraph.GridGraph, start, goal gridgraph.Cell) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gg.Format(&buf, start, goal))
	return buf.String()
}

func reachable(gg *gridgraph.GridGraph, start, goal gridgraph.Cell) bool {
	for _, id := range gg.ReachableFrom(start) {
		if id == gg.Index(goal) {
			return true
		}
	}
	return false
}

// TestRandomObstacles_Deterministic checks that one seed gives one layout.
func TestRandomObstacles_Deterministic(t *testing.T) {
	start, goal := gridgraph.Cell{}, gridgraph.Cell{Row: 9, Col: 9}
	a, err := gridgraph.RandomObstacles(10, 10, start, goal, 20, gridgraph.DefaultGridOptions(), gridgraph.WithSeed(7))
	require.NoError(t, err)
	b, err := gridgraph.RandomObstacles(10, 10, start, goal, 20, gridgraph.DefaultGridOptions(), gridgraph.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, layout(t, a, start, goal), layout(t, b, start, goal))

	c, err := gridgraph.RandomObstacles(10, 10, start, goal, 20, gridgraph.DefaultGridOptions(),
		gridgraph.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	require.Equal(t, layout(t, a, start, goal), layout(t, c, start, goal))
}

// TestRandomObstacles_AlwaysSolvable sweeps seeds on a 10×10 grid.
func TestRandomObstacles_AlwaysSolvable(t *testing.T) {
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 9, Col: 9}
	for seed := int64(1); seed <= 50; seed++ {
		gg, err := gridgraph.RandomObstacles(10, 10, start, goal, 20, gridgraph.DefaultGridOptions(), gridgraph.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)
		require.False(t, gg.Blocked(start), "seed %d", seed)
		require.False(t, gg.Blocked(goal), "seed %d", seed)
		require.LessOrEqual(t, gg.Obstacles(), 35, "seed %d", seed)
		require.True(t, reachable(gg, start, goal), "seed %d", seed)
	}
}

// TestRandomObstacles_CorridorFallsBack uses a 1×10 corridor where any
// obstacle cuts the route, so only the empty layout works.
func TestRandomObstacles_CorridorFallsBack(t *testing.T) {
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 9}
	gg, err := gridgraph.RandomObstacles(1, 10, start, goal, 3, gridgraph.DefaultGridOptions(),
		gridgraph.WithSeed(1), gridgraph.WithMaxAttempts(5))
	require.NoError(t, err)
	require.Zero(t, gg.Obstacles())
}

// TestRandomObstacles_Capacity caps the count at the cells left over.
//
//	S x
//	x G
//
// Under Conn4 both x blocked cuts S from G, so one is dropped. Under Conn8
// the diagonal move keeps both.
func TestRandomObstacles_Capacity(t *testing.T) {
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 1}

	gg, err := gridgraph.RandomObstacles(2, 2, start, goal, 10, gridgraph.DefaultGridOptions(), gridgraph.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 1, gg.Obstacles())

	gg, err = gridgraph.RandomObstacles(2, 2, start, goal, 10, gridgraph.GridOptions{Conn: gridgraph.Conn8}, gridgraph.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 2, gg.Obstacles())
}

func TestRandomObstacles_Errors(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	c := gridgraph.Cell{}

	_, err := gridgraph.RandomObstacles(3, 3, c, c, 1, opts)
	require.ErrorIs(t, err, gridgraph.ErrNeedRandSource)

	_, err = gridgraph.RandomObstacles(0, 3, c, c, 1, opts, gridgraph.WithSeed(1))
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.RandomObstacles(3, 3, c, gridgraph.Cell{Row: 3, Col: 0}, 1, opts, gridgraph.WithSeed(1))
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = gridgraph.RandomObstacles(3, 3, c, c, -1, opts, gridgraph.WithSeed(1))
	require.ErrorIs(t, err, gridgraph.ErrObstacleCount)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	require.Panics(t, func() { gridgraph.WithRand(nil) })
}
