package gridgraph

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultMaxAttempts is how many random layouts RandomObstacles tries
	// before it starts removing obstacles.
	DefaultMaxAttempts = 100
	// DefaultMaxDensity caps the obstacle count at this share of all cells.
	DefaultMaxDensity = 0.35
)

// RandomOption customizes RandomObstacles.
type RandomOption func(*randomConfig)

type randomConfig struct {
	rng         *rand.Rand
	maxAttempts int
	maxDensity  float64
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("gridgraph: WithRand(nil)")
	}
	return func(c *randomConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) RandomOption {
	return func(c *randomConfig) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithMaxDensity overrides DefaultMaxDensity. Values outside (0, 1] are ignored.
func WithMaxDensity(d float64) RandomOption {
	return func(c *randomConfig) {
		if d > 0 && d <= 1 {
			c.maxDensity = d
		}
	}
}

// RandomObstacles builds a rows×cols grid with randomly placed obstacles
// such that goal stays reachable from start.
//
// Behavior:
//  1. Validate the size, both endpoints and minObstacles ≥ 0.
//  2. Up to maxAttempts times: draw a count in [minObstacles, maxDensity·R·C],
//     scatter that many obstacles over cells other than start and goal,
//     keep the layout if goal is reachable.
//  3. Otherwise retry with minObstacles, then half as many, and so on down to
//     zero obstacles, which is always solvable.
//
// Counts are capped by the number of cells available. An RNG is required
// (WithSeed or WithRand), else ErrNeedRandSource.
//
// Complexity: O(A·R·C·d) time for A attempts, O(R·C) memory.
func RandomObstacles(rows, cols int, start, goal Cell, minObstacles int, gopts GridOptions, opts ...RandomOption) (*GridGraph, error) {
	cfg := randomConfig{maxAttempts: DefaultMaxAttempts, maxDensity: DefaultMaxDensity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	for _, c := range []Cell{start, goal} {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%w: endpoint %v in %d×%d grid", ErrOutOfBounds, c, rows, cols)
		}
	}
	if minObstacles < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrObstacleCount, minObstacles)
	}

	// cells that may hold an obstacle, in row-major order
	candidates := make([]int, 0, rows*cols)
	for i := 0; i < rows*cols; i++ {
		if i != start.Row*cols+start.Col && i != goal.Row*cols+goal.Col {
			candidates = append(candidates, i)
		}
	}
	lo := min(minObstacles, len(candidates))
	hi := min(max(lo, int(float64(rows*cols)*cfg.maxDensity)), len(candidates))

	try := func(n int) *GridGraph {
		cfg.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		blocked := make([]bool, rows*cols)
		for _, id := range candidates[:n] {
			blocked[id] = true
		}
		gg := build(rows, cols, blocked, gopts)
		if !gg.connected(start, goal) {
			return nil
		}
		return gg
	}

	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		if gg := try(lo + cfg.rng.Intn(hi-lo+1)); gg != nil {
			return gg, nil
		}
	}
	for n := lo; ; n /= 2 {
		if gg := try(n); gg != nil {
			return gg, nil
		}
		if n == 0 {
			// unreachable: an empty grid always connects its cells
			return nil, fmt.Errorf("gridgraph: RandomObstacles could not connect %v and %v", start, goal)
		}
	}
}

// connected reports whether b is reachable from a over free cells.
func (gg *GridGraph) connected(a, b Cell) bool {
	target := gg.Index(b)
	for _, id := range gg.ReachableFrom(a) {
		if id == target {
			return true
		}
	}
	return false
}
