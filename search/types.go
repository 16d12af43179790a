package search

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/core"
)

// Infinity is the distance of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned before any search state is allocated.
var (
	// ErrNilGraph indicates that a nil Graph was passed.
	ErrNilGraph = fmt.Errorf("%w: search: graph is nil", core.ErrInvalidInput)

	// ErrVertexOutOfRange indicates a start, goal or arc target outside [0, V).
	ErrVertexOutOfRange = fmt.Errorf("%w: search: vertex out of range", core.ErrInvalidInput)

	// ErrNegativeWeight indicates an arc with weight < 0, which breaks the
	// finalization guarantee. It is the same value as core.ErrNegativeWeight.
	ErrNegativeWeight = core.ErrNegativeWeight

	// ErrUnknownAlgorithm indicates an Algorithm value other than Dijkstra or AStar.
	ErrUnknownAlgorithm = fmt.Errorf("%w: search: unknown algorithm", core.ErrInvalidInput)
)

// Graph is the adjacency view the search runs on. Vertex ids are the dense
// integers [0, VertexCount()). Both *core.Graph and *gridgraph.GridGraph
// satisfy it.
type Graph interface {
	VertexCount() int
	Neighbors(v int) []core.Arc
}

// Heuristic estimates the remaining cost from v to goal. For optimal results it
// must be admissible (never above the true cost) and consistent
// (h(u) ≤ w(u,v) + h(v) for every arc u→v).
type Heuristic func(v, goal int) int64

// Zero is the null heuristic; searching with it is plain Dijkstra.
func Zero(int, int) int64 { return 0 }

// State is the phase of a single search run.
type State int

const (
	// Unstarted: inputs validated, frontier not yet seeded.
	Unstarted State = iota
	// Running: the relaxation loop is draining the frontier.
	Running
	// GoalFound: the goal was finalized. Terminal.
	GoalFound
	// Exhausted: the frontier emptied without reaching the goal. Terminal.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Running:
		return "running"
	case GoalFound:
		return "goal-found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is the outcome of Search.
//
// On GoalFound, Path runs from start to goal inclusive and Cost is the sum of
// its arc weights. On Exhausted, Path is empty and Cost is Infinity.
// Explored counts finalized vertices in both cases.
type Result struct {
	State    State
	Found    bool
	Path     []int
	Cost     int64
	Explored int
	Elapsed  time.Duration

	// Order lists finalized vertices in the order they were finalized.
	// Only filled when WithOrder is set.
	Order []int
}

// Len returns the number of vertices on the path (0 when no path was found).
func (r Result) Len() int { return len(r.Path) }

// ElapsedMillis returns Elapsed in fractional milliseconds.
func (r Result) ElapsedMillis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Options configures a search run.
//
// RecordOrder – collect Result.Order.
// OnFinalize  – called once per finalized vertex with its final distance.
// OnRelax     – called on every distance improvement with the distance before and after;
// before is Infinity for a first discovery.
type Options struct {
	RecordOrder bool
	OnFinalize  func(v int, dist int64)
	OnRelax     func(v int, before, after int64)
}

// Option is a functional option for Search, Distances and Grid.
type Option func(*Options)

// DefaultOptions returns Options with no hooks and no order recording.
func DefaultOptions() Options {
	return Options{
		OnFinalize: func(int, int64) {},
		OnRelax:    func(int, int64, int64) {},
	}
}

// WithOrder enables Result.Order.
func WithOrder() Option {
	return func(o *Options) { o.RecordOrder = true }
}

// WithOnFinalize registers a hook run whenever a vertex is finalized.
func WithOnFinalize(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithOnRelax registers a hook run whenever a tentative distance improves.
func WithOnRelax(fn func(v int, before, after int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
