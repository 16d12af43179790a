package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/frontier"
)

// noGoal makes the runner drain the whole frontier.
const noGoal = -1

// Search finds a minimum-cost path from start to goal in g.
//
// The run moves through Unstarted → Running → GoalFound | Exhausted:
//
//  1. Validate g, start, goal and every arc (ids in range, weights ≥ 0).
//     Nothing is allocated if validation fails.
//  2. Seed: dist[start] = 0, push (h(start, goal), start).
//  3. Pop the lowest-priority entry. Skip it if its vertex is already
//     finalized (stale entry). Otherwise finalize it and count it.
//  4. If it is the goal, stop: GoalFound.
//  5. Relax each arc u→v: if dist[u] + w < dist[v], update dist[v] and
//     parent[v] and push (dist[v] + h(v, goal), v).
//  6. When the frontier empties: Exhausted.
//
// A nil h means Zero, i.e. Dijkstra. A no-path outcome is reported through
// Result.Found, never as an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the frontier holds up to E stale entries.
func Search(g Graph, start, goal int, h Heuristic, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if h == nil {
		h = Zero
	}

	if err := validate(g, start); err != nil {
		return Result{}, err
	}
	if goal < 0 || goal >= g.VertexCount() {
		return Result{}, fmt.Errorf("%w: goal %d with V=%d", ErrVertexOutOfRange, goal, g.VertexCount())
	}

	began := time.Now()
	r := newRunner(g, goal, h, cfg)
	r.seed(start)
	r.process()

	res := Result{
		State:    r.state,
		Found:    r.state == GoalFound,
		Cost:     Infinity,
		Explored: r.explored,
		Order:    r.order,
	}
	if res.Found {
		res.Path = PathTo(r.parent, start, goal)
		res.Cost = r.dist[goal]
	} else {
		res.Path = []int{}
	}
	res.Elapsed = time.Since(began)

	return res, nil
}

// Distances runs the search from source without a goal and returns the
// complete distance and parent tables. Unreachable vertices keep
// dist == Infinity and parent == -1; parent[source] is -1 as well.
func Distances(g Graph, source int, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, source); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, noGoal, Zero, cfg)
	r.seed(source)
	r.process()

	return r.dist, r.parent, nil
}

// PathTo walks parent links from target back to source and returns the
// vertices source-first. It returns nil if target was never reached.
func PathTo(parent []int, source, target int) []int {
	if target < 0 || target >= len(parent) {
		return nil
	}
	if target != source && parent[target] < 0 {
		return nil
	}
	var path []int
	for at := target; ; at = parent[at] {
		path = append(path, at)
		if at == source || parent[at] < 0 || len(path) > len(parent) {
			break
		}
	}
	if path[len(path)-1] != source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// validate checks the graph and the source vertex, then pre-scans all arcs
// so the relaxation loop never meets a bad id or a negative weight.
// Complexity: O(V + E).
func validate(g Graph, source int) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return fmt.Errorf("%w: start %d with V=%d", ErrVertexOutOfRange, source, n)
	}
	for u := 0; u < n; u++ {
		for _, a := range g.Neighbors(u) {
			if a.To < 0 || a.To >= n {
				return fmt.Errorf("%w: arc %d→%d with V=%d", ErrVertexOutOfRange, u, a.To, n)
			}
			if a.Weight < 0 {
				return fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       Graph
	h       Heuristic
	goal    int
	options Options

	dist   []int64         // best known cost from the source
	parent []int           // vertex each entry was last relaxed from
	done   []bool          // finalized flags
	pq     *frontier.Queue // lazy min-heap of (f, v)

	state    State
	explored int
	order    []int
}

func newRunner(g Graph, goal int, h Heuristic, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		h:       h,
		goal:    goal,
		options: cfg,
		dist:    make([]int64, n),
		parent:  make([]int, n),
		done:    make([]bool, n),
		pq:      frontier.New(n),
		state:   Unstarted,
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Infinity
		r.parent[v] = -1
	}

	return r
}

// seed moves the run from Unstarted to Running.
func (r *runner) seed(source int) {
	r.dist[source] = 0
	r.pq.Push(r.priority(0, source), source)
	r.state = Running
}

// process drains the frontier until the goal is finalized or nothing is left.
func (r *runner) process() {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			r.state = Exhausted
			return
		}
		u := item.Vertex
		if r.done[u] {
			continue
		}

		r.done[u] = true
		r.explored++
		if r.options.RecordOrder {
			r.order = append(r.order, u)
		}
		r.options.OnFinalize(u, r.dist[u])

		if u == r.goal {
			r.state = GoalFound
			return
		}
		r.relax(u)
	}
}

// relax tries to improve every neighbor of the freshly finalized u.
// Arcs into finalized vertices are skipped: their distance cannot improve.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, a := range r.g.Neighbors(u) {
		v := a.To
		if r.done[v] {
			continue
		}
		cand := addSat(du, a.Weight)
		if cand >= r.dist[v] {
			continue
		}
		r.options.OnRelax(v, r.dist[v], cand)
		r.dist[v] = cand
		r.parent[v] = u
		r.pq.Push(r.priority(cand, v), v)
	}
}

// priority returns f = g + h(v, goal). Without a goal it is g.
// Negative estimates are read as 0.
func (r *runner) priority(g int64, v int) int64 {
	if r.goal == noGoal {
		return g
	}
	est := r.h(v, r.goal)
	if est < 0 {
		est = 0
	}
	return addSat(g, est)
}

// addSat adds two non-negative costs, saturating at Infinity.
func addSat(a, b int64) int64 {
	if a > Infinity-b {
		return Infinity
	}
	return a + b
}
