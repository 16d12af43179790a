// Package search implements single-source shortest-path search with Dijkstra
// and A* unified as one priority-driven relaxation loop.
//
// Overview:
//
//   - Search runs from a start vertex toward a goal vertex over any Graph
//     (a *core.Graph built from edge triples, or a *gridgraph.GridGraph).
//   - The frontier is ordered by f = g + h. With h ≡ 0 (Zero) this is
//     Dijkstra; with an admissible, consistent estimate it is A*.
//   - The loop stops the moment the goal is finalized.
//   - Distances drains the frontier with no goal and returns the full
//     distance and parent tables.
//   - Grid is the coordinate-level entry point for grid maps.
//
// Heuristics for grids:
//
//   - Manhattan: Conn4, admissible and consistent.
//   - Chebyshev: Conn8 (diagonal moves cost 1), admissible and consistent.
//   - Euclidean: Conn4 only; weaker than Manhattan, kept for comparison runs.
//
// Lazy decrease-key:
//
//	The frontier never updates an entry in place. An improved distance pushes
//	a fresh entry; the older one is dropped when popped because its vertex is
//	already finalized.
//
// Error handling (sentinel errors, all match core.ErrInvalidInput):
//
//   - ErrNilGraph:         nil graph.
//   - ErrVertexOutOfRange: start, goal or an arc target outside [0, V).
//   - ErrNegativeWeight:   an arc with negative weight.
//   - ErrUnknownAlgorithm: Algorithm other than Dijkstra or AStar.
//   - gridgraph.ErrOutOfBounds / gridgraph.ErrBlockedCell from Grid.
//
// An unreachable goal is not an error: Result.Found is false, Result.State is
// Exhausted and Result.Explored counts every vertex reachable from the start.
//
// Thread safety:
//
//	Each call owns its distance, parent and frontier tables. Graphs are
//	read-only, so concurrent calls on the same graph are safe.
package search
