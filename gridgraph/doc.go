// Package gridgraph treats a rectangular 2D grid of free and blocked cells as
// a graph, so that the search package can run Dijkstra or A* over it.
//
// What:
//
//   - GridGraph wraps a rows×cols occupancy grid built from obstacle
//     coordinates, a blocked mask, or an ASCII map.
//   - Every free cell becomes a vertex with row-major id row*cols + col.
//   - Neighbors are the in-bounds free cells reachable in one move at unit
//     cost: orthogonal only (Conn4, the default) or with diagonals (Conn8).
//   - The adjacency view is precomputed once; a GridGraph never changes.
//
// Extras:
//
//   - ConnectedComponents / ReachableFrom: free regions of the grid.
//   - MinClearance: the fewest obstacles that must be removed to connect two
//     cells (0-1 BFS), useful to explain why a search came back empty.
//   - ToCoreGraph: export to a *core.Graph for the general graph tooling.
//   - RandomObstacles: seeded random layouts that keep goal reachable.
//
// Complexity:
//
//   - NewGridGraph:        O(R×C×d) time and memory (d = 4 or 8).
//   - ConnectedComponents: O(R×C×d) time, O(R×C) memory.
//   - MinClearance:        O(R×C×d) time, O(R×C) memory.
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols is zero.
//   - ErrNonRectangular: mask rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrBlockedCell: a start or goal coordinate is an obstacle.
//   - ErrMalformedMap: an ASCII map could not be parsed.
//   - ErrObstacleCount: RandomObstacles got a negative minimum.
//   - ErrNeedRandSource: RandomObstacles got no RNG.
//
// All of them match core.ErrInvalidInput.
package gridgraph
