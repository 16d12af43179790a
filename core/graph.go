package core

import "fmt"

// NewGraph validates the edge triples and builds the adjacency view.
// Every edge is inserted in both directions. A self-loop u–u is stored once.
//
// Steps:
//  1. Reject vertexCount <= 0 (ErrVertexCount).
//  2. Reject any endpoint outside [0, V) (ErrVertexRange) or weight < 0 (ErrNegativeWeight).
//  3. Append arcs u→v and v→u.
//
// No Graph is returned when validation fails.
// Complexity: O(V + E) time and memory.
func NewGraph(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrVertexCount, vertexCount)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) with V=%d", ErrVertexRange, i, e.From, e.To, vertexCount)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) weight=%d", ErrNegativeWeight, i, e.From, e.To, e.Weight)
		}
	}

	g := &Graph{
		vertexCount: vertexCount,
		edges:       make([]Edge, len(edges)),
		adjacency:   make([][]Arc, vertexCount),
	}
	copy(g.edges, edges)
	for _, e := range edges {
		g.adjacency[e.From] = append(g.adjacency[e.From], Arc{To: e.To, Weight: e.Weight})
		if e.From != e.To {
			g.adjacency[e.To] = append(g.adjacency[e.To], Arc{To: e.From, Weight: e.Weight})
		}
	}

	return g, nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.vertexCount }

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.vertexCount }

// Neighbors returns the arcs leaving v. The slice is shared with the Graph and
// must not be modified. Out-of-range ids yield nil.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []Arc {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adjacency[v]
}

// Degree returns the number of arcs leaving v.
func (g *Graph) Degree(v int) int { return len(g.Neighbors(v)) }

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	for _, a := range g.Neighbors(u) {
		if a.To == v {
			return true
		}
	}

	return false
}

// Weight returns the smallest weight among the edges joining u and v.
// ok is false when u and v are not adjacent.
func (g *Graph) Weight(u, v int) (w int64, ok bool) {
	for _, a := range g.Neighbors(u) {
		if a.To == v && (!ok || a.Weight < w) {
			w, ok = a.Weight, true
		}
	}

	return w, ok
}

// Edges returns a copy of the edge triples in the order they were given.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
