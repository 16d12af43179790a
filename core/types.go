// Package core defines the immutable weighted Graph built from a vertex count
// and a list of undirected edge triples, together with the sentinel errors
// shared by every package of gridpath.
//
// Errors:
//
//	ErrInvalidInput   - root of every input validation failure.
//	ErrVertexCount    - vertex count is zero or negative.
//	ErrVertexRange    - an edge endpoint lies outside [0, V).
//	ErrNegativeWeight - an edge carries a negative weight.
//	ErrMalformedInput - textual edge list could not be parsed.
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every validation error. Callers may test any
// builder or search failure with errors.Is(err, core.ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// Sentinel errors for graph construction.
var (
	// ErrVertexCount indicates a non-positive vertex count.
	ErrVertexCount = fmt.Errorf("%w: core: vertex count must be positive", ErrInvalidInput)

	// ErrVertexRange indicates an edge endpoint outside [0, V).
	ErrVertexRange = fmt.Errorf("%w: core: vertex id out of range", ErrInvalidInput)

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = fmt.Errorf("%w: core: negative edge weight", ErrInvalidInput)

	// ErrMalformedInput indicates an unparsable edge list.
	ErrMalformedInput = fmt.Errorf("%w: core: malformed edge list", ErrInvalidInput)
)

// Edge is an undirected connection between vertices From and To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Arc is one direction of an Edge as seen from its tail vertex.
type Arc struct {
	To     int   // neighbor vertex
	Weight int64 // cost of moving to To
}

// Graph is an undirected weighted graph over the dense vertex ids [0, V).
// It is immutable once built; every method is safe for concurrent readers.
type Graph struct {
	vertexCount int
	edges       []Edge
	adjacency   [][]Arc // adjacency[u] lists arcs leaving u in insertion order
}
