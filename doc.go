// Package gridpath finds shortest paths on obstacle grids and on weighted
// undirected graphs, with Dijkstra and A* sharing one search engine.
//
// 🚀 What is gridpath?
//
//	A small, synchronous library that brings together:
//		• Graph input: edge triples (u, v, w) → immutable adjacency lists
//		• Grid input: rows × cols with obstacles, 4- or 8-connectivity
//		• A min-priority frontier with stable tie-breaking
//		• One relaxation engine: h ≡ 0 is Dijkstra, an admissible h is A*
//		• Reports: text, ASCII map, JSON, GeoJSON
//
// ✨ Why choose gridpath?
//
//   - A missing path is a result, not an error
//   - Invalid input fails before any search state exists
//   - Hooks (OnFinalize, OnRelax) and exploration order for analysis
//
// Subpackages:
//
//	core/      — Graph, Edge, Arc; edge-list parsing; root ErrInvalidInput
//	gridgraph/ — GridGraph, ASCII maps, components, MinClearance
//	frontier/  — Queue of (priority, vertex) entries
//	search/    — Search, Distances, Grid, heuristics
//	report/    — Summary, Compare, RenderASCII, JSON, GeoJSON
//	cmd/       — gridpath command-line tool
//
// Quick ASCII example:
//
//	S . # . .
//	. . # . #
//	. . . . G
//
//	A* with the Manhattan heuristic finds a 6-step route around the wall.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
