package gridgraph

// ConnectedComponents finds all contiguous regions of free cells according to
// gg.Conn. Each component is a slice of row-major cell ids in BFS order;
// components are ordered by their first cell in row-major order.
//
// Time:   O(R·C·d).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.VertexCount())
	var comps [][]int
	for i, b := range gg.blocked {
		if b || seen[i] {
			continue
		}
		comps = append(comps, gg.flood(i, seen))
	}
	return comps
}

// ReachableFrom returns every free cell reachable from c (c included), in BFS
// order. A blocked or out-of-bounds c yields nil.
func (gg *GridGraph) ReachableFrom(c Cell) []int {
	if gg.Blocked(c) {
		return nil
	}
	return gg.flood(gg.Index(c), make([]bool, gg.VertexCount()))
}

// flood runs a BFS from i0 over the precomputed adjacency, marking seen.
func (gg *GridGraph) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, a := range gg.adjacency[queue[qi]] {
			if !seen[a.To] {
				seen[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}
	return queue
}
