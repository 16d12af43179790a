package gridgraph

import "container/list"

// MinClearance finds a path from start to goal that crosses the fewest
// obstacles, and returns it together with the number of obstacles crossed.
// cleared == 0 means goal is already reachable.
//
// Behavior:
//  1. Validate both endpoints (in bounds and free).
//  2. 0–1 BFS from start over the full grid, ignoring obstacles for adjacency:
//     • moving into a free cell    → cost 0
//     • moving into a blocked cell → cost 1
//  3. Stop when goal is popped.
//  4. Reconstruct path via predecessors.
//
// Returns ErrOutOfBounds or ErrBlockedCell when start or goal is invalid.
// Every valid pair is connected because the grid is rectangular.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (gg *GridGraph) MinClearance(start, goal Cell) (path []int, cleared int, err error) {
	for _, c := range []Cell{start, goal} {
		if err := gg.ValidateEndpoint(c); err != nil {
			return nil, 0, err
		}
	}

	n := gg.VertexCount()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gg.Index(start), gg.Index(goal)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		ur, uc := gg.Coordinate(u)
		for _, d := range gg.offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !gg.InBounds(vr, vc) {
				continue
			}
			v := vr*gg.Cols + vc
			step := 0
			if gg.blocked[v] {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
