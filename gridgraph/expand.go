package gridgraph

import (
	"container/list"
	"fmt"
)

// BreachPath finds a path from one cell to another that knocks down the
// fewest walls. Stepping onto an open cell costs 0, onto a wall costs 1.
// Returns the cells of the path (both endpoints included, walls included)
// and the number of walls on it.
//
// Behavior:
//  1. Validate both cells are in bounds.
//  2. 0–1 BFS from `from`:
//     • Moving into an open cell → cost 0 (pushed to the front)
//     • Moving into a wall       → cost 1 (pushed to the back)
//  3. Stop when `to` is popped.
//  4. Reconstruct path via predecessor indices.
//
// Complexity: O(R·C) time, O(R·C) memory.
func (gg *GridGraph) BreachPath(from, to Cell) (path []Cell, walls int, err error) {
	if !gg.InBounds(from) {
		return nil, 0, fmt.Errorf("%w: %s", ErrOutOfBounds, from)
	}
	if !gg.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: %s", ErrOutOfBounds, to)
	}

	n := gg.rows * gg.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gg.index(from), gg.index(to)
	dist[src] = gg.Value(from) // a walled start still has to be knocked down
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
		uc := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vc := Cell{Row: uc.Row + d[0], Col: uc.Col + d[1]}
			if !gg.InBounds(vc) {
				continue
			}
			v := gg.index(vc)
			step := gg.values[vc.Row][vc.Col]
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
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

// Carve returns a new GridGraph with every wall on path opened.
// Cells outside the grid yield ErrOutOfBounds.
func (gg *GridGraph) Carve(path []Cell) (*GridGraph, error) {
	values := gg.Values()
	for _, c := range path {
		if !gg.InBounds(c) {
			return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
		}
		values[c.Row][c.Col] = Open
	}

	return NewGridGraph(values)
}
