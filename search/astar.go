package search

import "github.com/katalvlaran/mazepath/gridgraph"

// AStar runs A* on g with the same relaxation rule as UCS, ordering the heap
// by f = g + h where h defaults to Manhattan distance to end (see WithHeuristic).
// Entries with equal f are ordered by g, then by cell.
//
// Manhattan distance is admissible and consistent for 4-directional movement
// with edge weights ≥ 1, which holds for every GridGraph.
//
// Complexity: same bounds as UCS; typically far fewer expansions.
func AStar(g Graph, start, end gridgraph.Cell, opts ...Option) (*Result, error) {
	t, err := newTraversal(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	if err = t.relaxAll(t.opts.Heuristic); err != nil {
		return nil, err
	}

	return t.result(StrategyAStar), nil
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b gridgraph.Cell) int64 {
	return int64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
