package search

import "github.com/katalvlaran/mazepath/gridgraph"

// DFS runs depth-first search on g using an explicit stack, with the same
// discovery rule as BFS. It finds a path whenever one exists but makes no
// claim about its length or cost.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g Graph, start, end gridgraph.Cell, opts ...Option) (*Result, error) {
	t, err := newTraversal(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	t.walk(&lifo{})

	return t.result(StrategyDFS), nil
}
