package search

import "github.com/katalvlaran/mazepath/gridgraph"

// BFS runs breadth-first search on g from start until end is expanded or the
// queue is empty. A cell's parent is fixed at first discovery, so on graphs
// with equal edge weights the returned path has the fewest edges.
//
// Returns ErrNilGraph or ErrCellNotOpen for invalid input. An unreachable end
// is not an error: the result has an empty Path and records the whole
// exploration.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g Graph, start, end gridgraph.Cell, opts ...Option) (*Result, error) {
	t, err := newTraversal(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	t.walk(&fifo{})

	return t.result(StrategyBFS), nil
}

// walk drives the uninformed strategies; only the frontier discipline differs.
func (t *traversal) walk(fr frontier) {
	fr.push(t.start)
	for fr.len() > 0 {
		cur := fr.pop()
		t.expand(cur)
		if cur == t.end {
			return
		}
		for _, nb := range t.graph.Neighbors(cur) {
			if t.seen(nb.Cell) {
				continue
			}
			t.discover(nb.Cell, cur)
			fr.push(nb.Cell)
		}
	}
}
