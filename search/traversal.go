package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// traversal encapsulates the mutable state of one search call.
// It is never shared between calls.
type traversal struct {
	graph   Graph
	opts    Options
	start   gridgraph.Cell
	end     gridgraph.Cell
	parents ParentMap
	visited []gridgraph.Cell
	cost    map[gridgraph.Cell]int64
}

// newTraversal validates the inputs, applies options and seeds the parent map
// with start → NoCell.
func newTraversal(g Graph, start, end gridgraph.Cell, opts []Option) (*traversal, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start %s", ErrCellNotOpen, start)
	}
	if !g.Contains(end) {
		return nil, fmt.Errorf("%w: end %s", ErrCellNotOpen, end)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &traversal{
		graph:   g,
		opts:    o,
		start:   start,
		end:     end,
		parents: ParentMap{start: gridgraph.NoCell},
	}, nil
}

// expand records c in the visited sequence and calls OnExpand.
func (t *traversal) expand(c gridgraph.Cell) {
	t.visited = append(t.visited, c)
	t.opts.OnExpand(c)
}

// discover records parent as the predecessor of c and calls OnDiscover.
func (t *traversal) discover(c, parent gridgraph.Cell) {
	t.parents[c] = parent
	t.opts.OnDiscover(c, parent)
}

// seen reports whether c already has a parent.
func (t *traversal) seen(c gridgraph.Cell) bool {
	_, ok := t.parents[c]
	return ok
}

// result packages the traversal state and reconstructs the path.
func (t *traversal) result(s Strategy) *Result {
	return &Result{
		Strategy: s,
		Parents:  t.parents,
		Path:     ReconstructPath(t.parents, t.end),
		Visited:  t.visited,
		Cost:     t.cost,
	}
}
