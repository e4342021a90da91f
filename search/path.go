package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// ReconstructPath walks parents backward from end until gridgraph.NoCell and
// returns the cells in start..end order. It returns nil if end was never
// discovered, or if the chain is broken or cyclic. parents is not modified.
func ReconstructPath(parents ParentMap, end gridgraph.Cell) []gridgraph.Cell {
	if _, ok := parents[end]; !ok {
		return nil
	}
	path := []gridgraph.Cell{}
	for cur := end; cur != gridgraph.NoCell; {
		path = append(path, cur)
		if len(path) > len(parents) {
			return nil
		}
		prev, ok := parents[cur]
		if !ok {
			return nil
		}
		cur = prev
	}
	slices.Reverse(path)

	return path
}

// PathCost sums the edge weights along path in g. An empty or single-cell
// path costs 0. Returns ErrBrokenPath if two consecutive cells are not
// connected by an edge of g.
func PathCost(g Graph, path []gridgraph.Cell) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := edgeWeight(g, path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrBrokenPath, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}

// edgeWeight returns the weight of the edge u→v, if any.
func edgeWeight(g Graph, u, v gridgraph.Cell) (int64, bool) {
	for _, nb := range g.Neighbors(u) {
		if nb.Cell == v {
			return nb.Weight, true
		}
	}
	return 0, false
}
