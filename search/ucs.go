package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// UCS runs uniform-cost search on g: cells are expanded in order of
// accumulated path cost, and a neighbor's cost and parent are rewritten
// whenever a strictly cheaper route is found. The first expansion of end
// carries its minimum cost.
//
// Returns ErrNegativeWeight if a negative edge is met during relaxation.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key pushes up to E entries.
//   - Space: O(V + E).
func UCS(g Graph, start, end gridgraph.Cell, opts ...Option) (*Result, error) {
	t, err := newTraversal(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	if err = t.relaxAll(zeroHeuristic); err != nil {
		return nil, err
	}

	return t.result(StrategyUCS), nil
}

func zeroHeuristic(_, _ gridgraph.Cell) int64 { return 0 }

// relaxAll is the cost-aware main loop shared by UCS and A*.
// Heap priority is cost + h(cell, end).
func (t *traversal) relaxAll(h Heuristic) error {
	t.cost = map[gridgraph.Cell]int64{t.start: 0}
	pq := costPQ{{cell: t.start, priority: h(t.start, t.end), cost: 0}}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(costItem)

		// A cheaper entry for this cell was pushed after this one.
		if item.cost > t.cost[item.cell] {
			continue
		}

		t.expand(item.cell)
		if item.cell == t.end {
			return nil
		}
		if err := t.relax(&pq, item.cell, h); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each neighbor of u and records a cheaper route when found.
func (t *traversal) relax(pq *costPQ, u gridgraph.Cell, h Heuristic) error {
	base := t.cost[u]
	for _, nb := range t.graph.Neighbors(u) {
		if nb.Weight < 0 {
			return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, u, nb.Cell, nb.Weight)
		}
		newCost := base + nb.Weight
		if known, ok := t.cost[nb.Cell]; ok && newCost >= known {
			continue
		}
		t.cost[nb.Cell] = newCost
		t.discover(nb.Cell, u)
		heap.Push(pq, costItem{
			cell:     nb.Cell,
			priority: newCost + h(nb.Cell, t.end),
			cost:     newCost,
		})
	}

	return nil
}
