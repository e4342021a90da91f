package search

import "github.com/katalvlaran/mazepath/gridgraph"

// frontier is the pending-exploration container of the uninformed strategies.
type frontier interface {
	push(c gridgraph.Cell)
	pop() gridgraph.Cell
	len() int
}

// fifo is a slice-backed queue. head advances instead of reslicing so the
// backing array is not copied on every dequeue.
type fifo struct {
	items []gridgraph.Cell
	head  int
}

func (q *fifo) push(c gridgraph.Cell) { q.items = append(q.items, c) }

func (q *fifo) pop() gridgraph.Cell {
	c := q.items[q.head]
	q.head++

	return c
}

func (q *fifo) len() int { return len(q.items) - q.head }

// lifo is a slice-backed stack.
type lifo struct {
	items []gridgraph.Cell
}

func (s *lifo) push(c gridgraph.Cell) { s.items = append(s.items, c) }

func (s *lifo) pop() gridgraph.Cell {
	n := len(s.items) - 1
	c := s.items[n]
	s.items = s.items[:n]

	return c
}

func (s *lifo) len() int { return len(s.items) }

// costItem is a heap entry of the cost-aware strategies.
// priority is g for UCS and g+h for A*; cost is g.
type costItem struct {
	cell     gridgraph.Cell
	priority int64
	cost     int64
}

// costPQ is a min-heap of costItem ordered by (priority, cost, row, col).
// Stale entries are left in place ("lazy decrease-key") and dropped on pop.
type costPQ []costItem

// Len returns the number of items in the heap.
func (pq costPQ) Len() int { return len(pq) }

// Less orders by priority, then cost, then cell, so equal-priority pops are deterministic.
func (pq costPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	return a.cell.Col < b.cell.Col
}

// Swap swaps two elements in the heap.
func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; called by heap.Push.
func (pq *costPQ) Push(x any) { *pq = append(*pq, x.(costItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *costPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
