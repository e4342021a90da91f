// Package search defines the graph contract, result type, options and
// sentinel errors shared by the four search strategies.
package search

import (
	"errors"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrCellNotOpen is returned when start or end is not a node of the graph
	// (a wall or an out-of-bounds cell). It is distinct from "no path".
	ErrCellNotOpen = errors.New("search: cell not open")

	// ErrNegativeWeight is returned when a cost-aware strategy meets a negative edge.
	ErrNegativeWeight = errors.New("search: negative edge weight encountered")

	// ErrUnknownStrategy is returned for an unrecognized strategy value or name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrBrokenPath is returned by PathCost when two consecutive cells are not connected.
	ErrBrokenPath = errors.New("search: consecutive path cells are not connected")
)

// Graph is the read-only graph contract consumed by every strategy.
// Neighbors must be a pure, deterministic function of the graph.
// Both *gridgraph.GridGraph and gridgraph.AdjacencyList satisfy it.
type Graph interface {
	Neighbors(c gridgraph.Cell) []gridgraph.Neighbor
	Contains(c gridgraph.Cell) bool
}

// ParentMap maps each discovered cell to the cell it was reached from.
// The start cell maps to gridgraph.NoCell.
type ParentMap map[gridgraph.Cell]gridgraph.Cell

// Result holds the outcome of a single search:
//   - Parents: predecessor links of every discovered cell.
//   - Path: start..end inclusive, empty if end was never discovered.
//   - Visited: expanded cells, in expansion order.
//   - Cost: lowest known cost from start per cell (UCS and A* only, nil otherwise).
type Result struct {
	Strategy Strategy
	Parents  ParentMap
	Path     []gridgraph.Cell
	Visited  []gridgraph.Cell
	Cost     map[gridgraph.Cell]int64
}

// Found reports whether a path to the end cell was discovered.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Expanded is the number of cells taken off the frontier and expanded.
func (r *Result) Expanded() int { return len(r.Visited) }

// Discovered is the number of cells that received a parent, start included.
func (r *Result) Discovered() int { return len(r.Parents) }

// PathLength is the number of edges on the path (0 when not found).
func (r *Result) PathLength() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, to gridgraph.Cell) int64

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds hooks and tunables for a search.
type Options struct {
	// OnExpand is called each time a cell is taken off the frontier and expanded.
	OnExpand func(c gridgraph.Cell)

	// OnDiscover is called each time a cell's parent is written
	// (first discovery, or a cheaper route for UCS and A*).
	OnDiscover func(c, parent gridgraph.Cell)

	// Heuristic drives A*. It must be admissible for A* to stay optimal.
	// Ignored by the other strategies.
	Heuristic Heuristic
}

// DefaultOptions returns Options with no-op hooks and the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		OnExpand:   func(gridgraph.Cell) {},
		OnDiscover: func(_, _ gridgraph.Cell) {},
		Heuristic:  Manhattan,
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(c gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run on every parent assignment.
func WithOnDiscover(fn func(c, parent gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithHeuristic replaces the A* heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
