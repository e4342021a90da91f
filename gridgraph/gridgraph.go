// Package gridgraph turns a 2D grid of open cells and walls into a graph.
// It supports:
//
//   - 4-connectivity (up, down, left, right) with unit edge weights
//   - An adjacency list built once at construction
//   - Identification of connected components of open cells
//   - Minimal wall-breach paths between two cells
//
// Cells with value Open (0) are nodes; cells with value Wall (1) are not.
package gridgraph

import (
	"fmt"
	"slices"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of Open/Wall values. It deep-copies the input to ensure immutability and
// precomputes the adjacency list of every open cell.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrInvalidValue for values
// other than Open or Wall.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v != Open && v != Wall {
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrInvalidValue, v, r, c)
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}
	gg := &GridGraph{
		rows:   h,
		cols:   w,
		values: cells,
	}
	gg.adj = gg.buildAdjacency()

	return gg, nil
}

// buildAdjacency records, for every open cell, its open in-bounds neighbors
// with unit weight, in up/down/left/right order.
func (gg *GridGraph) buildAdjacency() AdjacencyList {
	adj := make(AdjacencyList)
	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			if gg.values[r][c] != Open {
				continue
			}
			nbrs := make([]Neighbor, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				n := Cell{Row: r + d[0], Col: c + d[1]}
				if gg.IsOpen(n) {
					nbrs = append(nbrs, Neighbor{Cell: n, Weight: 1})
				}
			}
			adj[Cell{Row: r, Col: c}] = nbrs
		}
	}

	return adj
}

// Rows returns the grid height.
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the grid width.
func (gg *GridGraph) Cols() int { return gg.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.rows && c.Col >= 0 && c.Col < gg.cols
}

// IsOpen reports whether c is in bounds and not a wall.
func (gg *GridGraph) IsOpen(c Cell) bool {
	return gg.InBounds(c) && gg.values[c.Row][c.Col] == Open
}

// Value returns the original grid value at c. Out-of-bounds cells read as Wall.
func (gg *GridGraph) Value(c Cell) int {
	if !gg.InBounds(c) {
		return Wall
	}
	return gg.values[c.Row][c.Col]
}

// Contains reports whether c is a node of the graph (an open cell).
func (gg *GridGraph) Contains(c Cell) bool {
	_, ok := gg.adj[c]
	return ok
}

// Neighbors returns a copy of the open neighbors of c with their edge weights.
// Walls and out-of-bounds cells have no neighbors.
func (gg *GridGraph) Neighbors(c Cell) []Neighbor {
	return slices.Clone(gg.adj[c])
}

// OpenCells lists every open cell in row-major order.
func (gg *GridGraph) OpenCells() []Cell {
	out := make([]Cell, 0, len(gg.adj))
	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			if gg.values[r][c] == Open {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}

	return out
}

// Values returns a deep copy of the grid.
func (gg *GridGraph) Values() [][]int {
	out := make([][]int, gg.rows)
	for r := range gg.values {
		out[r] = slices.Clone(gg.values[r])
	}

	return out
}

// Adjacency returns a copy of the adjacency list.
func (gg *GridGraph) Adjacency() AdjacencyList {
	out := make(AdjacencyList, len(gg.adj))
	for c, nbrs := range gg.adj {
		out[c] = slices.Clone(nbrs)
	}

	return out
}

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (gg *GridGraph) index(c Cell) int {
	return c.Row*gg.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.cols, Col: idx % gg.cols}
}
