// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/mazepath.
package gridgraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidValue indicates a cell value other than Open or Wall.
	ErrInvalidValue = errors.New("gridgraph: cell value must be 0 (open) or 1 (wall)")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBadCell indicates a cell literal that does not parse as "row,col".
	ErrBadCell = errors.New("gridgraph: cell must be formatted as \"row,col\"")
)

// Grid cell values.
const (
	// Open marks a traversable cell.
	Open = 0
	// Wall marks a blocked cell.
	Wall = 1
)

// Cell is a grid coordinate used as a graph node identifier.
// It is comparable and is used directly as a map key.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// NoCell is the "no predecessor" marker stored as the start cell's parent.
var NoCell = Cell{Row: -1, Col: -1}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// MarshalText encodes the cell as "row,col". Cells therefore travel as
// strings in JSON/YAML and can be used as JSON object keys.
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)), nil
}

// UnmarshalText parses "row,col".
func (c *Cell) UnmarshalText(text []byte) error {
	parsed, err := ParseCell(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// ParseCell parses "row,col" (surrounding spaces and parentheses allowed).
func ParseCell(s string) (Cell, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}

	return Cell{Row: row, Col: col}, nil
}

// Neighbor is an adjacent cell together with the cost of stepping onto it.
type Neighbor struct {
	Cell   Cell  `json:"cell"`
	Weight int64 `json:"weight"`
}

// AdjacencyList maps each open cell to its ordered neighbors.
// It satisfies the graph contract consumed by package search and is the
// way to hand-build graphs with non-unit weights.
type AdjacencyList map[Cell][]Neighbor

// Neighbors returns the neighbors recorded for c, or nil if c is absent.
func (a AdjacencyList) Neighbors(c Cell) []Neighbor {
	return a[c]
}

// Contains reports whether c is a node of the list.
func (a AdjacencyList) Contains(c Cell) bool {
	_, ok := a[c]
	return ok
}

// GridGraph treats a 2D grid of Open/Wall values as a graph. It is immutable once built.
// values[row][col] holds the original input value; adj holds the adjacency list of open cells.
type GridGraph struct {
	rows, cols int
	values     [][]int
	adj        AdjacencyList
}

// neighborOffsets lists the 4-connected moves in neighbor order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
