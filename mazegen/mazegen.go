// Package mazegen draws random solvable mazes.
//
// Every cell independently becomes a wall with probability WallChance. The
// top-left and bottom-right corners are always open. A draw is accepted once
// a breadth-first search connects the corners; otherwise the grid is drawn
// again, up to MaxAttempts times. With WithRepair the first draw is kept and
// the fewest walls needed to connect the corners are knocked down instead.
//
// Errors:
//   - ErrBadDimensions if rows or cols < 1.
//   - ErrBadWallChance if WallChance is outside [0,1] or NaN.
//   - ErrUnsolvable if no attempt connected the corners.
package mazegen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

// Sentinel errors for maze generation.
var (
	ErrBadDimensions = errors.New("mazegen: rows and cols must be at least 1")
	ErrBadWallChance = errors.New("mazegen: wall chance must be within [0,1]")
	ErrUnsolvable    = errors.New("mazegen: no solvable maze within the attempt limit")
)

// Generate returns a rows×cols maze whose corners (0,0) and (rows-1,cols-1)
// are connected.
func Generate(rows, cols int, opts ...Option) (*gridgraph.GridGraph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	o := newOptions(opts...)
	if !(o.WallChance >= 0 && o.WallChance <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadWallChance, o.WallChance)
	}

	start, end := Corners(rows, cols)
	attempts := o.MaxAttempts
	if o.Repair {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		gg, err := gridgraph.NewGridGraph(draw(rows, cols, o))
		if err != nil {
			return nil, err
		}
		ok, err := Solvable(gg, start, end)
		if err != nil {
			return nil, err
		}
		if ok {
			return gg, nil
		}
		if o.Repair {
			return repair(gg, start, end)
		}
	}

	return nil, fmt.Errorf("%w: %d attempts at %dx%d", ErrUnsolvable, attempts, rows, cols)
}

// Corners returns the fixed start and end cells of a rows×cols maze.
func Corners(rows, cols int) (start, end gridgraph.Cell) {
	return gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: rows - 1, Col: cols - 1}
}

// Solvable reports whether BFS finds a path from start to end.
func Solvable(g search.Graph, start, end gridgraph.Cell) (bool, error) {
	res, err := search.BFS(g, start, end)
	if err != nil {
		return false, err
	}
	return res.Found(), nil
}

// draw fills a grid in row-major order. A cell stays open only when the
// draw exceeds WallChance.
func draw(rows, cols int, o Options) [][]int {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if o.Rand.Float64() <= o.WallChance {
				values[r][c] = gridgraph.Wall
			}
		}
	}
	values[0][0] = gridgraph.Open
	values[rows-1][cols-1] = gridgraph.Open

	return values
}

// repair knocks down the walls on the cheapest breach between the corners.
func repair(gg *gridgraph.GridGraph, start, end gridgraph.Cell) (*gridgraph.GridGraph, error) {
	path, _, err := gg.BreachPath(start, end)
	if err != nil {
		return nil, err
	}
	return gg.Carve(path)
}
