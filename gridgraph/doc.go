// Package gridgraph treats a 2D grid of open cells and walls as a graph,
// the graph provider consumed by package search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of Open (0) / Wall (1) values.
//   - Builds, once, an adjacency list mapping every open cell to its open
//     up/down/left/right neighbors with unit weight.
//   - Identifies connected components of open cells.
//   - Computes minimal wall breaches (0-1 BFS) between two cells and carves them.
//   - AdjacencyList lets callers hand-build graphs, including weighted ones.
//
// Why:
//
//   - Maze solving: the search strategies only need Neighbors and Contains.
//   - Maze repair: knock down the fewest walls to make a maze solvable.
//   - Diagnostics: the component of a start cell is exactly what an
//     exhaustive search can reach.
//
// Complexity:
//
//   - NewGridGraph:        O(R×C), Memory: O(R×C).
//   - Neighbors:           O(1) (copy of at most 4 entries).
//   - ConnectedComponents: O(R×C×4), Memory: O(R×C).
//   - BreachPath:          O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidValue: a value other than 0 or 1.
//   - ErrOutOfBounds: a cell outside the grid.
//   - ErrBadCell: a cell literal that is not "row,col".
package gridgraph
