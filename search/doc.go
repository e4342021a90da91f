// Package search finds a path between two cells of a grid graph with one of
// four interchangeable strategies:
//
//   - BFS   – FIFO queue; fewest edges on equal-weight graphs.
//   - DFS   – LIFO stack; some path, no optimality guarantee.
//   - UCS   – min-heap on accumulated cost; minimum total weight.
//   - AStar – min-heap on cost + Manhattan estimate; minimum total weight,
//     usually with fewer expansions than UCS.
//
// All four share one traversal context (frontier, parent map, cost map,
// visited sequence) owned by the call, and return a *Result with:
//
//   - Parents: predecessor links, start mapped to gridgraph.NoCell.
//   - Path:    start..end inclusive, empty when end is unreachable.
//   - Visited: expanded cells in expansion order.
//   - Cost:    best known cost per cell (UCS/AStar only).
//
// Graphs are read-only, so several searches may run over the same graph at
// once; each call allocates its own state and nothing else is shared.
//
// Errors:
//
//   - ErrNilGraph:        graph is nil.
//   - ErrCellNotOpen:     start or end is a wall or outside the grid.
//   - ErrNegativeWeight:  UCS/AStar met a negative edge.
//   - ErrUnknownStrategy: Search or ParseStrategy got an unknown strategy.
//
// An unreachable end is not an error.
//
// Example:
//
//	gg, _ := gridgraph.NewGridGraph([][]int{{0, 0}, {1, 0}})
//	res, err := search.AStar(gg, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path) // [(0,0) (0,1) (1,1)]
package search
