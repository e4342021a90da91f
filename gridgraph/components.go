package gridgraph

// ConnectedComponents finds all contiguous regions of open cells under
// 4-connectivity. Components are ordered by their first cell in row-major
// order; cells inside a component are in BFS discovery order from that cell.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.rows*gg.cols)
	var comps [][]Cell

	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			root := Cell{Row: r, Col: c}
			if gg.values[r][c] != Open || seen[gg.index(root)] {
				continue
			}
			comps = append(comps, gg.flood(root, seen))
		}
	}

	return comps
}

// ComponentOf returns the component containing c, or nil if c is not open.
func (gg *GridGraph) ComponentOf(c Cell) []Cell {
	if !gg.IsOpen(c) {
		return nil
	}
	return gg.flood(c, make([]bool, gg.rows*gg.cols))
}

// flood collects the open cells reachable from root, marking them in seen.
func (gg *GridGraph) flood(root Cell, seen []bool) []Cell {
	queue := []Cell{root}
	seen[gg.index(root)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range gg.adj[queue[qi]] {
			i := gg.index(n.Cell)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n.Cell)
			}
		}
	}

	return queue
}
