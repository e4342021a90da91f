package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// cell is a short constructor for test tables.
func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

// exampleGrid is the 3×3 maze whose only route is (0,0)→(0,1)→(1,1)→(2,1)→(2,2).
var exampleGrid = [][]int{
	{0, 0, 1},
	{1, 0, 1},
	{1, 0, 0},
}

// openGrid returns an r×c grid with no walls.
func openGrid(r, c int) [][]int {
	g := make([][]int, r)
	for i := range g {
		g[i] = make([]int, c)
	}
	return g
}

// randomGrid returns an n×n grid with ~wallChance walls and open corners.
func randomGrid(seed int64, n int, wallChance float64) [][]int {
	rnd := rand.New(rand.NewSource(seed))
	g := make([][]int, n)
	for r := range g {
		g[r] = make([]int, n)
		for c := range g[r] {
			if rnd.Float64() < wallChance {
				g[r][c] = gridgraph.Wall
			}
		}
	}
	g[0][0], g[n-1][n-1] = gridgraph.Open, gridgraph.Open

	return g
}

// mustGrid builds a GridGraph or fails the test.
func mustGrid(t testing.TB, values [][]int) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(values)
	require.NoError(t, err)
	return gg
}

// weightedDetour is a directed graph where the direct edge A→C (weight 10)
// is dearer than the detour A→B→C (weight 1+1).
//
//	A(0,0) ──10──▶ C(0,2)
//	   └─1─▶ B(0,1) ─1─┘
//
// D(5,5) is an isolated node.
func weightedDetour() gridgraph.AdjacencyList {
	a, b, c, d := cell(0, 0), cell(0, 1), cell(0, 2), cell(5, 5)
	return gridgraph.AdjacencyList{
		a: {{Cell: c, Weight: 10}, {Cell: b, Weight: 1}},
		b: {{Cell: c, Weight: 1}},
		c: nil,
		d: nil,
	}
}
