package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

func TestBFS_NilGraph(t *testing.T) {
	res, err := search.BFS(nil, cell(0, 0), cell(0, 0))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}

func TestBFS_CellNotOpen(t *testing.T) {
	gg := mustGrid(t, exampleGrid)

	_, err := search.BFS(gg, cell(1, 0), cell(2, 2)) // start on a wall
	assert.ErrorIs(t, err, search.ErrCellNotOpen)
	assert.Contains(t, err.Error(), "start")

	_, err = search.BFS(gg, cell(0, 0), cell(3, 3)) // end out of bounds
	assert.ErrorIs(t, err, search.ErrCellNotOpen)
	assert.Contains(t, err.Error(), "end")
}

func TestBFS_ExampleMaze(t *testing.T) {
	gg := mustGrid(t, exampleGrid)
	res, err := search.BFS(gg, cell(0, 0), cell(2, 2))
	require.NoError(t, err)

	want := []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(1, 1), cell(2, 1), cell(2, 2)}
	assert.Equal(t, want, res.Path)
	assert.Equal(t, want, res.Visited)
	assert.Equal(t, search.StrategyBFS, res.Strategy)
	assert.Equal(t, gridgraph.NoCell, res.Parents[cell(0, 0)])
	assert.Equal(t, cell(1, 1), res.Parents[cell(2, 1)])
	assert.Nil(t, res.Cost, "BFS keeps no cost map")
	assert.True(t, res.Found())
	assert.Equal(t, 4, res.PathLength())
}

func TestBFS_OpenGridOrder(t *testing.T) {
	gg := mustGrid(t, openGrid(3, 3))
	res, err := search.BFS(gg, cell(0, 0), cell(2, 2))
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Cell{
		cell(0, 0), cell(1, 0), cell(0, 1), cell(2, 0), cell(1, 1),
		cell(0, 2), cell(2, 1), cell(1, 2), cell(2, 2),
	}, res.Visited)
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(1, 0), cell(2, 0), cell(2, 1), cell(2, 2)}, res.Path)
}

func TestBFS_StartIsEnd(t *testing.T) {
	gg := mustGrid(t, exampleGrid)
	res, err := search.BFS(gg, cell(1, 1), cell(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{cell(1, 1)}, res.Path)
	assert.Equal(t, []gridgraph.Cell{cell(1, 1)}, res.Visited)
	assert.Equal(t, 0, res.PathLength())
}

func TestBFS_FirstDiscoveryIsPermanent(t *testing.T) {
	res, err := search.BFS(weightedDetour(), cell(0, 0), cell(0, 2))
	require.NoError(t, err)

	// BFS ignores weights: the direct edge wins because it is discovered first.
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(0, 2)}, res.Path)
	assert.Equal(t, cell(0, 0), res.Parents[cell(0, 2)])
}

func TestBFS_Hooks(t *testing.T) {
	gg := mustGrid(t, openGrid(3, 3))
	var expanded []gridgraph.Cell
	discovered := 0
	res, err := search.BFS(gg, cell(0, 0), cell(2, 2),
		search.WithOnExpand(func(c gridgraph.Cell) { expanded = append(expanded, c) }),
		search.WithOnDiscover(func(_, _ gridgraph.Cell) { discovered++ }),
		search.WithOnExpand(nil), // nil hooks are ignored
	)
	require.NoError(t, err)
	assert.Equal(t, res.Visited, expanded)
	assert.Equal(t, res.Discovered()-1, discovered)
}
