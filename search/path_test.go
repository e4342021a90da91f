package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

func TestReconstructPath(t *testing.T) {
	a, b, c := cell(0, 0), cell(0, 1), cell(0, 2)
	cases := []struct {
		name    string
		parents search.ParentMap
		end     gridgraph.Cell
		want    []gridgraph.Cell
	}{
		{"StartOnly", search.ParentMap{a: gridgraph.NoCell}, a, []gridgraph.Cell{a}},
		{"Chain", search.ParentMap{a: gridgraph.NoCell, b: a, c: b}, c, []gridgraph.Cell{a, b, c}},
		{"EndMissing", search.ParentMap{a: gridgraph.NoCell}, c, nil},
		{"BrokenChain", search.ParentMap{c: b}, c, nil},
		{"Cycle", search.ParentMap{a: b, b: a}, a, nil},
		{"Nil", nil, a, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := search.ReconstructPath(tc.parents, tc.end)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReconstructPath_Idempotent(t *testing.T) {
	gg := mustGrid(t, randomGrid(3, 10, 0.2))
	res, err := search.BFS(gg, cell(0, 0), cell(9, 9))
	require.NoError(t, err)

	first := search.ReconstructPath(res.Parents, cell(9, 9))
	second := search.ReconstructPath(res.Parents, cell(9, 9))
	assert.Equal(t, first, second)
	assert.Equal(t, res.Path, first)
}

func TestPathCost(t *testing.T) {
	gg := mustGrid(t, exampleGrid)

	cost, err := search.PathCost(gg, []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(1, 1)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cost)

	cost, err = search.PathCost(gg, nil)
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = search.PathCost(gg, []gridgraph.Cell{cell(0, 0), cell(1, 1)})
	assert.ErrorIs(t, err, search.ErrBrokenPath)

	_, err = search.PathCost(nil, nil)
	assert.ErrorIs(t, err, search.ErrNilGraph)

	cost, err = search.PathCost(weightedDetour(), []gridgraph.Cell{cell(0, 0), cell(0, 2)})
	require.NoError(t, err)
	assert.Equal(t, int64(10), cost)
}
