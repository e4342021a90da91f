package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty, ragged or non-binary inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 1}, {0}}, gridgraph.ErrNonRectangular},
		{"InvalidValue", [][]int{{0, 2}}, gridgraph.ErrInvalidValue},
		{"NegativeValue", [][]int{{-1, 0}}, gridgraph.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, c := range valid {
		if !gg.InBounds(c) {
			t.Errorf("InBounds(%s)=false; want true", c)
		}
	}
	invalid := []gridgraph.Cell{{Row: 0, Col: -1}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: -1, Col: 2}}
	for _, c := range invalid {
		if gg.InBounds(c) {
			t.Errorf("InBounds(%s)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies up/down/left/right order, unit weights and wall exclusion.
func TestNeighbors_Order(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 0, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	got := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Neighbor{
		{Cell: gridgraph.Cell{Row: 0, Col: 1}, Weight: 1},
		{Cell: gridgraph.Cell{Row: 2, Col: 1}, Weight: 1},
		{Cell: gridgraph.Cell{Row: 1, Col: 0}, Weight: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}

	if nb := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 2}); nb != nil {
		t.Errorf("Neighbors(wall) = %v; want nil", nb)
	}
	if nb := gg.Neighbors(gridgraph.Cell{Row: 5, Col: 5}); nb != nil {
		t.Errorf("Neighbors(out of bounds) = %v; want nil", nb)
	}
}

// TestContains verifies that only open cells are graph nodes.
func TestContains(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{{0, 1}})
	if !gg.Contains(gridgraph.Cell{Row: 0, Col: 0}) {
		t.Error("Contains(open) = false; want true")
	}
	if gg.Contains(gridgraph.Cell{Row: 0, Col: 1}) {
		t.Error("Contains(wall) = true; want false")
	}
	if gg.Contains(gridgraph.Cell{Row: 3, Col: 0}) {
		t.Error("Contains(out of bounds) = true; want false")
	}
}

// TestImmutability verifies that neither the input slice nor returned
// slices can alter the graph.
func TestImmutability(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	gg, _ := gridgraph.NewGridGraph(grid)

	grid[0][1] = 1
	if !gg.IsOpen(gridgraph.Cell{Row: 0, Col: 1}) {
		t.Error("mutating the input grid leaked into the graph")
	}

	nb := gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0})
	nb[0].Weight = 99
	if again := gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0}); again[0].Weight != 1 {
		t.Errorf("mutating Neighbors result leaked: weight=%d", again[0].Weight)
	}

	vals := gg.Values()
	vals[1][1] = 1
	if gg.Value(gridgraph.Cell{Row: 1, Col: 1}) != gridgraph.Open {
		t.Error("mutating Values result leaked into the graph")
	}
}

// TestOpenCells checks row-major order of open cells.
func TestOpenCells(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 1},
		{0, 0},
	})
	want := []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if got := gg.OpenCells(); !reflect.DeepEqual(got, want) {
		t.Errorf("OpenCells = %v; want %v", got, want)
	}
	if got := len(gg.Adjacency()); got != 3 {
		t.Errorf("len(Adjacency) = %d; want 3", got)
	}
}

//----------------------------------------------------------------------------//
// Cell text form
//----------------------------------------------------------------------------//

// TestParseCell covers accepted spellings and rejections.
func TestParseCell(t *testing.T) {
	ok := map[string]gridgraph.Cell{
		"0,0":       {Row: 0, Col: 0},
		" 2 , 3 ":   {Row: 2, Col: 3},
		"(4,5)":     {Row: 4, Col: 5},
		"-1,-1":     gridgraph.NoCell,
		"10,200":    {Row: 10, Col: 200},
		"( 7 , 8 )": {Row: 7, Col: 8},
	}
	for in, want := range ok {
		got, err := gridgraph.ParseCell(in)
		if err != nil || got != want {
			t.Errorf("ParseCell(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "1", "1,2,3", "a,b", "1;2"} {
		if _, err := gridgraph.ParseCell(in); !errors.Is(err, gridgraph.ErrBadCell) {
			t.Errorf("ParseCell(%q) error = %v; want ErrBadCell", in, err)
		}
	}
}

// TestCellText verifies MarshalText/UnmarshalText agree with String.
func TestCellText(t *testing.T) {
	c := gridgraph.Cell{Row: 3, Col: 9}
	b, _ := c.MarshalText()
	if string(b) != "3,9" {
		t.Errorf("MarshalText = %q; want %q", b, "3,9")
	}
	var back gridgraph.Cell
	if err := back.UnmarshalText(b); err != nil || back != c {
		t.Errorf("UnmarshalText(%q) = %v, %v", b, back, err)
	}
	if c.String() != "(3,9)" {
		t.Errorf("String = %q; want (3,9)", c.String())
	}
}

// TestAdjacencyList verifies the map form satisfies the graph contract.
func TestAdjacencyList(t *testing.T) {
	a := gridgraph.AdjacencyList{
		{Row: 0, Col: 0}: {{Cell: gridgraph.Cell{Row: 0, Col: 1}, Weight: 5}},
		{Row: 0, Col: 1}: nil,
	}
	if !a.Contains(gridgraph.Cell{Row: 0, Col: 1}) {
		t.Error("Contains(key with nil neighbors) = false; want true")
	}
	if a.Contains(gridgraph.Cell{Row: 1, Col: 1}) {
		t.Error("Contains(missing) = true; want false")
	}
	if nb := a.Neighbors(gridgraph.Cell{Row: 0, Col: 0}); len(nb) != 1 || nb[0].Weight != 5 {
		t.Errorf("Neighbors = %v", nb)
	}
}
