package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// TestBreachPath_BasicLine tests a 1×3 line with a single wall between two open cells.
// Grid: [0,1,0]
// Expected: one wall, path (0,0)→(0,1)→(0,2).
func TestBreachPath_BasicLine(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{0, 1, 0}})
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	path, walls, err := gg.BreachPath(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 2})
	if err != nil {
		t.Fatalf("BreachPath error: %v", err)
	}
	want := []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	if walls != 1 {
		t.Errorf("walls = %d; want 1", walls)
	}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestBreachPath_PrefersOpenDetour verifies a free detour beats breaking a wall.
// Grid:
//
//	0 1 0
//	0 0 0
func TestBreachPath_PrefersOpenDetour(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 1, 0},
		{0, 0, 0},
	})
	path, walls, err := gg.BreachPath(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 2})
	if err != nil {
		t.Fatalf("BreachPath error: %v", err)
	}
	if walls != 0 {
		t.Errorf("walls = %d; want 0", walls)
	}
	for _, c := range path {
		if gg.Value(c) == gridgraph.Wall {
			t.Errorf("path crosses wall at %s", c)
		}
	}
}

// TestBreachPath_OutOfBounds verifies ErrOutOfBounds for either endpoint.
func TestBreachPath_OutOfBounds(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{{0}})
	if _, _, err := gg.BreachPath(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 0}); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("error = %v; want ErrOutOfBounds", err)
	}
	if _, _, err := gg.BreachPath(gridgraph.Cell{Row: -1, Col: 0}, gridgraph.Cell{Row: 0, Col: 0}); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("error = %v; want ErrOutOfBounds", err)
	}
}

// TestCarve verifies that carving the breach connects the endpoints.
func TestCarve(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 1, 1},
		{1, 1, 1},
		{1, 1, 0},
	})
	from, to := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2}
	path, walls, err := gg.BreachPath(from, to)
	if err != nil {
		t.Fatalf("BreachPath error: %v", err)
	}
	if walls != 3 {
		t.Errorf("walls = %d; want 3", walls)
	}
	carved, err := gg.Carve(path)
	if err != nil {
		t.Fatalf("Carve error: %v", err)
	}
	comp := carved.ComponentOf(from)
	found := false
	for _, c := range comp {
		if c == to {
			found = true
		}
	}
	if !found {
		t.Errorf("carved grid does not connect %s and %s", from, to)
	}
	// the original is untouched
	if gg.IsOpen(gridgraph.Cell{Row: 0, Col: 1}) && gg.IsOpen(gridgraph.Cell{Row: 1, Col: 0}) {
		t.Error("Carve mutated the receiver")
	}
}
