// Package mazefile reads and writes maze layouts as YAML documents.
// JSON is a subset of YAML, so JSON layouts decode as well.
//
// A layout carries its grid in one of two forms:
//
//	grid: [[0, 0, 1], [1, 0, 1], [1, 0, 0]]
//	rows: ["..#", "#.#", "#.."]
//
// Start and end are optional "row,col" scalars; they default to the
// top-left and bottom-right corners.
package mazefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for layout decoding.
var (
	ErrNoGrid        = errors.New("mazefile: layout has neither grid nor rows")
	ErrAmbiguousGrid = errors.New("mazefile: layout has both grid and rows")
	ErrBadSymbol     = errors.New("mazefile: unknown cell symbol")
)

// Cell symbols accepted in the rows form. Written layouts use the first pair.
const (
	OpenSymbol = '.'
	WallSymbol = '#'
)

// Layout is one maze document.
type Layout struct {
	Name  string          `yaml:"name,omitempty" json:"name,omitempty"`
	Grid  [][]int         `yaml:"grid,omitempty,flow" json:"grid,omitempty"`
	Rows  []string        `yaml:"rows,omitempty" json:"rows,omitempty"`
	Start *gridgraph.Cell `yaml:"start,omitempty" json:"start,omitempty"`
	End   *gridgraph.Cell `yaml:"end,omitempty" json:"end,omitempty"`
}

// Demo returns the built-in 4×9 maze: a single winding route from (0,0)
// to (3,8) with a dead end off row 2.
func Demo() *Layout {
	start, end := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 3, Col: 8}
	return &Layout{
		Name: "demo",
		Grid: [][]int{
			{0, 0, 1, 1, 1, 1, 1, 1, 1},
			{1, 0, 0, 0, 1, 1, 1, 1, 1},
			{0, 0, 1, 0, 1, 1, 1, 1, 1},
			{1, 1, 1, 0, 0, 0, 0, 0, 0},
		},
		Start: &start,
		End:   &end,
	}
}

// Decode reads a single layout document from r.
func Decode(r io.Reader) (*Layout, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoGrid
		}
		return nil, fmt.Errorf("mazefile: decode: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load decodes the layout stored at path.
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Encode writes l to w as YAML.
func Encode(w io.Writer, l *Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("mazefile: encode: %w", err)
	}
	return enc.Close()
}

// Save writes l to path, replacing any existing file.
func Save(path string, l *Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FromGraph builds a rows-form layout from gg with explicit corner endpoints.
func FromGraph(name string, gg *gridgraph.GridGraph) *Layout {
	rows := make([]string, gg.Rows())
	var sb strings.Builder
	for r := range rows {
		sb.Reset()
		for c := 0; c < gg.Cols(); c++ {
			if gg.IsOpen(gridgraph.Cell{Row: r, Col: c}) {
				sb.WriteByte(OpenSymbol)
			} else {
				sb.WriteByte(WallSymbol)
			}
		}
		rows[r] = sb.String()
	}
	start := gridgraph.Cell{Row: 0, Col: 0}
	end := gridgraph.Cell{Row: gg.Rows() - 1, Col: gg.Cols() - 1}

	return &Layout{Name: name, Rows: rows, Start: &start, End: &end}
}

// Validate checks that exactly one grid form is present.
func (l *Layout) Validate() error {
	switch {
	case len(l.Grid) > 0 && len(l.Rows) > 0:
		return ErrAmbiguousGrid
	case len(l.Grid) == 0 && len(l.Rows) == 0:
		return ErrNoGrid
	}
	return nil
}

// Values returns the layout as a 0/1 matrix. The rows form accepts
// '.' or '0' for open cells and '#' or '1' for walls.
func (l *Layout) Values() ([][]int, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if len(l.Grid) > 0 {
		out := make([][]int, len(l.Grid))
		for i, row := range l.Grid {
			out[i] = append([]int(nil), row...)
		}
		return out, nil
	}

	out := make([][]int, len(l.Rows))
	for r, line := range l.Rows {
		out[r] = make([]int, 0, len(line))
		for c, ch := range []rune(line) {
			switch ch {
			case OpenSymbol, '0':
				out[r] = append(out[r], gridgraph.Open)
			case WallSymbol, '1':
				out[r] = append(out[r], gridgraph.Wall)
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadSymbol, ch, r, c)
			}
		}
	}
	return out, nil
}

// Graph builds the grid graph for the layout.
func (l *Layout) Graph() (*gridgraph.GridGraph, error) {
	values, err := l.Values()
	if err != nil {
		return nil, err
	}
	return gridgraph.NewGridGraph(values)
}

// Endpoints returns the layout's start and end, falling back to the
// corners of gg when unset.
func (l *Layout) Endpoints(gg *gridgraph.GridGraph) (start, end gridgraph.Cell) {
	start = gridgraph.Cell{Row: 0, Col: 0}
	end = gridgraph.Cell{Row: gg.Rows() - 1, Col: gg.Cols() - 1}
	if l.Start != nil {
		start = *l.Start
	}
	if l.End != nil {
		end = *l.End
	}
	return start, end
}
