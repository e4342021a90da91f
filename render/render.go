// Package render draws grid graphs and search results as plain text.
//
//	S+#
//	#*#
//	#*E
//
// Each cell is one character. Overlays are applied in order: visited,
// path, then endpoints, so later layers win.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Cell glyphs.
const (
	GlyphWall    = '#'
	GlyphOpen    = '.'
	GlyphVisited = '+'
	GlyphPath    = '*'
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
)

// Option adds an overlay to ASCII.
type Option func(*overlay)

type overlay struct {
	visited    []gridgraph.Cell
	path       []gridgraph.Cell
	start, end *gridgraph.Cell
}

// WithVisited marks expanded cells.
func WithVisited(cells []gridgraph.Cell) Option {
	return func(o *overlay) { o.visited = cells }
}

// WithPath marks the cells of a path.
func WithPath(cells []gridgraph.Cell) Option {
	return func(o *overlay) { o.path = cells }
}

// WithEndpoints marks the start and end cells.
func WithEndpoints(start, end gridgraph.Cell) Option {
	return func(o *overlay) { o.start, o.end = &start, &end }
}

// ASCII renders gg one row per line, each line newline-terminated.
// Overlay cells outside the grid are ignored.
func ASCII(gg *gridgraph.GridGraph, opts ...Option) string {
	var o overlay
	for _, opt := range opts {
		opt(&o)
	}

	canvas := make([][]byte, gg.Rows())
	for r := range canvas {
		canvas[r] = make([]byte, gg.Cols())
		for c := range canvas[r] {
			canvas[r][c] = GlyphWall
			if gg.IsOpen(gridgraph.Cell{Row: r, Col: c}) {
				canvas[r][c] = GlyphOpen
			}
		}
	}
	paint := func(cells []gridgraph.Cell, glyph byte) {
		for _, c := range cells {
			if gg.InBounds(c) {
				canvas[c.Row][c.Col] = glyph
			}
		}
	}
	paint(o.visited, GlyphVisited)
	paint(o.path, GlyphPath)
	if o.start != nil {
		paint([]gridgraph.Cell{*o.start}, GlyphStart)
	}
	if o.end != nil {
		paint([]gridgraph.Cell{*o.end}, GlyphEnd)
	}

	var sb strings.Builder
	sb.Grow(gg.Rows() * (gg.Cols() + 1))
	for _, line := range canvas {
		sb.Write(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Adjacency lists every open cell of gg in row-major order with its
// neighbors, one cell per line:
//
//	(0,1): (1,1) (0,0)
func Adjacency(gg *gridgraph.GridGraph) string {
	var sb strings.Builder
	for _, c := range gg.OpenCells() {
		sb.WriteString(c.String())
		sb.WriteByte(':')
		for _, nb := range gg.Neighbors(c) {
			sb.WriteByte(' ')
			sb.WriteString(nb.Cell.String())
			if nb.Weight != 1 {
				fmt.Fprintf(&sb, "×%d", nb.Weight)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
