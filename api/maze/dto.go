// Package mazeapi provides the request and response shapes of the maze endpoints.
package mazeapi

import (
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/search"
)

// SolveRequest is a layout plus the strategy to run over it.
// Cells are "row,col" strings.
type SolveRequest struct {
	mazefile.Layout
	Strategy       string `json:"strategy"`
	IncludeVisited bool   `json:"include_visited"`
}

// SolveResponse reports one search.
type SolveResponse struct {
	Strategy   search.Strategy  `json:"strategy"`
	Start      gridgraph.Cell   `json:"start"`
	End        gridgraph.Cell   `json:"end"`
	Found      bool             `json:"found"`
	Path       []gridgraph.Cell `json:"path"`
	PathLength int              `json:"path_length"`
	PathCost   int64            `json:"path_cost"`
	Expanded   int              `json:"expanded"`
	Discovered int              `json:"discovered"`
	Visited    []gridgraph.Cell `json:"visited,omitempty"`
	Rendered   string           `json:"rendered"`
}

// CompareRequest is a layout plus an optional strategy subset.
type CompareRequest struct {
	mazefile.Layout
	Strategies []string `json:"strategies"`
}

// GenerateRequest describes a random maze. Unset fields take the server defaults.
type GenerateRequest struct {
	Rows        int      `json:"rows" binding:"required,min=1"`
	Cols        int      `json:"cols" binding:"required,min=1"`
	WallChance  *float64 `json:"wall_chance"`
	Seed        *int64   `json:"seed"`
	MaxAttempts int      `json:"max_attempts"`
	Repair      bool     `json:"repair"`
}

// GenerateResponse returns the maze as a rows-form layout.
type GenerateResponse struct {
	*mazefile.Layout
	Rendered string `json:"rendered"`
}
