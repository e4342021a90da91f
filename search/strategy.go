package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Strategy selects the frontier discipline of a search.
type Strategy int

const (
	// StrategyBFS expands cells first-in first-out.
	StrategyBFS Strategy = iota
	// StrategyDFS expands cells last-in first-out.
	StrategyDFS
	// StrategyUCS expands cells by lowest accumulated cost.
	StrategyUCS
	// StrategyAStar expands cells by lowest cost plus heuristic estimate.
	StrategyAStar
)

var strategyNames = [...]string{
	StrategyBFS:   "bfs",
	StrategyDFS:   "dfs",
	StrategyUCS:   "ucs",
	StrategyAStar: "astar",
}

// String returns the canonical lowercase name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// MarshalText encodes the canonical name.
func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(strategyNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(strategyNames[s]), nil
}

// UnmarshalText accepts any spelling understood by ParseStrategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// Accepted: bfs, dfs, ucs, astar, a*, a-star, a_star.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return StrategyBFS, nil
	case "dfs", "depth-first":
		return StrategyDFS, nil
	case "ucs", "uniform-cost", "dijkstra":
		return StrategyUCS, nil
	case "astar", "a*", "a-star", "a_star":
		return StrategyAStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies lists all strategies in canonical order.
func Strategies() []Strategy {
	return []Strategy{StrategyBFS, StrategyDFS, StrategyUCS, StrategyAStar}
}

// Search runs strategy s over g from start to end.
func Search(s Strategy, g Graph, start, end gridgraph.Cell, opts ...Option) (*Result, error) {
	switch s {
	case StrategyBFS:
		return BFS(g, start, end, opts...)
	case StrategyDFS:
		return DFS(g, start, end, opts...)
	case StrategyUCS:
		return UCS(g, start, end, opts...)
	case StrategyAStar:
		return AStar(g, start, end, opts...)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
}
