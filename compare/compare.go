// Package compare runs several search strategies over the same graph and
// collects per-strategy diagnostics: path length and cost, expansion and
// discovery counts, and wall-clock time.
//
// Strategies run one after another on the caller's goroutine. Each search owns
// its own traversal state, so sharing the read-only graph is safe.
package compare

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

// ErrNoStrategies is returned when Run is given an explicit empty strategy list.
var ErrNoStrategies = errors.New("compare: no strategies to run")

// Entry is the outcome of one strategy.
type Entry struct {
	Strategy   search.Strategy  `json:"strategy"`
	Found      bool             `json:"found"`
	Path       []gridgraph.Cell `json:"path"`
	PathLength int              `json:"path_length"`
	PathCost   int64            `json:"path_cost"`
	Expanded   int              `json:"expanded"`
	Discovered int              `json:"discovered"`
	Elapsed    time.Duration    `json:"elapsed_ns"`
}

// Report collects the entries of one comparison in run order.
type Report struct {
	Start   gridgraph.Cell `json:"start"`
	End     gridgraph.Cell `json:"end"`
	Entries []Entry        `json:"entries"`
}

// Run executes each strategy over g from start to end.
// With no strategies given it runs all four in canonical order.
// The first search error aborts the run.
func Run(g search.Graph, start, end gridgraph.Cell, strategies ...search.Strategy) (*Report, error) {
	if strategies == nil {
		strategies = search.Strategies()
	}
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}

	rep := &Report{Start: start, End: end, Entries: make([]Entry, 0, len(strategies))}
	for _, s := range strategies {
		began := time.Now()
		res, err := search.Search(s, g, start, end)
		elapsed := time.Since(began)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}

		cost, err := search.PathCost(g, res.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		rep.Entries = append(rep.Entries, Entry{
			Strategy:   s,
			Found:      res.Found(),
			Path:       res.Path,
			PathLength: res.PathLength(),
			PathCost:   cost,
			Expanded:   res.Expanded(),
			Discovered: res.Discovered(),
			Elapsed:    elapsed,
		})
	}

	return rep, nil
}

// Entry returns the entry for s, if it ran.
func (r *Report) Entry(s search.Strategy) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Strategy == s {
			return e, true
		}
	}
	return Entry{}, false
}

// Fewest returns the found entry with the fewest expansions.
// Ties keep the earlier entry.
func (r *Report) Fewest() (Entry, bool) {
	var (
		best Entry
		ok   bool
	)
	for _, e := range r.Entries {
		if !e.Found {
			continue
		}
		if !ok || e.Expanded < best.Expanded {
			best, ok = e, true
		}
	}
	return best, ok
}

// Cheapest returns the found entry with the lowest path cost.
// Ties keep the earlier entry.
func (r *Report) Cheapest() (Entry, bool) {
	var (
		best Entry
		ok   bool
	)
	for _, e := range r.Entries {
		if !e.Found {
			continue
		}
		if !ok || e.PathCost < best.PathCost {
			best, ok = e, true
		}
	}
	return best, ok
}
