// Package mazepath is a maze-solving sandbox: it turns a grid of open
// cells and walls into a graph and searches it with BFS, DFS, UCS or A*.
//
// What's inside
//
//	gridgraph/    Cell, GridGraph (immutable, 4-connected), components, wall breaching
//	search/       the four strategies, path reconstruction, path cost, Manhattan heuristic
//	compare/      run several strategies over one maze and collect diagnostics
//	mazegen/      random solvable mazes (redraw or repair)
//	mazefile/     YAML/JSON maze layouts
//	render/       plain-text grid and adjacency dumps
//	config/       MAZEPATH_* environment and .env settings
//	api/          gin HTTP surface: /v1/solve, /v1/compare, /v1/generate, /healthz
//	cmd/mazepath  CLI: solve, compare, generate, serve
//
// Quick ASCII example:
//
//	S . #        S * #
//	# . #   →    # * #
//	# . E        # * E
//
// The only route from (0,0) to (2,2) runs down the middle column; every
// strategy finds it.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
