package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/search"
)

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "maze layout (YAML or JSON); the built-in demo maze when omitted",
	}
}

func endpointFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "start", Usage: "start cell as row,col (default: layout start or 0,0)"},
		&cli.StringFlag{Name: "end", Usage: "end cell as row,col (default: layout end or bottom-right)"},
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "run one strategy and print the route",
		Flags: append([]cli.Flag{
			fileFlag(),
			&cli.StringFlag{Name: "strategy", Aliases: []string{"s"}, Usage: "bfs, dfs, ucs or astar (default: MAZEPATH_STRATEGY)"},
			&cli.BoolFlag{Name: "show-visited", Usage: "mark expanded cells with +"},
			&cli.BoolFlag{Name: "adjacency", Usage: "also print the adjacency list"},
		}, endpointFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			strategy := e.cfg.DefaultStrategy
			if name := cmd.String("strategy"); name != "" {
				if strategy, err = search.ParseStrategy(name); err != nil {
					return err
				}
			}
			gg, start, end, err := loadMaze(cmd)
			if err != nil {
				return err
			}

			var steps int
			res, err := search.Search(strategy, gg, start, end,
				search.WithOnExpand(func(c gridgraph.Cell) {
					steps++
					e.log.WithFields(logrus.Fields{"step": steps, "cell": c}).Trace("expand")
				}),
			)
			if err != nil {
				return err
			}
			e.log.WithFields(logrus.Fields{
				"strategy": strategy,
				"found":    res.Found(),
				"expanded": res.Expanded(),
			}).Debug("search finished")

			return printSolve(cmd.Root().Writer, gg, res, start, end, cmd.Bool("show-visited"), cmd.Bool("adjacency"))
		},
	}
}

func printSolve(w io.Writer, gg *gridgraph.GridGraph, res *search.Result, start, end gridgraph.Cell, visited, adjacency bool) error {
	opts := []render.Option{render.WithPath(res.Path), render.WithEndpoints(start, end)}
	if visited {
		opts = append([]render.Option{render.WithVisited(res.Visited)}, opts...)
	}
	if _, err := io.WriteString(w, render.ASCII(gg, opts...)); err != nil {
		return err
	}

	cost, err := search.PathCost(gg, res.Path)
	if err != nil {
		return err
	}
	if res.Found() {
		fmt.Fprintf(w, "%s: path %v\n", res.Strategy, res.Path)
		fmt.Fprintf(w, "length %d, cost %d, expanded %d, discovered %d\n",
			res.PathLength(), cost, res.Expanded(), res.Discovered())
	} else {
		fmt.Fprintf(w, "%s: no path from %s to %s (expanded %d)\n", res.Strategy, start, end, res.Expanded())
	}
	if adjacency {
		_, err = io.WriteString(w, "\n"+render.Adjacency(gg))
	}
	return err
}

// loadMaze reads --file, or the demo maze without it, and resolves
// endpoints: flags win over the layout.
func loadMaze(cmd *cli.Command) (*gridgraph.GridGraph, gridgraph.Cell, gridgraph.Cell, error) {
	var none gridgraph.Cell
	layout := mazefile.Demo()
	if path := cmd.String("file"); path != "" {
		var err error
		if layout, err = mazefile.Load(path); err != nil {
			return nil, none, none, err
		}
	}
	gg, err := layout.Graph()
	if err != nil {
		return nil, none, none, err
	}
	start, end := layout.Endpoints(gg)
	if v := cmd.String("start"); v != "" {
		if start, err = gridgraph.ParseCell(v); err != nil {
			return nil, none, none, err
		}
	}
	if v := cmd.String("end"); v != "" {
		if end, err = gridgraph.ParseCell(v); err != nil {
			return nil, none, none, err
		}
	}
	return gg, start, end, nil
}
