package main

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/render"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "draw a random maze whose corners are connected",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Aliases: []string{"r"}, Value: 10},
			&cli.IntFlag{Name: "cols", Aliases: []string{"c"}, Value: 10},
			&cli.FloatFlag{Name: "wall-chance", Usage: "per-cell wall probability (default: MAZEPATH_WALL_CHANCE)"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed for reproducible mazes"},
			&cli.BoolFlag{Name: "repair", Usage: "knock down walls instead of redrawing"},
			&cli.StringFlag{Name: "name", Usage: "layout name"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the layout to this file instead of stdout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			rows, cols := int(cmd.Int("rows")), int(cmd.Int("cols"))

			opts := []mazegen.Option{
				mazegen.WithWallChance(e.cfg.WallChance),
				mazegen.WithMaxAttempts(e.cfg.MaxAttempts),
			}
			if cmd.IsSet("wall-chance") {
				opts = append(opts, mazegen.WithWallChance(cmd.Float("wall-chance")))
			}
			if cmd.IsSet("seed") {
				opts = append(opts, mazegen.WithSeed(cmd.Int64("seed")))
			}
			if cmd.Bool("repair") {
				opts = append(opts, mazegen.WithRepair())
			}

			gg, err := mazegen.Generate(rows, cols, opts...)
			if err != nil {
				return err
			}
			layout := mazefile.FromGraph(cmd.String("name"), gg)
			e.log.WithFields(logrus.Fields{
				"rows": rows,
				"cols": cols,
				"open": len(gg.OpenCells()),
			}).Debug("maze generated")

			w := cmd.Root().Writer
			if out := cmd.String("out"); out != "" {
				if err := mazefile.Save(out, layout); err != nil {
					return err
				}
				e.log.WithField("file", out).Info("layout written")
				_, err = io.WriteString(w, render.ASCII(gg, render.WithEndpoints(*layout.Start, *layout.End)))
				return err
			}
			return mazefile.Encode(w, layout)
		},
	}
}
