package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/mazepath/api"
	"github.com/katalvlaran/mazepath/api/i"
	mazeapi "github.com/katalvlaran/mazepath/api/maze"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve solve, compare and generate over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (default: MAZEPATH_ADDR)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			addr := e.cfg.ServerAddr
			if v := cmd.String("addr"); v != "" {
				addr = v
			}

			controller := mazeapi.NewController(mazeapi.Settings{
				DefaultStrategy: e.cfg.DefaultStrategy,
				WallChance:      e.cfg.WallChance,
				MaxAttempts:     e.cfg.MaxAttempts,
				MaxCells:        e.cfg.MaxCells,
			})
			router := api.NewRouter(api.Config{
				Addr:        addr,
				GinMode:     e.cfg.GinMode,
				Controllers: []i.Controller{controller},
				Logger:      e.log,
			})

			return router.Run(ctx)
		},
	}
}
