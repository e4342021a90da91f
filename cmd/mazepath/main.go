// Command mazepath solves, compares and generates grid mazes, and serves
// the same operations over HTTP.
//
//	mazepath solve --file maze.yaml --strategy astar
//	mazepath compare --file maze.yaml
//	mazepath generate --rows 20 --cols 40 --seed 7 --out maze.yaml
//	mazepath serve --addr :8080
//
// Settings come from MAZEPATH_* environment variables and an optional .env
// file; flags override them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/internal/logging"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "mazepath"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mazepath:", err)
		os.Exit(1)
	}
}

// newApp assembles the command tree.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "search grid mazes with BFS, DFS, UCS and A*",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Usage: "dotenv file to read before the environment", Value: ".env"},
			&cli.StringFlag{Name: "log-level", Usage: "override MAZEPATH_LOG_LEVEL"},
			&cli.StringFlag{Name: "log-format", Usage: "override MAZEPATH_LOG_FORMAT (text|json)"},
		},
		Commands: []*cli.Command{
			solveCommand(),
			compareCommand(),
			generateCommand(),
			serveCommand(),
		},
	}
}

// env bundles what every subcommand needs.
type env struct {
	cfg config.Config
	log *logrus.Logger
}

// setup loads configuration and builds the logger, applying the global flags.
func setup(cmd *cli.Command) (*env, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return nil, err
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := cmd.String("log-format"); v != "" {
		cfg.LogFormat = v
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"level":  cfg.LogLevel,
		"format": cfg.LogFormat,
	}).Debug("configuration loaded")

	return &env{cfg: cfg, log: log}, nil
}
