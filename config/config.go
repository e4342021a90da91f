// Package config loads mazepath settings from the environment.
// A .env file is read first when present; variables already set in the
// process environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazepath/search"
)

// ErrBadValue is returned when an environment variable does not parse.
var ErrBadValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvServerAddr      = "MAZEPATH_ADDR"
	EnvLogLevel        = "MAZEPATH_LOG_LEVEL"
	EnvLogFormat       = "MAZEPATH_LOG_FORMAT"
	EnvGinMode         = "MAZEPATH_GIN_MODE"
	EnvDefaultStrategy = "MAZEPATH_STRATEGY"
	EnvWallChance      = "MAZEPATH_WALL_CHANCE"
	EnvMaxAttempts     = "MAZEPATH_MAX_ATTEMPTS"
	EnvMaxCells        = "MAZEPATH_MAX_CELLS"
)

// Config holds the application's configuration values.
type Config struct {
	ServerAddr      string          // Address the HTTP API listens on
	LogLevel        string          // logrus level name
	LogFormat       string          // "text" or "json"
	GinMode         string          // Mode for the Gin framework (release, debug, test)
	DefaultStrategy search.Strategy // Strategy used when a request names none
	WallChance      float64         // Default wall probability for generated mazes
	MaxAttempts     int             // Redraw limit for generated mazes
	MaxCells        int             // Largest grid (rows*cols) the API accepts
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerAddr:      ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		GinMode:         "release",
		DefaultStrategy: search.StrategyAStar,
		WallChance:      0.3,
		MaxAttempts:     1000,
		MaxCells:        250_000,
	}
}

// Load reads the given .env files (".env" when none are named), then
// overlays MAZEPATH_* variables onto Default. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.ServerAddr = getEnvWithDefault(EnvServerAddr, cfg.ServerAddr)
	cfg.LogLevel = getEnvWithDefault(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnvWithDefault(EnvLogFormat, cfg.LogFormat)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, cfg.GinMode)

	if v, ok := os.LookupEnv(EnvDefaultStrategy); ok {
		s, err := search.ParseStrategy(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrBadValue, EnvDefaultStrategy, err)
		}
		cfg.DefaultStrategy = s
	}

	var err error
	if cfg.WallChance, err = getEnvAsFloat(EnvWallChance, cfg.WallChance); err != nil {
		return Config{}, err
	}
	if cfg.MaxAttempts, err = getEnvAsInt(EnvMaxAttempts, cfg.MaxAttempts); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells, err = getEnvAsInt(EnvMaxCells, cfg.MaxCells); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", ErrBadValue, key, value)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %q", ErrBadValue, key, value)
	}
	return f, nil
}
