package mazegen

import (
	"math/rand"
	"time"
)

// Option customizes Generate.
type Option func(*Options)

// Options holds the generator knobs.
type Options struct {
	// WallChance is the probability that a cell becomes a wall, in [0,1].
	WallChance float64

	// MaxAttempts bounds how many grids are drawn before giving up.
	MaxAttempts int

	// Repair carves the cheapest wall-breaching route between the corners
	// into the first draw instead of redrawing.
	Repair bool

	// Rand is the random source. Nil means a time-seeded source.
	Rand *rand.Rand
}

// Defaults.
const (
	DefaultWallChance  = 0.3
	DefaultMaxAttempts = 1000
)

// DefaultOptions returns the default generator settings.
func DefaultOptions() Options {
	return Options{
		WallChance:  DefaultWallChance,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// WithWallChance sets the per-cell wall probability. Range is checked by Generate.
func WithWallChance(p float64) Option {
	return func(o *Options) { o.WallChance = p }
}

// WithMaxAttempts sets the redraw limit. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxAttempts = n
		}
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit random source. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithRepair switches from redrawing to carving a route through the first draw.
func WithRepair() Option {
	return func(o *Options) { o.Repair = true }
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
