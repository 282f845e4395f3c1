package retrograde

import (
	"io"
	"log"
)

// Mode selects which propagator drives backward induction. It replaces the
// original solver's pointer-equality test against a DefaultGoAgain
// sentinel function with an explicit choice made once, at construction.
type Mode int

const (
	// NoGoAgain runs the incremental child-counting propagator (spec §4.5).
	// Use this for games where a move always passes the turn to the
	// opponent.
	NoGoAgain Mode = iota
	// GoAgain runs the recompute-from-all-children propagator (spec §4.6).
	// Use this for games where GoAgain(id, m) can be true for some move.
	GoAgain
)

// Config configures a Solver. The zero Config is usable: RemotenessMax
// defaults to DefaultRemotenessMax and logging is discarded, matching
// loopyup_debug defaulting to off in the original.
type Config struct {
	// RemotenessMax is the saturation cap for Remoteness. Zero means
	// DefaultRemotenessMax.
	RemotenessMax Remoteness

	// Debug enables progress logging during Phase 1 and Phase 2, at the
	// same 50k/10k position cadence as the original solver's
	// loopyup_debug build.
	Debug bool

	// Logger receives debug progress lines when Debug is true. Nil means
	// log.Default().
	Logger *log.Logger
}

// Option mutates a Config. Functional options, matching the teacher's
// SearchLimits-style plain-struct configuration rather than a builder.
type Option func(*Config)

// WithRemotenessMax overrides the saturation cap.
func WithRemotenessMax(max Remoteness) Option {
	return func(c *Config) { c.RemotenessMax = max }
}

// WithDebug enables or disables progress logging.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}

// WithLogger sets the logger progress lines are written to.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

func (c *Config) normalize() {
	if c.RemotenessMax <= 0 {
		c.RemotenessMax = DefaultRemotenessMax
	}
	if c.Logger == nil {
		if c.Debug {
			c.Logger = log.Default()
		} else {
			c.Logger = log.New(io.Discard, "", 0)
		}
	}
}
