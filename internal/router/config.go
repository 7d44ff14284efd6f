package router

import (
	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/search/astar"
)

// Config bounds and tunes a routing run.
type Config struct {
	// TurnPenalty is added to a move's cost when it changes direction from
	// the previous move.
	TurnPenalty astar.Cost
	// SteinerPenaltyPerSink scales the heuristic's "number of remaining
	// sinks" bonus.
	SteinerPenaltyPerSink astar.Cost
	// MaxExplored caps each leg's A* exploration. The router's state space
	// is otherwise unbounded, so this is also what lets a genuinely unroutable network
	// terminate instead of searching forever; 0 falls back to
	// DefaultMaxExplored rather than meaning "unbounded".
	MaxExplored int
	// MaxCost caps each leg's accepted path cost, 0 means unbounded.
	MaxCost astar.Cost
	// Bounds, if non-nil, confines the search to this box (typically the
	// assembly's instance bounding box padded by a margin). A move outside
	// Bounds is treated as blocked. Leaving it nil disables bounding and
	// relies solely on MaxExplored to terminate.
	Bounds *geom.Box
	// UnroutablePenalty is the cost charged to a network in the
	// collision-relaxed pre-solver when it fails to route at
	// all, so a bad placement scores poorly instead of aborting the SA run.
	UnroutablePenalty astar.Cost
}

// DefaultMaxExplored is used when Config.MaxExplored is left at zero.
const DefaultMaxExplored = 50_000

// DefaultConfig returns the router tuning used by the placement engine and
// the CLI when the caller does not override it.
func DefaultConfig() Config {
	return Config{
		TurnPenalty: 1,
		SteinerPenaltyPerSink: 1,
		MaxExplored: DefaultMaxExplored,
		UnroutablePenalty: 10_000,
	}
}

// Option mutates a Config, following the functional-options pattern used
// throughout this module.
type Option func(*Config)

// NewConfig resolves DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithConfig overrides the entire Config, an escape hatch for callers
// (such as Presolve) that already hold a fully composed Config and want
// to pass it through the Option pipeline.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithTurnPenalty sets the per-turn cost penalty.
func WithTurnPenalty(cost astar.Cost) Option {
	return func(c *Config) { c.TurnPenalty = cost }
}

// WithSteinerPenalty sets the per-remaining-sink heuristic bonus.
func WithSteinerPenalty(cost astar.Cost) Option {
	return func(c *Config) { c.SteinerPenaltyPerSink = cost }
}

// WithMaxExplored caps each leg's A* exploration.
func WithMaxExplored(n int) Option {
	return func(c *Config) { c.MaxExplored = n }
}

// WithMaxCost caps each leg's accepted path cost.
func WithMaxCost(cost astar.Cost) Option {
	return func(c *Config) { c.MaxCost = cost }
}

// WithBounds confines routing to b.
func WithBounds(b geom.Box) Option {
	return func(c *Config) { c.Bounds = &b }
}

// WithUnroutablePenalty sets the pre-solver's per-failed-network cost.
func WithUnroutablePenalty(cost astar.Cost) Option {
	return func(c *Config) { c.UnroutablePenalty = cost }
}
