package placement

import (
	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/router"
)

// Config tunes both the initial-state seeding and the SA run.
type Config struct {
	// BoundingCube bounds the random poses tried while seeding the
	// initial placement.
	BoundingCube geom.Box
	// RejectionBudget bounds both the initial seeding's per-instance
	// collision retries and the neighbor operator's per-move collision
	// retries.
	RejectionBudget int

	// T0, Alpha, and MaxSteps parametrize the exponential cooling
	// schedule T(k) = T0 * Alpha^k.
	T0       float64
	Alpha    float64
	MaxSteps int
	// Seed drives every random choice in this run (initial seeding and
	// the neighbor operator), for a determinism guarantee.
	Seed int64

	// UseRoutingEnergy gates the optional collision-relaxed routing-cost
	// energy term.
	UseRoutingEnergy bool
	// WireLengthWeight, RoutingEnergyWeight, and OverlapWeight combine the
	// three energy terms into one scalar.
	WireLengthWeight    float64
	RoutingEnergyWeight float64
	OverlapWeight       float64
	// RouterOptions configures the internal/router.Presolve call used by
	// the routing-energy term, when UseRoutingEnergy is set.
	RouterOptions []router.Option

	// Workers is the number of independent SA runs to race against each
	// other; the lowest-energy result wins. Workers<=1 runs sequentially
	// in-process.
	Workers int
}

// DefaultBoundingCube is used when Config.BoundingCube is left at its
// zero value (geom.Box{}, which is actually the single-point box at the
// origin and therefore never a sane default — see NewConfig).
var DefaultBoundingCube = geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{15, 15, 15}}

// DefaultConfig returns the tuning used when the caller supplies no
// overriding options.
func DefaultConfig() Config {
	return Config{
		BoundingCube:        DefaultBoundingCube,
		RejectionBudget:     1000,
		T0:                  10,
		Alpha:               0.95,
		MaxSteps:            2000,
		WireLengthWeight:    1,
		RoutingEnergyWeight: 1,
		OverlapWeight:       1000,
		Workers:             1,
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

// WithBoundingCube sets the initial-seeding pose bounding box.
func WithBoundingCube(b geom.Box) Option {
	return func(c *Config) { c.BoundingCube = b }
}

// WithRejectionBudget sets the bounded collision-retry count.
func WithRejectionBudget(n int) Option {
	return func(c *Config) { c.RejectionBudget = n }
}

// WithSchedule sets the exponential cooling schedule's T0, alpha, and
// step count.
func WithSchedule(t0, alpha float64, maxSteps int) Option {
	return func(c *Config) { c.T0 = t0; c.Alpha = alpha; c.MaxSteps = maxSteps }
}

// WithSeed sets the deterministic run seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithRoutingEnergy enables the routing-cost energy term, configured by
// routerOpts.
func WithRoutingEnergy(routerOpts ...router.Option) Option {
	return func(c *Config) { c.UseRoutingEnergy = true; c.RouterOptions = routerOpts }
}

// WithWeights sets the three energy term weights.
func WithWeights(wireLength, routingEnergy, overlap float64) Option {
	return func(c *Config) {
		c.WireLengthWeight = wireLength
		c.RoutingEnergyWeight = routingEnergy
		c.OverlapWeight = overlap
	}
}

// WithWorkers sets the number of parallel SA workers.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}
