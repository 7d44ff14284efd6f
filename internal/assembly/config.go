package assembly

import (
	"github.com/andrewsmike/redhdl/internal/placement"
	"github.com/andrewsmike/redhdl/internal/router"
)

// OnUnroutablePolicy selects what happens when a network's routing fails.
type OnUnroutablePolicy int

const (
	// OnUnroutableSkip marks the failing network as failed and continues
	// routing the rest.
	OnUnroutableSkip OnUnroutablePolicy = iota
	// OnUnroutableAbort fails the whole synthesize call.
	OnUnroutableAbort
)

// String renders the policy the way it appears in CLI flags and error
// text.
func (p OnUnroutablePolicy) String() string {
	if p == OnUnroutableAbort {
		return "abort"
	}
	return "skip"
}

// DefaultBoundsMargin pads the placed instances' bounding box by this
// many voxels on every side before the final routing pass, giving wires
// room to detour around obstacles near the edge of the placement volume.
const DefaultBoundsMargin = int32(4)

// Config tunes synthesize.
type Config struct {
	Placement     placement.Config
	RouterOptions []router.Option
	OnUnroutable  OnUnroutablePolicy
	BoundsMargin  int32
}

// DefaultConfig returns the tuning used when the caller supplies no
// overriding options.
func DefaultConfig() Config {
	return Config{
		Placement:    placement.DefaultConfig(),
		OnUnroutable: OnUnroutableSkip,
		BoundsMargin: DefaultBoundsMargin,
	}
}

// Option mutates a Config, following the same WithXxx-over-newConfig
// pattern as internal/router and internal/placement.
type Option func(*Config)

// NewConfig resolves DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPlacement overrides the placement engine's configuration.
func WithPlacement(p placement.Config) Option {
	return func(c *Config) { c.Placement = p }
}

// WithRouterOptions overrides the options passed to the final routing
// pass (turn penalty, Steiner penalty, max_explored, and so on).
func WithRouterOptions(opts ...router.Option) Option {
	return func(c *Config) { c.RouterOptions = opts }
}

// WithOnUnroutable selects the skip/abort policy.
func WithOnUnroutable(policy OnUnroutablePolicy) Option {
	return func(c *Config) { c.OnUnroutable = policy }
}

// WithBoundsMargin overrides the routing-bounds padding.
func WithBoundsMargin(margin int32) Option {
	return func(c *Config) { c.BoundsMargin = margin }
}
