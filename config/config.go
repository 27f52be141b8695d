// Package config replaces the reference tool's process-wide option
// singleton with an explicit, immutable record built through functional
// options and threaded into every constructor that needs it.
package config

import "math"

// Config bundles the run-wide parameters consumed by the graph builders,
// distance engines, and outlier engine. A Config is built once with New and
// never mutated afterwards.
type Config struct {
	NThreads           int
	MaxDistance        float64
	KmerLength         int64
	GraphsOneBased     bool
	QueriesOneBased    bool
	OutputOneBased     bool
	SGGCountThreshold  int64
	LDDistance         float64
	LDDistanceMin      float64
	LDDistanceScore    float64
	LDDistanceNthScore int64
}

// Option mutates a Config under construction.
type Option func(*Config)

// New builds a Config from its defaults plus any options, applied in order.
func New(opts ...Option) Config {
	cfg := Config{
		NThreads:           1,
		MaxDistance:        math.MaxFloat64,
		KmerLength:         0,
		SGGCountThreshold:  1,
		LDDistance:         -1, // negative triggers auto bisection
		LDDistanceMin:      0,
		LDDistanceScore:    0.5,
		LDDistanceNthScore: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithThreads sets the worker count used by the distance engines.
func WithThreads(n int) Option {
	return func(c *Config) {
		if n < 1 {
			n = 1
		}
		c.NThreads = n
	}
}

// WithMaxDistance sets the hard cutoff applied by every Dijkstra run.
func WithMaxDistance(d float64) Option {
	return func(c *Config) { c.MaxDistance = d }
}

// WithKmerLength sets k, used when deriving two-sided self-weights from
// unitig sequence lengths.
func WithKmerLength(k int64) Option {
	return func(c *Config) { c.KmerLength = k }
}

// WithGraphsOneBased marks edge/unitig input ids as one-based.
func WithGraphsOneBased(v bool) Option {
	return func(c *Config) { c.GraphsOneBased = v }
}

// WithQueriesOneBased marks query input ids as one-based.
func WithQueriesOneBased(v bool) Option {
	return func(c *Config) { c.QueriesOneBased = v }
}

// WithOutputOneBased shifts output ids back to one-based.
func WithOutputOneBased(v bool) Option {
	return func(c *Config) { c.OutputOneBased = v }
}

// WithSGGCountThreshold sets the minimum per-query sample count required for
// outlier consideration.
func WithSGGCountThreshold(n int64) Option {
	return func(c *Config) { c.SGGCountThreshold = n }
}

// WithLDDistance fixes the linkage-disequilibrium cutoff. A negative value
// (the default) requests automatic bisection instead.
func WithLDDistance(d float64) Option {
	return func(c *Config) { c.LDDistance = d }
}

// WithLDDistanceMin sets the lower bisection bound for automatic LD search.
func WithLDDistanceMin(d float64) Option {
	return func(c *Config) { c.LDDistanceMin = d }
}

// WithLDDistanceScore sets the fraction of the largest observed score that
// automatic LD search must retain.
func WithLDDistanceScore(s float64) Option {
	return func(c *Config) { c.LDDistanceScore = s }
}

// WithLDDistanceNthScore sets which rank (from the top) automatic LD search
// treats as the representative "max score" at a candidate cutoff.
func WithLDDistanceNthScore(n int64) Option {
	return func(c *Config) { c.LDDistanceNthScore = n }
}
