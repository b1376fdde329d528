// Package build defines generator options and error sentinels.
package build

import (
	"errors"
	"math/rand"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewVertices indicates an order below the family's minimum.
	ErrTooFewVertices = errors.New("build: too few vertices")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("build: probability outside [0,1]")
)

// defaultSeed freezes stochastic generators unless the caller overrides
// it; reproducibility by default, randomness by request.
const defaultSeed = 1

// Option customizes a generator via functional arguments.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed derives the generator's random source from the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit random source, letting several
// generators share one stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("build: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}
