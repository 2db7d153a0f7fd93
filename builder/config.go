// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// config.go - builder options resolved into an immutable config.
//
// Contract:
//   • Defaults: directed edges, DefaultWeightFn, no random source.
//   • Options apply in order; later options win.

package builder

import "math/rand"

// config is resolved once per BuildGraph call and passed by value.
type config struct {
	rng        *rand.Rand
	weightFn   WeightFn
	undirected bool
}

// Option configures a BuildGraph call.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs r as the RNG. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithWeightFn sets the edge weight generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithUndirected makes every constructor add undirected edges.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}
