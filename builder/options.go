// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless input. Constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes dataset generation by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the item label generator: idx -> label.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG shared by all constructors of one build.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh seeded *rand.Rand. Use it in tests and the CLI to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
