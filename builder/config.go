// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil (stochastic constructors refuse to run unless p is certain)

package builder

import "math/rand"

// builderConfig aggregates the knobs constructors read. It is passed by value.
type builderConfig struct {
	// Item label strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
