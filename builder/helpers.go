// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// helpers.go - small helpers used by constructors.

package builder

import "slices"

// trial is one Bernoulli draw with probability p. With p ∈ {0,1} it consumes
// no randomness, so a nil rng is allowed there.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

// appendMissing appends the items of add not already in tx, keeping add's order.
func appendMissing(tx []string, add []string) []string {
	for _, it := range add {
		if !slices.Contains(tx, it) {
			tx = append(tx, it)
		}
	}
	return tx
}
