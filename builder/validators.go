// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// validators.go - parameter checks shared by constructors. Each returns a
// method-prefixed sentinel error via builderErrorf.

package builder

// validateMin ensures got ≥ min, reporting sentinel otherwise.
func validateMin(method string, sentinel error, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, sentinel, "%s=%d < min=%d", name, got, min)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN fails.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "p=%v not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}
	return nil
}

// validateRand requires an RNG unless the outcome of every trial is certain.
func validateRand(method string, cfg builderConfig, p float64) error {
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return builderErrorf(method, ErrNeedRandSource, "p=%v needs WithSeed or WithRand", p)
	}
	return nil
}
