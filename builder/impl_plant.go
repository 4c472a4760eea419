// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// impl_plant.go - PlantPattern(pattern, p): inject a known itemset.
//
// Contract:
//   - len(pattern) ≥ 1 (else ErrTooFewItems).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - at least one basket already built (else ErrTooFewTransactions).
//   - cfg.rng must be non-nil unless p ∈ {0,1} (else ErrNeedRandSource).
//
// Each existing basket independently receives the whole pattern with
// probability p; items it already holds are not duplicated. The pattern's
// support is therefore at least p in expectation, which makes it a ground
// truth for miner tests and benchmarks.
//
// Complexity: O(n·len(pattern)·basket size).

package builder

// PlantPattern returns a Constructor that adds pattern to each existing basket
// with probability p. Baskets are visited in order, one trial each.
func PlantPattern(pattern []string, p float64) Constructor {
	return func(txs *[][]string, cfg builderConfig) error {
		// 1) Validate parameters.
		if err := validateMin(MethodPlantPattern, ErrTooFewItems, "len(pattern)", len(pattern), MinItems); err != nil {
			return err
		}
		if err := validateProbability(MethodPlantPattern, p); err != nil {
			return err
		}
		if err := validateMin(MethodPlantPattern, ErrTooFewTransactions, "baskets", len(*txs), MinTransactions); err != nil {
			return err
		}
		if err := validateRand(MethodPlantPattern, cfg, p); err != nil {
			return err
		}

		// 2) One trial per basket, stable order.
		for i := range *txs {
			if trial(cfg, p) {
				(*txs)[i] = appendMissing((*txs)[i], pattern)
			}
		}

		return nil
	}
}
