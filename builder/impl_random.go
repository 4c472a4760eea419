// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// impl_random.go - RandomBaskets(n, items, p): independent item inclusion.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewTransactions), items ≥ 1 (else ErrTooFewItems).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil unless p ∈ {0,1} (else ErrNeedRandSource).
//   - Labels come from cfg.idFn(0..items-1); baskets may be empty.
//
// Complexity: O(n·items) Bernoulli trials.
//
// Determinism: trials run basket by basket (asc), item by item (asc), so the
// same seed always yields the same baskets.

package builder

// RandomBaskets returns a Constructor appending n baskets in which each of
// items items appears independently with probability p. Expected support of
// every single item is p; of any k-itemset, p^k.
func RandomBaskets(n, items int, p float64) Constructor {
	return func(txs *[][]string, cfg builderConfig) error {
		// 1) Validate parameters (fail fast, no side effects on invalid input).
		if err := validateMin(MethodRandomBaskets, ErrTooFewTransactions, "n", n, MinTransactions); err != nil {
			return err
		}
		if err := validateMin(MethodRandomBaskets, ErrTooFewItems, "items", items, MinItems); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomBaskets, p); err != nil {
			return err
		}
		if err := validateRand(MethodRandomBaskets, cfg, p); err != nil {
			return err
		}

		// 2) Resolve labels once.
		labels := make([]string, items)
		for j := range labels {
			labels[j] = cfg.idFn(j)
		}

		// 3) Sample baskets in stable order.
		for i := 0; i < n; i++ {
			tx := make([]string, 0, int(float64(items)*p)+1)
			for _, label := range labels {
				if trial(cfg, p) {
					tx = append(tx, label)
				}
			}
			*txs = append(*txs, tx)
		}

		return nil
	}
}
