// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// impl_zipf.go - ZipfBaskets(n, items, size, s): skewed item popularity.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewTransactions).
//   - items ≥ 1 and 1 ≤ size ≤ items (else ErrTooFewItems).
//   - s > 1 (else ErrInvalidExponent).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Each basket draws item ranks from Zipf(s) over [0, items-1] until it holds
// size distinct items or size·zipfDrawFactor draws were spent. Heavy skew may
// therefore leave a basket smaller than size; it never holds duplicates.
//
// Complexity: O(n·size·zipfDrawFactor) draws worst case.

package builder

import (
	"fmt"
	"math/rand"
	"slices"
)

// zipfDrawFactor bounds the draws per basket relative to its target size.
const zipfDrawFactor = 32

// ZipfBaskets returns a Constructor appending n baskets of up to size items
// whose popularity follows a Zipf law with exponent s: item 0 is the most
// frequent, item 1 the next, and so on. This mimics retail data, where a few
// products dominate.
func ZipfBaskets(n, items, size int, s float64) Constructor {
	return func(txs *[][]string, cfg builderConfig) error {
		// 1) Validate parameters.
		if err := validateMin(MethodZipfBaskets, ErrTooFewTransactions, "n", n, MinTransactions); err != nil {
			return err
		}
		if err := validateMin(MethodZipfBaskets, ErrTooFewItems, "size", size, MinItems); err != nil {
			return err
		}
		if err := validateMin(MethodZipfBaskets, ErrTooFewItems, "items", items, size); err != nil {
			return err
		}
		if !(s > MinZipfExponent) {
			return builderErrorf(MethodZipfBaskets, ErrInvalidExponent, "s=%v", s)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodZipfBaskets, ErrNeedRandSource)
		}

		// 2) One Zipf source over the shared RNG stream.
		zipf := rand.NewZipf(cfg.rng, s, 1, uint64(items-1))

		// 3) Draw baskets; ranks are deduplicated per basket.
		for i := 0; i < n; i++ {
			ranks := make([]int, 0, size)
			for draw := 0; len(ranks) < size && draw < size*zipfDrawFactor; draw++ {
				r := int(zipf.Uint64())
				if !slices.Contains(ranks, r) {
					ranks = append(ranks, r)
				}
			}
			slices.Sort(ranks)

			tx := make([]string, len(ranks))
			for k, r := range ranks {
				tx[k] = cfg.idFn(r)
			}
			*txs = append(*txs, tx)
		}

		return nil
	}
}
