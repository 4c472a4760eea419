// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildTransactions(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors live in impl_*.go, one per file.
//   - Determinism: same constructors, options, seed and order ⇒ identical baskets.

package builder

import "fmt"

// Constructor appends baskets to, or rewrites baskets of, *txs using the
// resolved builderConfig. Constructors validate early, return sentinel errors
// and consume the shared RNG in a documented order.
type Constructor func(txs *[][]string, cfg builderConfig) error

// BuildTransactions resolves the builder configuration from bopts and applies
// all constructors in order to an initially empty dataset. The first failing
// constructor aborts the build; its error is wrapped as "BuildTransactions: %w"
// and no partial dataset is returned.
//
// Later constructors see the baskets of earlier ones, so
//
//	BuildTransactions(opts, RandomBaskets(100, 20, 0.1), PlantPattern(p, 0.3))
//
// plants p into the random baskets, while the reverse order fails with
// ErrTooFewTransactions.
func BuildTransactions(bopts []BuilderOption, cons ...Constructor) ([][]string, error) {
	cfg := newBuilderConfig(bopts...)

	txs := make([][]string, 0)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildTransactions, i, ErrConstructFailed)
		}
		if err := fn(&txs, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildTransactions, err)
		}
	}

	return txs, nil
}
