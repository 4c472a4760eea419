// Package builder generates synthetic transaction datasets for tests,
// benchmarks and the basket CLI. Every dataset is reproducible: the same
// constructors, options and seed give byte-identical transactions.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildTransactions: resolves options and runs constructors in order.
//   - Constructors (Constructor closures):
//     – RandomBaskets:  each item joins each basket independently with probability p.
//     – ZipfBaskets:    fixed-size baskets drawn from a skewed (Zipf) item popularity.
//     – PlantPattern:   injects a known itemset into existing baskets with probability p.
//     – Fixed:          appends caller-provided baskets verbatim.
//     – Groceries:      the five-basket grocery fixture used across the docs.
//   - Item label schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("sku0","sku1",…).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: RNG for stochastic constructors.
//     – WithIDScheme:      item label scheme.
//
// Guarantees:
//
//   - Within one basket an item appears at most once.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic at runtime; they return sentinel errors wrapped
//     with the constructor name (ErrTooFewTransactions, ErrInvalidProbability, …).
//   - Stochastic constructors require an RNG unless their outcome is certain
//     (p ∈ {0,1}); otherwise they fail with ErrNeedRandSource.
//
// Example:
//
//	txs, err := builder.BuildTransactions(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomBaskets(1000, 50, 0.05),
//		builder.PlantPattern([]string{"3", "7", "9"}, 0.2),
//	)
package builder
