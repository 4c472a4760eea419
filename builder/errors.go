// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach "<Method>: <detail>: %w" context.
//   • Option constructors panic on meaningless input; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewTransactions indicates a basket count below MinTransactions, or a
// constructor that needs existing baskets (PlantPattern) running on none.
var ErrTooFewTransactions = errors.New("builder: too few transactions")

// ErrTooFewItems indicates an item universe, basket size or pattern that is empty.
var ErrTooFewItems = errors.New("builder: too few items")

// ErrInvalidProbability indicates a probability outside [0,1] (NaN included).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidExponent indicates a Zipf exponent s ≤ 1.
var ErrInvalidExponent = errors.New("builder: zipf exponent must be > 1")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil constructor handed to BuildTransactions.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a sentinel with the method tag and a formatted detail:
// "<method>: <detail>: <sentinel>". The sentinel stays reachable via errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
