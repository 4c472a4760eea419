package rules

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/basket/eclat"
)

// DefaultMinConfidence is the confidence threshold callers use when they have no better one.
const DefaultMinConfidence = 0.5

var (
	// ErrInvalidParameter is the same sentinel as eclat.ErrInvalidParameter, so callers
	// can branch on one value for both entry points.
	ErrInvalidParameter = eclat.ErrInvalidParameter

	// ErrMissingSubsetSupport reports an antecedent or singleton consequence absent from
	// the frequent-itemset table. Tables built by eclat.Mine never trigger it.
	ErrMissingSubsetSupport = errors.New("rules: subset missing from frequent itemsets")
)

// Rule is one association rule. Consequence always holds exactly one item.
type Rule[T cmp.Ordered] struct {
	Antecedent  []T
	Consequence []T
	Confidence  float64
	Support     float64
	Lift        float64
}

// Leverage is support(A∪C) − support(A)·support(C), the excess co-occurrence over
// independence.
func (r Rule[T]) Leverage() float64 {
	// support(A) = Support/Confidence, support(C) = Confidence/Lift
	if r.Confidence == 0 || r.Lift == 0 {
		return 0
	}
	return r.Support - (r.Support/r.Confidence)*(r.Confidence/r.Lift)
}

// Conviction is (1 − support(C)) / (1 − confidence); +Inf when confidence is 1.
func (r Rule[T]) Conviction() float64 {
	if r.Confidence >= 1 {
		return math.Inf(1)
	}
	if r.Lift == 0 {
		return 0
	}
	return (1 - r.Confidence/r.Lift) / (1 - r.Confidence)
}

// String renders the rule as "{a, b} -> {c}".
func (r Rule[T]) String() string {
	return fmt.Sprintf("%s -> %s", formatItems(r.Antecedent), formatItems(r.Consequence))
}

func formatItems[T cmp.Ordered](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprint(it)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Option configures Generate.
type Option func(*GenerateOptions)

// GenerateOptions holds optional Generate behavior.
type GenerateOptions struct {
	// StrictSubsets turns a missing subset into ErrMissingSubsetSupport instead of a
	// skipped split.
	StrictSubsets bool

	// Logger receives a warning per skipped split. Defaults to a disabled logger.
	Logger zerolog.Logger
}

// DefaultOptions returns lenient generation with a no-op logger.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{
		StrictSubsets: false,
		Logger:        zerolog.Nop(),
	}
}

// WithStrictSubsets makes missing subset supports fatal.
func WithStrictSubsets() Option {
	return func(o *GenerateOptions) {
		o.StrictSubsets = true
	}
}

// WithLogger sets the logger for skipped splits.
func WithLogger(l zerolog.Logger) Option {
	return func(o *GenerateOptions) {
		o.Logger = l
	}
}
