package rules

import (
	"cmp"
	"fmt"
	"slices"
)

// SortKey names the metric Sort orders by.
type SortKey string

// Supported sort keys.
const (
	ByConfidence SortKey = "confidence"
	ByLift       SortKey = "lift"
	BySupport    SortKey = "support"
)

// ParseSortKey validates s as a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case ByConfidence, ByLift, BySupport:
		return k, nil
	default:
		return "", fmt.Errorf("rules: unknown sort key %q: %w", s, ErrInvalidParameter)
	}
}

// Sort orders rules in place by key, descending. Ties keep their generation order.
func Sort[T cmp.Ordered](rs []Rule[T], key SortKey) {
	metric := func(r Rule[T]) float64 {
		switch key {
		case ByLift:
			return r.Lift
		case BySupport:
			return r.Support
		default:
			return r.Confidence
		}
	}
	slices.SortStableFunc(rs, func(a, b Rule[T]) int {
		return cmp.Compare(metric(b), metric(a))
	})
}
