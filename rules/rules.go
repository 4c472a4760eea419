package rules

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/basket/eclat"
)

// table is the view of the frequent-itemset table that generation needs.
// *eclat.Result satisfies it.
type table[T cmp.Ordered] interface {
	// Itemsets lists the frequent itemsets in a stable order.
	Itemsets() []*eclat.Itemset[T]
	// Support returns the support of items, in any order, if they are in the table.
	Support(items ...T) (float64, bool)
}

// Generate enumerates the single-consequence rules of res with confidence ≥
// minConfidence. Rules come out in res.Itemsets() order and, within an itemset, by
// ascending consequence item, so the sequence is reproducible for a fixed table.
//
// Errors:
//   - ErrInvalidParameter      minConfidence ∉ [0,1] or res is nil
//   - ErrMissingSubsetSupport  a needed subset is absent and WithStrictSubsets is set
func Generate[T cmp.Ordered](res *eclat.Result[T], minConfidence float64, opts ...Option) ([]Rule[T], error) {
	if res == nil {
		return nil, fmt.Errorf("rules: Generate: nil result: %w", ErrInvalidParameter)
	}
	return generate[T](res, minConfidence, opts...)
}

func generate[T cmp.Ordered](res table[T], minConfidence float64, opts ...Option) ([]Rule[T], error) {
	// 1. Validate inputs before any work
	if !(minConfidence >= 0 && minConfidence <= 1) {
		return nil, fmt.Errorf("rules: Generate: min_confidence=%v not in [0,1]: %w", minConfidence, ErrInvalidParameter)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Split every multi-item itemset around each of its items
	var (
		out     []Rule[T]
		skipped int
	)
	for _, set := range res.Itemsets() {
		if set.Len() < 2 {
			continue
		}
		for i, consequence := range set.Items {
			antecedent := make([]T, 0, set.Len()-1)
			antecedent = append(antecedent, set.Items[:i]...)
			antecedent = append(antecedent, set.Items[i+1:]...)

			// 2a. support(antecedent) must come from the table
			anteSupport, ok := res.Support(antecedent...)
			if !ok || anteSupport == 0 {
				if o.StrictSubsets {
					return nil, fmt.Errorf("rules: Generate: antecedent %v of %v: %w", antecedent, set.Items, ErrMissingSubsetSupport)
				}
				skipped++
				o.Logger.Warn().Str("antecedent", formatItems(antecedent)).Str("itemset", formatItems(set.Items)).
					Msg("antecedent support missing, split skipped")
				continue
			}

			confidence := set.Support / anteSupport
			if confidence < minConfidence {
				continue
			}

			// 2b. lift needs support({consequence}) from the same table
			consSupport, ok := res.Support(consequence)
			if !ok || consSupport == 0 {
				if o.StrictSubsets {
					return nil, fmt.Errorf("rules: Generate: consequence %v of %v: %w", consequence, set.Items, ErrMissingSubsetSupport)
				}
				skipped++
				o.Logger.Warn().Str("consequence", fmt.Sprint(consequence)).Str("itemset", formatItems(set.Items)).
					Msg("consequence support missing, split skipped")
				continue
			}

			out = append(out, Rule[T]{
				Antecedent:  antecedent,
				Consequence: []T{consequence},
				Confidence:  confidence,
				Support:     set.Support,
				Lift:        confidence / consSupport,
			})
		}
	}

	o.Logger.Debug().Int("rules", len(out)).Int("skipped", skipped).Float64("min_confidence", minConfidence).
		Msg("rules generated")

	return out, nil
}
