// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// impl_fixed.go - deterministic fixtures: Fixed(baskets) and Groceries().

package builder

// groceries is the classic five-basket fixture. At 60% support it has eight
// frequent itemsets, and {beer} -> {diaper} is its only rule at 80% confidence.
var groceries = [][]string{
	{"bread", "milk"},
	{"bread", "diaper", "beer", "eggs"},
	{"milk", "diaper", "beer", "cola"},
	{"bread", "milk", "diaper", "beer"},
	{"bread", "milk", "diaper", "cola"},
}

// Fixed returns a Constructor appending copies of baskets. Repeated items
// inside a basket are collapsed; the first occurrence keeps its position.
// An empty baskets list fails with ErrTooFewTransactions.
func Fixed(baskets [][]string) Constructor {
	return func(txs *[][]string, _ builderConfig) error {
		if err := validateMin(MethodFixed, ErrTooFewTransactions, "len(baskets)", len(baskets), MinTransactions); err != nil {
			return err
		}
		for _, tx := range baskets {
			*txs = append(*txs, appendMissing(make([]string, 0, len(tx)), tx))
		}
		return nil
	}
}

// Groceries returns a Constructor appending the five-basket grocery fixture.
func Groceries() Constructor {
	return Fixed(groceries)
}
