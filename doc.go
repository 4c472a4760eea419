// Package basket is a frequent itemset and association rule toolkit built on
// the ECLAT algorithm.
//
// What is in the box?
//
//	A small, dependency-light set of packages that take a list of
//	transactions (baskets) to the itemsets that co-occur often and the
//	rules that explain them:
//		• vertical/ : item → transaction-id bitmaps (the vertical database)
//		• eclat/    : depth-first equivalence-class mining with support pruning
//		• rules/    : single-consequence rules with confidence, lift, filters
//		• builder/  : reproducible synthetic datasets (uniform, Zipf, planted)
//		• dataset/  : csv, tidy (long) csv and json readers/writers
//		• cmd/basket : the command-line front end
//
// Quick example:
//
//	txs := [][]string{
//		{"bread", "milk"},
//		{"bread", "diaper", "beer", "eggs"},
//		{"milk", "diaper", "beer", "cola"},
//		{"bread", "milk", "diaper", "beer"},
//		{"bread", "milk", "diaper", "cola"},
//	}
//	res, _ := eclat.Fit(txs, eclat.WithMinSupport(0.6))
//	rs, _ := rules.Generate(res, 0.8)
//	fmt.Println(rs[0]) // {beer} -> {diaper}
//
// Terminology:
//
//	support(X)      share of transactions containing every item of X
//	confidence(A→C) support(A∪C) / support(A)
//	lift(A→C)       confidence(A→C) / support(C); > 1 means positive association
//
// Mining is single-threaded and deterministic: the same input and thresholds
// always give the same itemsets in the same order.
package basket
