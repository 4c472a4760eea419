// Package rules derives association rules "antecedent → consequence" from the frequent
// itemsets mined by package eclat.
//
// For every frequent itemset I with |I| > 1 and every item c ∈ I:
//
//	confidence(I\{c} → c) = support(I) / support(I\{c})
//	lift                  = confidence / support({c})
//
// A rule is kept when confidence ≥ minConfidence. Support of the rule is the support of
// the full itemset I. Generation is a pure combinatorial pass over the table; rules are
// recomputed on every call and never cached.
//
// Subset lookups: the antecedent and the singleton consequence must be in the table.
// Downward closure guarantees this for tables produced by eclat.Mine; when a lookup still
// misses, the split is skipped (and logged), or, with WithStrictSubsets, generation fails
// with ErrMissingSubsetSupport.
//
// Beyond Generate the package offers Compile/Filter (expr-lang boolean expressions
// over rule metrics) and Sort.
package rules
