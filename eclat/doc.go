// Package eclat mines frequent itemsets with the ECLAT algorithm (Equivalence CLAss
// Transformation): a depth-first walk over the itemset lattice driven by the vertical
// item → tidset index of package vertical.
//
// What:
//
//   - Mine: enumerates every itemset whose support (fraction of transactions containing
//     it) is at least MinSupport, each paired with its exact tidset.
//   - Fit: builds the vertical index from raw transactions and mines it in one call.
//   - Result: read-only table of frequent itemsets, addressable by items in any order.
//
// How:
//
//  1. The root equivalence class holds every distinct item with its own tidset.
//  2. A candidate is popped from the current class; support = |tidset| / N.
//  3. support < MinSupport: the candidate and its whole subtree are discarded
//     (anti-monotonicity: no superset can be more frequent).
//  4. Otherwise the itemset prefix ∪ {item} is recorded, and a child class is formed by
//     intersecting the tidset with every later (strictly greater) candidate of the class.
//  5. Classes are kept on an explicit stack of frames, so the visit order equals that of
//     the recursive formulation while stack depth stays bounded by the longest itemset.
//
// Only items greater than the last item of a prefix may extend it, so each itemset has
// one canonical growth path and is produced exactly once. Correctness therefore depends
// on T's natural order being a strict total order (see vertical.ErrUnorderedItem).
//
// Options:
//
//   - WithMinSupport(s)   support threshold in (0,1]; default 0.01
//   - WithContext(ctx)    abort between itemsets; ctx.Err() is returned
//   - WithMaxLength(k)    opt-in cap on itemset length; default -1 (no cap)
//   - WithOnItemset(fn)   hook per recorded itemset; an error aborts mining
//   - WithLogger(l)       zerolog logger for diagnostics; default zerolog.Nop()
//   - WithVerbose(v)      emit progress diagnostics; never changes results
//
// Complexity:
//
//   - Worst case exponential in the number of distinct items (inherent to the problem);
//     each lattice node costs one bitmap intersection per greater sibling.
//   - Memory: O(depth · siblings) live bitmaps on the frame stack.
//
// Errors:
//
//   - ErrInvalidParameter   MinSupport ∉ (0,1], MaxLength invalid, nil index or zero transactions
//   - context.Canceled / context.DeadlineExceeded from WithContext
//   - any error returned by the OnItemset hook
//
// No partial results: on error Mine returns a nil *Result.
package eclat
