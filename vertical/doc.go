// Package vertical builds the vertical (item → transaction-set) representation of a
// transaction database, the input of the ECLAT miner in package eclat.
//
// What:
//
//   - Build: scans an ordered list of transactions once and records, for every distinct
//     item, the set of transaction indices ("tidset") that contain it. A transaction
//     contributes its index at most once per item, duplicates inside one transaction are
//     insignificant.
//   - Index: the immutable result. Items are kept in ascending order of their natural
//     ordering (cmp.Ordered); that order is the global total order the miner relies on
//     to enumerate each itemset exactly once.
//
// Why:
//   - Support of an itemset is the cardinality of the intersection of its members'
//     tidsets, so a vertical layout turns support counting into bitmap intersection.
//   - Tidsets are stored as compressed roaring bitmaps, which keeps intersections fast on
//     both sparse and dense data.
//
// Key Types:
//
//   - Index[T]: sorted distinct items, item→rank map, rank→tidset, transaction count.
//
// Complexity:
//
//   - Build: Time O(total items + D·log D) (D = distinct items, sorting ranks), Memory O(total items).
//   - Lookups: Rank/Tidset O(1) average, Item/TidsetAt O(1).
//
// Errors:
//
//   - ErrNoTransactions        support normalization requested on an empty database
//   - ErrUnorderedItem         an item breaks the strict total order (NaN)
//   - ErrTooManyTransactions   transaction indices do not fit the 32-bit tid space
//
// Functions:
//
//   - Build[T cmp.Ordered](transactions [][]T) (*Index[T], error)
package vertical
