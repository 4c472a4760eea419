// Package dataset reads and writes transaction lists.
//
// Three layouts are understood:
//
//   - FormatCSV, one basket per row, one item per cell:
//
//     bread,milk
//     bread,diaper,beer,eggs
//
//   - FormatTidy, one (transaction, item) pair per row, the "long" layout
//     exported by most point-of-sale systems. Rows sharing a transaction id
//     form one basket; baskets keep the order in which their id first appears:
//
//     transaction_id,item
//     1,bread
//     1,milk
//     2,bread
//
//   - FormatJSON, an array of string arrays: [["bread","milk"],["beer"]].
//
// Cells are trimmed and empty cells are dropped. Duplicates within a basket are
// kept as read; the vertical index ignores them.
package dataset
