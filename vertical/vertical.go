package vertical

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring"
)

// Index is the vertical database: every distinct item mapped to the set of transaction
// indices in which it appears. An Index is immutable once Build returns; bitmaps handed
// out by Tidset and TidsetAt are shared and MUST be treated as read-only by callers
// (intersect with roaring.And, which allocates, instead of the in-place methods).
type Index[T cmp.Ordered] struct {
	items   []T               // distinct items, ascending; position == rank
	ranks   map[T]int         // item -> rank
	tidsets []*roaring.Bitmap // rank -> tidset
	n       int               // number of transactions scanned
}

// Build scans transactions once and returns their vertical index.
// An empty transaction list yields an empty index with TransactionCount()==0; that
// is not an error here, but any later support computation fails with ErrNoTransactions.
//
// Ranks follow the natural order of T, so rank comparison is item comparison.
func Build[T cmp.Ordered](transactions [][]T) (*Index[T], error) {
	// 1. Guard the tid space of 32-bit roaring bitmaps
	if uint64(len(transactions)) > MaxTransactions {
		return nil, fmt.Errorf("vertical: Build: %d transactions: %w", len(transactions), ErrTooManyTransactions)
	}

	// 2. Collect tidsets keyed by item in a single pass
	byItem := make(map[T]*roaring.Bitmap)
	var (
		tid  int
		tx   []T
		item T
	)
	for tid, tx = range transactions {
		for _, item = range tx {
			if item != item { // only NaN is unequal to itself
				return nil, fmt.Errorf("vertical: Build: transaction %d: %w", tid, ErrUnorderedItem)
			}
			bm, ok := byItem[item]
			if !ok {
				bm = roaring.New()
				byItem[item] = bm
			}
			bm.Add(uint32(tid)) // idempotent for repeated items in one transaction
		}
	}

	// 3. Fix the global order: sort distinct items and assign ranks
	items := make([]T, 0, len(byItem))
	for item = range byItem {
		items = append(items, item)
	}
	slices.Sort(items)

	idx := &Index[T]{
		items:   items,
		ranks:   make(map[T]int, len(items)),
		tidsets: make([]*roaring.Bitmap, len(items)),
		n:       len(transactions),
	}
	for rank, it := range items {
		idx.ranks[it] = rank
		bm := byItem[it]
		bm.RunOptimize()
		idx.tidsets[rank] = bm
	}

	return idx, nil
}

// TransactionCount reports how many transactions were scanned, the denominator of
// every support ratio.
func (x *Index[T]) TransactionCount() int { return x.n }

// Len returns the number of distinct items.
func (x *Index[T]) Len() int { return len(x.items) }

// Items returns a copy of the distinct items in ascending order.
func (x *Index[T]) Items() []T { return slices.Clone(x.items) }

// Rank returns the position of item in the global order, or false if absent.
func (x *Index[T]) Rank(item T) (int, bool) {
	r, ok := x.ranks[item]
	return r, ok
}

// Item returns the item at rank r. It panics if r is out of range, like a slice index.
func (x *Index[T]) Item(r int) T { return x.items[r] }

// Tidset returns the read-only tidset of item, or nil and false if item never occurs.
func (x *Index[T]) Tidset(item T) (*roaring.Bitmap, bool) {
	r, ok := x.ranks[item]
	if !ok {
		return nil, false
	}
	return x.tidsets[r], true
}

// TidsetAt returns the read-only tidset of the item at rank r.
func (x *Index[T]) TidsetAt(r int) *roaring.Bitmap { return x.tidsets[r] }

// Support converts an absolute count into a ratio of TransactionCount.
// Returns ErrNoTransactions instead of dividing by zero.
func (x *Index[T]) Support(count uint64) (float64, error) {
	if x.n == 0 {
		return 0, ErrNoTransactions
	}
	return float64(count) / float64(x.n), nil
}
