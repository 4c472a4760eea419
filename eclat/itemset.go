package eclat

import (
	"cmp"
	"encoding/binary"
	"slices"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/basket/vertical"
)

// Key is the canonical identity of an itemset: the ascending ranks of its items in the
// vertical index, uvarint-encoded. Two itemsets with the same items have the same Key
// whatever order they were written or discovered in.
type Key string

// makeKey encodes ranks, which must already be ascending and unique.
func makeKey(ranks []int) Key {
	buf := make([]byte, 0, len(ranks)*2)
	for _, r := range ranks {
		buf = binary.AppendUvarint(buf, uint64(r))
	}
	return Key(buf)
}

// Ranks decodes k back into ascending item ranks.
func (k Key) Ranks() []int {
	var ranks []int
	b := []byte(k)
	for len(b) > 0 {
		v, n := binary.Uvarint(b)
		if n <= 0 {
			return ranks
		}
		ranks = append(ranks, int(v))
		b = b[n:]
	}
	return ranks
}

// Len reports how many items k identifies.
func (k Key) Len() int { return len(k.Ranks()) }

// Itemset is a frequent itemset with its supporting transactions.
// Items are in ascending order; Tidset is owned by the Result and read-only.
type Itemset[T cmp.Ordered] struct {
	Items   []T
	Tidset  *roaring.Bitmap
	Count   uint64
	Support float64
	key     Key
}

// Key returns the canonical identity of s.
func (s *Itemset[T]) Key() Key { return s.key }

// Len returns the number of items in s.
func (s *Itemset[T]) Len() int { return len(s.Items) }

// Result is the table of frequent itemsets produced by Mine.
// It is read-only after Mine returns and safe for concurrent readers.
type Result[T cmp.Ordered] struct {
	index      *vertical.Index[T]
	minSupport float64
	byKey      map[Key]*Itemset[T]
	order      []*Itemset[T] // discovery order
}

// Len returns the number of frequent itemsets.
func (r *Result[T]) Len() int { return len(r.order) }

// MinSupport returns the threshold the table was mined with.
func (r *Result[T]) MinSupport() float64 { return r.minSupport }

// TransactionCount returns the support denominator.
func (r *Result[T]) TransactionCount() int { return r.index.TransactionCount() }

// Index returns the vertical index the table was mined from.
func (r *Result[T]) Index() *vertical.Index[T] { return r.index }

// Itemsets returns the frequent itemsets in discovery order. The order is
// deterministic for a given index and options.
func (r *Result[T]) Itemsets() []*Itemset[T] { return slices.Clone(r.order) }

// Sorted returns the frequent itemsets ordered by length, then lexicographically by items.
func (r *Result[T]) Sorted() []*Itemset[T] {
	out := slices.Clone(r.order)
	slices.SortFunc(out, func(a, b *Itemset[T]) int {
		if c := cmp.Compare(len(a.Items), len(b.Items)); c != 0 {
			return c
		}
		return slices.Compare(a.Items, b.Items)
	})
	return out
}

// KeyOf returns the canonical Key of items, in any order and with duplicates ignored.
// It reports false when an item does not occur in the index or items is empty.
func (r *Result[T]) KeyOf(items ...T) (Key, bool) {
	if len(items) == 0 {
		return "", false
	}
	ranks := make([]int, 0, len(items))
	for _, it := range items {
		rk, ok := r.index.Rank(it)
		if !ok {
			return "", false
		}
		ranks = append(ranks, rk)
	}
	slices.Sort(ranks)
	return makeKey(slices.Compact(ranks)), true
}

// Get returns the itemset stored under k.
func (r *Result[T]) Get(k Key) (*Itemset[T], bool) {
	s, ok := r.byKey[k]
	return s, ok
}

// Lookup returns the frequent itemset made of items, in any order.
func (r *Result[T]) Lookup(items ...T) (*Itemset[T], bool) {
	k, ok := r.KeyOf(items...)
	if !ok {
		return nil, false
	}
	return r.Get(k)
}

// Support returns the support of items if they form a frequent itemset.
func (r *Result[T]) Support(items ...T) (float64, bool) {
	s, ok := r.Lookup(items...)
	if !ok {
		return 0, false
	}
	return s.Support, true
}

// Supports returns the itemset → support mapping. Tidsets are left out; use Get for them.
func (r *Result[T]) Supports() map[Key]float64 {
	out := make(map[Key]float64, len(r.order))
	for _, s := range r.order {
		out[s.key] = s.Support
	}
	return out
}

// add records a new frequent itemset; ranks must be ascending.
func (r *Result[T]) add(ranks []int, tids *roaring.Bitmap, count uint64, support float64) *Itemset[T] {
	items := make([]T, len(ranks))
	for i, rk := range ranks {
		items[i] = r.index.Item(rk)
	}
	s := &Itemset[T]{
		Items:   items,
		Tidset:  tids,
		Count:   count,
		Support: support,
		key:     makeKey(ranks),
	}
	r.byKey[s.key] = s
	r.order = append(r.order, s)
	return s
}
