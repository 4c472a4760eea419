package eclat

import (
	"cmp"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/basket/vertical"
)

// candidate is one member of an equivalence class: an extension item and the tidset of
// prefix ∪ {item}.
type candidate struct {
	rank  int             // item rank in the global order
	tids  *roaring.Bitmap // prefix tidset ∩ item tidset
	count uint64          // tids cardinality, cached
}

// frame is one equivalence class on the explicit DFS stack.
type frame struct {
	prefix []int       // ranks of the shared prefix, ascending
	cands  []candidate // extensions, ascending by rank
	next   int         // cursor into cands
}

// miner encapsulates state during one Mine call.
type miner[T cmp.Ordered] struct {
	idx  *vertical.Index[T]
	opts MineOptions
	n    float64 // transaction count as the support denominator
	res  *Result[T]
}

// Mine enumerates all itemsets of idx with support ≥ MinSupport.
// Parameters are validated before any work; on error no Result is returned.
func Mine[T cmp.Ordered](idx *vertical.Index[T], opts ...Option) (*Result[T], error) {
	// 1. Resolve and validate options
	o := resolveOptions(opts)
	if err := o.validate("eclat: Mine"); err != nil {
		return nil, err
	}

	// 2. Validate the database
	if idx == nil {
		return nil, fmt.Errorf("eclat: Mine: nil index: %w", ErrInvalidParameter)
	}
	if idx.TransactionCount() == 0 {
		return nil, fmt.Errorf("eclat: Mine: %v: %w", vertical.ErrNoTransactions, ErrInvalidParameter)
	}

	m := &miner[T]{
		idx:  idx,
		opts: o,
		n:    float64(idx.TransactionCount()),
		res: &Result[T]{
			index:      idx,
			minSupport: o.MinSupport,
			byKey:      make(map[Key]*Itemset[T]),
		},
	}

	if err := m.run(); err != nil {
		return nil, err
	}

	return m.res, nil
}

// Fit builds the vertical index of transactions and mines it.
// An empty transaction list is rejected with ErrInvalidParameter.
func Fit[T cmp.Ordered](transactions [][]T, opts ...Option) (*Result[T], error) {
	// Fail fast on options before scanning anything
	if err := resolveOptions(opts).validate("eclat: Fit"); err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, fmt.Errorf("eclat: Fit: empty transaction list: %w", ErrInvalidParameter)
	}

	idx, err := vertical.Build(transactions)
	if err != nil {
		return nil, fmt.Errorf("eclat: Fit: %w", err)
	}

	return Mine(idx, opts...)
}

// frequent applies the support threshold to an absolute count.
func (m *miner[T]) frequent(count uint64) (float64, bool) {
	support := float64(count) / m.n
	return support, support >= m.opts.MinSupport
}

// run walks the lattice with an explicit stack. Popping candidates in ascending order
// and pushing a child class right after recording its prefix reproduces the recursive
// visit order exactly.
func (m *miner[T]) run() error {
	started := time.Now()
	log := m.opts.Logger

	// 1. Root class: every item with its own (shared, read-only) tidset
	root := &frame{cands: make([]candidate, m.idx.Len())}
	for r := range root.cands {
		tids := m.idx.TidsetAt(r)
		root.cands[r] = candidate{rank: r, tids: tids, count: tids.GetCardinality()}
	}
	if m.opts.Verbose {
		log.Info().
			Int("items", m.idx.Len()).
			Int("transactions", m.idx.TransactionCount()).
			Float64("min_support", m.opts.MinSupport).
			Msg("initial vertical database")
	}

	stack := []*frame{root}
	for len(stack) > 0 {
		// 2. Cancellation check
		select {
		case <-m.opts.Ctx.Done():
			return m.opts.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		if top.next == len(top.cands) {
			stack = stack[:len(stack)-1]
			continue
		}
		c := top.cands[top.next]
		top.next++

		// 3. Support pruning: drop the candidate and its subtree
		support, ok := m.frequent(c.count)
		if !ok {
			continue
		}

		// 4. Record prefix ∪ {item}
		prefix := make([]int, len(top.prefix)+1)
		copy(prefix, top.prefix)
		prefix[len(top.prefix)] = c.rank
		set := m.res.add(prefix, c.tids, c.count, support)

		if m.opts.OnItemset != nil {
			if err := m.opts.OnItemset(set.key, support); err != nil {
				return fmt.Errorf("eclat: OnItemset hook for %v: %w", set.Items, err)
			}
		}

		// 5. Child class: later (greater) siblings intersected with this tidset
		if m.opts.MaxLength != NoMaxLength && len(prefix) >= m.opts.MaxLength {
			continue
		}
		child := m.extend(c, top.cands[top.next:])
		if len(child) > 0 {
			stack = append(stack, &frame{prefix: prefix, cands: child})
		}
	}

	if m.opts.Verbose {
		singletons := 0
		for _, s := range m.res.order {
			if len(s.Items) == 1 {
				singletons++
			}
		}
		log.Info().
			Int("frequent_items", singletons).
			Int("itemsets", m.res.Len()).
			Dur("elapsed", time.Since(started)).
			Msg("mining finished")
	}

	return nil
}

// extend builds the equivalence class of c from its greater siblings. Siblings that
// were already infrequent at this level are skipped: intersecting can only shrink them.
func (m *miner[T]) extend(c candidate, siblings []candidate) []candidate {
	child := make([]candidate, 0, len(siblings))
	for _, s := range siblings {
		if _, ok := m.frequent(s.count); !ok {
			continue
		}
		tids := roaring.And(c.tids, s.tids)
		child = append(child, candidate{rank: s.rank, tids: tids, count: tids.GetCardinality()})
	}
	return child
}
