package vertical

import (
	"errors"
	"math"
)

var (
	// ErrNoTransactions is returned when a support ratio is requested from an index
	// built over zero transactions; the normalization denominator would be zero.
	ErrNoTransactions = errors.New("vertical: transaction count is zero")

	// ErrUnorderedItem indicates an item that does not take part in a strict total
	// order (a floating-point NaN). Such an item would make the miner's ordering
	// discipline ambiguous.
	ErrUnorderedItem = errors.New("vertical: item is not totally ordered")

	// ErrTooManyTransactions indicates that the transaction list is longer than the
	// 32-bit tid space of the bitmaps backing each tidset.
	ErrTooManyTransactions = errors.New("vertical: too many transactions")
)

// MaxTransactions is the largest number of transactions an Index can hold.
const MaxTransactions = math.MaxUint32
