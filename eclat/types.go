package eclat

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Defaults for MineOptions.
const (
	// DefaultMinSupport is the support threshold used when WithMinSupport is not given.
	DefaultMinSupport = 0.01

	// NoMaxLength disables the itemset length cap.
	NoMaxLength = -1
)

var (
	// ErrInvalidParameter reports a parameter outside its recognized range, or an empty
	// transaction database where support normalization needs at least one transaction.
	ErrInvalidParameter = errors.New("eclat: invalid parameter")
)

// Option configures Mine and Fit.
type Option func(*MineOptions)

// MineOptions holds the mining parameters.
type MineOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MinSupport is the inclusive lower bound on support, in (0,1].
	MinSupport float64

	// MaxLength, if positive, stops extending itemsets of that length.
	// NoMaxLength (-1) mines the whole lattice.
	MaxLength int

	// OnItemset, if non-nil, is called once per recorded itemset, in discovery order.
	// Returning an error aborts mining with that error.
	OnItemset func(key Key, support float64) error

	// Logger receives diagnostics. Defaults to a disabled logger.
	Logger zerolog.Logger

	// Verbose turns on progress events (index size, frequent singletons, totals).
	Verbose bool
}

// DefaultOptions returns MineOptions with:
//   - Background context
//   - MinSupport = DefaultMinSupport
//   - no length cap, no hook
//   - a no-op logger, verbose off
func DefaultOptions() MineOptions {
	return MineOptions{
		Ctx:        context.Background(),
		MinSupport: DefaultMinSupport,
		MaxLength:  NoMaxLength,
		OnItemset:  nil,
		Logger:     zerolog.Nop(),
		Verbose:    false,
	}
}

// WithContext sets the Context checked between itemsets.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *MineOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinSupport sets the minimum support. Range is checked by Mine, not here, so the
// error surfaces as ErrInvalidParameter.
func WithMinSupport(s float64) Option {
	return func(o *MineOptions) {
		o.MinSupport = s
	}
}

// WithMaxLength caps itemset length at k (k ≥ 1), or removes the cap with NoMaxLength.
func WithMaxLength(k int) Option {
	return func(o *MineOptions) {
		o.MaxLength = k
	}
}

// WithOnItemset installs fn as a per-itemset hook.
func WithOnItemset(fn func(key Key, support float64) error) Option {
	return func(o *MineOptions) {
		o.OnItemset = fn
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *MineOptions) {
		o.Logger = l
	}
}

// WithVerbose toggles progress diagnostics.
func WithVerbose(v bool) Option {
	return func(o *MineOptions) {
		o.Verbose = v
	}
}

// resolveOptions applies opts over DefaultOptions; later options win.
func resolveOptions(opts []Option) MineOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// validate checks ranges of the resolved options.
func (o MineOptions) validate(method string) error {
	// written as a negation so NaN fails too
	if !(o.MinSupport > 0 && o.MinSupport <= 1) {
		return fmt.Errorf("%s: min_support=%v not in (0,1]: %w", method, o.MinSupport, ErrInvalidParameter)
	}
	if o.MaxLength != NoMaxLength && o.MaxLength < 1 {
		return fmt.Errorf("%s: max_length=%d must be ≥ 1 or %d: %w", method, o.MaxLength, NoMaxLength, ErrInvalidParameter)
	}
	return nil
}
