// Package builder_test contains functional tests for the dataset constructors:
// shape, determinism, item uniqueness and error classes.
package builder_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basket/builder"
)

func seeded(seed int64) []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithSeed(seed)}
}

// assertNoDuplicates fails when a basket holds an item twice.
func assertNoDuplicates(t *testing.T, txs [][]string) {
	t.Helper()
	for i, tx := range txs {
		seen := map[string]bool{}
		for _, it := range tx {
			require.False(t, seen[it], "basket %d repeats %q", i, it)
			seen[it] = true
		}
	}
}

func countWith(txs [][]string, items ...string) int {
	n := 0
	for _, tx := range txs {
		all := true
		for _, it := range items {
			if !slices.Contains(tx, it) {
				all = false
				break
			}
		}
		if all {
			n++
		}
	}
	return n
}

func TestBuildTransactions_Empty(t *testing.T) {
	txs, err := builder.BuildTransactions(nil)
	require.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestBuildTransactions_NilConstructor(t *testing.T) {
	_, err := builder.BuildTransactions(nil, builder.Groceries(), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomBaskets_Shape(t *testing.T) {
	txs, err := builder.BuildTransactions(seeded(1), builder.RandomBaskets(2000, 10, 0.3))
	require.NoError(t, err)
	require.Len(t, txs, 2000)
	assertNoDuplicates(t, txs)

	// each item's empirical support stays near p
	for j := 0; j < 10; j++ {
		s := float64(countWith(txs, builder.DefaultIDFn(j))) / 2000
		assert.InDelta(t, 0.3, s, 0.05, "item %d", j)
	}
}

func TestRandomBaskets_Deterministic(t *testing.T) {
	a, err := builder.BuildTransactions(seeded(5), builder.RandomBaskets(50, 8, 0.4))
	require.NoError(t, err)
	b, err := builder.BuildTransactions(seeded(5), builder.RandomBaskets(50, 8, 0.4))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.BuildTransactions(seeded(6), builder.RandomBaskets(50, 8, 0.4))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandomBaskets_CertainWithoutRNG(t *testing.T) {
	full, err := builder.BuildTransactions(nil, builder.RandomBaskets(3, 4, 1))
	require.NoError(t, err)
	for _, tx := range full {
		assert.Equal(t, []string{"0", "1", "2", "3"}, tx)
	}

	none, err := builder.BuildTransactions(nil, builder.RandomBaskets(3, 4, 0))
	require.NoError(t, err)
	require.Len(t, none, 3)
	for _, tx := range none {
		assert.Empty(t, tx)
	}
}

func TestRandomBaskets_Labels(t *testing.T) {
	txs, err := builder.BuildTransactions(
		[]builder.BuilderOption{builder.WithItemPrefix("sku")},
		builder.RandomBaskets(1, 3, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"sku0", "sku1", "sku2"}}, txs)
}

func TestZipfBaskets(t *testing.T) {
	txs, err := builder.BuildTransactions(seeded(3), builder.ZipfBaskets(1000, 50, 4, 1.5))
	require.NoError(t, err)
	require.Len(t, txs, 1000)
	assertNoDuplicates(t, txs)

	for _, tx := range txs {
		assert.NotEmpty(t, tx)
		assert.LessOrEqual(t, len(tx), 4)
	}
	// rank 0 is the most popular item
	assert.Greater(t, countWith(txs, "0"), countWith(txs, "10"))
}

func TestPlantPattern(t *testing.T) {
	pattern := []string{"1", "4", "7"}
	txs, err := builder.BuildTransactions(seeded(11),
		builder.RandomBaskets(1000, 20, 0.05),
		builder.PlantPattern(pattern, 0.4),
	)
	require.NoError(t, err)
	assertNoDuplicates(t, txs)

	s := float64(countWith(txs, pattern...)) / 1000
	assert.GreaterOrEqual(t, s, 0.33)
	assert.LessOrEqual(t, s, 0.47)
}

func TestPlantPattern_Everywhere(t *testing.T) {
	txs, err := builder.BuildTransactions(nil, builder.Groceries(), builder.PlantPattern([]string{"beer", "tea"}, 1))
	require.NoError(t, err)
	assert.Equal(t, 5, countWith(txs, "beer", "tea"))
	assert.Equal(t, []string{"bread", "milk", "beer", "tea"}, txs[0])
	assert.Equal(t, []string{"bread", "diaper", "beer", "eggs", "tea"}, txs[1])
}

func TestFixed(t *testing.T) {
	in := [][]string{{"a", "b", "a"}, {}}
	txs, err := builder.BuildTransactions(nil, builder.Fixed(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {}}, txs)

	txs[0][0] = "z"
	assert.Equal(t, "a", in[0][0], "baskets are copied")
}

func TestGroceries(t *testing.T) {
	txs, err := builder.BuildTransactions(nil, builder.Groceries())
	require.NoError(t, err)
	require.Len(t, txs, 5)
	assert.Equal(t, 3, countWith(txs, "beer", "diaper"))

	txs[0][0] = "changed"
	again, err := builder.BuildTransactions(nil, builder.Groceries())
	require.NoError(t, err)
	assert.Equal(t, "bread", again[0][0])
}

func TestConstructorErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"random/n", seeded(1), []builder.Constructor{builder.RandomBaskets(0, 5, 0.5)}, builder.ErrTooFewTransactions},
		{"random/items", seeded(1), []builder.Constructor{builder.RandomBaskets(5, 0, 0.5)}, builder.ErrTooFewItems},
		{"random/p<0", seeded(1), []builder.Constructor{builder.RandomBaskets(5, 5, -0.1)}, builder.ErrInvalidProbability},
		{"random/p>1", seeded(1), []builder.Constructor{builder.RandomBaskets(5, 5, 1.1)}, builder.ErrInvalidProbability},
		{"random/NaN", seeded(1), []builder.Constructor{builder.RandomBaskets(5, 5, math.NaN())}, builder.ErrInvalidProbability},
		{"random/rng", nil, []builder.Constructor{builder.RandomBaskets(5, 5, 0.5)}, builder.ErrNeedRandSource},
		{"zipf/size", seeded(1), []builder.Constructor{builder.ZipfBaskets(5, 5, 0, 2)}, builder.ErrTooFewItems},
		{"zipf/size>items", seeded(1), []builder.Constructor{builder.ZipfBaskets(5, 3, 4, 2)}, builder.ErrTooFewItems},
		{"zipf/s", seeded(1), []builder.Constructor{builder.ZipfBaskets(5, 5, 2, 1)}, builder.ErrInvalidExponent},
		{"zipf/rng", nil, []builder.Constructor{builder.ZipfBaskets(5, 5, 2, 2)}, builder.ErrNeedRandSource},
		{"plant/empty", seeded(1), []builder.Constructor{builder.Groceries(), builder.PlantPattern(nil, 0.5)}, builder.ErrTooFewItems},
		{"plant/first", seeded(1), []builder.Constructor{builder.PlantPattern([]string{"a"}, 0.5)}, builder.ErrTooFewTransactions},
		{"plant/rng", nil, []builder.Constructor{builder.Groceries(), builder.PlantPattern([]string{"a"}, 0.5)}, builder.ErrNeedRandSource},
		{"fixed/empty", nil, []builder.Constructor{builder.Fixed(nil)}, builder.ErrTooFewTransactions},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txs, err := builder.BuildTransactions(tc.opts, tc.cons...)
			assert.Nil(t, txs)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
