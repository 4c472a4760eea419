package rules_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basket/builder"
	"github.com/katalvlaran/basket/eclat"
	"github.com/katalvlaran/basket/rules"
)

func groceries() [][]string {
	return [][]string{
		{"bread", "milk"},
		{"bread", "diaper", "beer", "eggs"},
		{"milk", "diaper", "beer", "cola"},
		{"bread", "milk", "diaper", "beer"},
		{"bread", "milk", "diaper", "cola"},
	}
}

func mine(t *testing.T, txs [][]string, minSupport float64) *eclat.Result[string] {
	t.Helper()
	res, err := eclat.Fit(txs, eclat.WithMinSupport(minSupport))
	require.NoError(t, err)
	return res
}

func TestGenerate_Groceries(t *testing.T) {
	res := mine(t, groceries(), 0.6)

	rs, err := rules.Generate(res, 0.8)
	require.NoError(t, err)
	require.Len(t, rs, 1, "only {beer} -> {diaper} reaches 0.8")

	r := rs[0]
	assert.Equal(t, []string{"beer"}, r.Antecedent)
	assert.Equal(t, []string{"diaper"}, r.Consequence)

	full, _ := res.Support("beer", "diaper")
	ante, _ := res.Support("beer")
	cons, _ := res.Support("diaper")
	assert.InDelta(t, full/ante, r.Confidence, 1e-9)
	assert.InDelta(t, 1.0, r.Confidence, 1e-9)
	assert.InDelta(t, full, r.Support, 1e-9, "rule support is the full itemset's")
	assert.InDelta(t, r.Confidence/cons, r.Lift, 1e-9)
	assert.InDelta(t, 1.25, r.Lift, 1e-9)
	assert.Equal(t, "{beer} -> {diaper}", r.String())
}

func TestGenerate_AllSplitsAtZeroConfidence(t *testing.T) {
	res := mine(t, groceries(), 0.6)

	rs, err := rules.Generate(res, 0)
	require.NoError(t, err)
	// four frequent pairs, two directions each
	assert.Len(t, rs, 8)

	diaperBeer := findRule(rs, []string{"diaper"}, "beer")
	require.NotNil(t, diaperBeer)
	assert.InDelta(t, 0.6/0.8, diaperBeer.Confidence, 1e-9)
}

func TestGenerate_FormulasAgainstTable(t *testing.T) {
	txs, err := builder.BuildTransactions(
		[]builder.BuilderOption{builder.WithSeed(99)},
		builder.RandomBaskets(120, 12, 0.3),
		builder.PlantPattern([]string{"1", "4", "7"}, 0.35),
	)
	require.NoError(t, err)
	res := mine(t, txs, 0.05)

	rs, err := rules.Generate(res, 0.3)
	require.NoError(t, err)
	require.NotEmpty(t, rs)

	for _, r := range rs {
		require.Len(t, r.Consequence, 1)
		assert.NotContains(t, r.Antecedent, r.Consequence[0])

		full, ok := res.Support(append(append([]string{}, r.Antecedent...), r.Consequence...)...)
		require.True(t, ok)
		ante, ok := res.Support(r.Antecedent...)
		require.True(t, ok, "antecedent of an emitted rule must be frequent")
		cons, ok := res.Support(r.Consequence...)
		require.True(t, ok)

		assert.InDelta(t, full, r.Support, 1e-9)
		assert.InDelta(t, full/ante, r.Confidence, 1e-9)
		assert.InDelta(t, r.Confidence/cons, r.Lift, 1e-9)
		assert.GreaterOrEqual(t, r.Confidence, 0.3)
		assert.InDelta(t, full-ante*cons, r.Leverage(), 1e-9)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	res := mine(t, groceries(), 0.4)

	first, err := rules.Generate(res, 0.5)
	require.NoError(t, err)
	second, err := rules.Generate(res, 0.5)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same table and threshold give the same sequence")
	assert.ElementsMatch(t, first, second)
}

func TestGenerate_SingletonsOnly(t *testing.T) {
	res := mine(t, [][]string{{"a"}, {"b"}}, 0.5)

	rs, err := rules.Generate(res, 0)
	require.NoError(t, err)
	assert.Empty(t, rs)
}

func TestGenerate_InvalidParameters(t *testing.T) {
	res := mine(t, groceries(), 0.6)

	for _, c := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		rs, err := rules.Generate(res, c)
		assert.Nil(t, rs)
		assert.ErrorIs(t, err, rules.ErrInvalidParameter, "min_confidence=%v", c)
		assert.ErrorIs(t, err, eclat.ErrInvalidParameter, "one sentinel for both entry points")
	}

	rs, err := rules.Generate[string](nil, 0.5)
	assert.Nil(t, rs)
	assert.ErrorIs(t, err, rules.ErrInvalidParameter)
}

func TestRule_DerivedMetrics(t *testing.T) {
	r := rules.Rule[string]{Confidence: 1, Support: 0.6, Lift: 1.25}
	assert.True(t, math.IsInf(r.Conviction(), 1))
	// support(A)=0.6, support(C)=0.8
	assert.InDelta(t, 0.6-0.6*0.8, r.Leverage(), 1e-12)

	r = rules.Rule[string]{Confidence: 0.75, Support: 0.6, Lift: 0.75 / 0.6}
	// (1 - 0.6) / (1 - 0.75)
	assert.InDelta(t, 1.6, r.Conviction(), 1e-9)
}

func TestSort(t *testing.T) {
	rs := []rules.Rule[string]{
		{Antecedent: []string{"a"}, Consequence: []string{"b"}, Confidence: 0.5, Lift: 2, Support: 0.1},
		{Antecedent: []string{"b"}, Consequence: []string{"a"}, Confidence: 0.9, Lift: 1, Support: 0.1},
		{Antecedent: []string{"c"}, Consequence: []string{"a"}, Confidence: 0.7, Lift: 3, Support: 0.3},
	}

	rules.Sort(rs, rules.ByConfidence)
	assert.Equal(t, []float64{0.9, 0.7, 0.5}, []float64{rs[0].Confidence, rs[1].Confidence, rs[2].Confidence})

	rules.Sort(rs, rules.ByLift)
	assert.Equal(t, []float64{3, 2, 1}, []float64{rs[0].Lift, rs[1].Lift, rs[2].Lift})

	rules.Sort(rs, rules.BySupport)
	assert.Equal(t, 0.3, rs[0].Support)
	// ties keep the previous (lift) order
	assert.Equal(t, []string{"a"}, rs[1].Antecedent)
	assert.Equal(t, []string{"b"}, rs[2].Antecedent)
}

func TestParseSortKey(t *testing.T) {
	k, err := rules.ParseSortKey("lift")
	require.NoError(t, err)
	assert.Equal(t, rules.ByLift, k)

	_, err = rules.ParseSortKey("novelty")
	assert.ErrorIs(t, err, rules.ErrInvalidParameter)
}

func findRule(rs []rules.Rule[string], ante []string, cons string) *rules.Rule[string] {
	for i := range rs {
		if slices.Equal(ante, rs[i].Antecedent) && rs[i].Consequence[0] == cons {
			return &rs[i]
		}
	}
	return nil
}
