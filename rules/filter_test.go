package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basket/rules"
)

func TestCompile_Invalid(t *testing.T) {
	_, err := rules.Compile("lift >")
	assert.Error(t, err)

	_, err = rules.Compile("lift + 1")
	assert.Error(t, err, "non-boolean expressions are rejected")

	_, err = rules.Compile("novelty > 1")
	assert.Error(t, err, "unknown variables are rejected")
}

func TestFilter(t *testing.T) {
	res := mine(t, groceries(), 0.6)
	rs, err := rules.Generate(res, 0)
	require.NoError(t, err)

	tests := []struct {
		expr string
		want int
	}{
		{"confidence >= 0.8", 1},
		{"lift > 1", 2},
		{`consequence == "milk"`, 2},
		{`"diaper" in antecedent`, 3},
		{"size == 2 && support >= 0.6", 8},
		{"conviction > 100", 1},
		{"leverage < 0", 6},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			p, err := rules.Compile(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.expr, p.String())
			assert.Len(t, rules.Filter(rs, p), tc.want)
		})
	}

	assert.Len(t, rules.Filter(rs, nil), len(rs), "nil predicate keeps everything")
}
