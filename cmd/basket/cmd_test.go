package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basket/internal/config"
	"github.com/katalvlaran/basket/internal/report"
)

const groceriesCSV = `bread,milk
bread,diaper,beer,eggs
milk,diaper,beer,cola
bread,milk,diaper,beer
bread,milk,diaper,cola
`

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestMine_CSV(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)

	out, _, err := run(t, "mine", in, "--min-support", "0.6", "--format", "csv")
	require.NoError(t, err)

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 9, "header plus eight itemsets")
	assert.Equal(t, []string{"beer", "0.6000", "3"}, recs[1])
	assert.Equal(t, []string{"diaper milk", "0.6000", "3"}, recs[8])
}

func TestMine_MaxLengthAndOutputFile(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)
	dst := filepath.Join(t.TempDir(), "itemsets.json")

	out, _, err := run(t, "mine", in, "-s", "0.6", "--max-length", "1", "-f", "json", "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	var rows []report.ItemsetRow
	require.NoError(t, json.Unmarshal(raw, &rows))
	assert.Len(t, rows, 4)
}

func TestMine_TidyInput(t *testing.T) {
	in := writeFile(t, "orders.csv", "order,product\n1,tea\n1,milk\n2,tea\n3,milk\n3,tea\n")

	out, _, err := run(t, "mine", in, "-i", "tidy", "--header", "-s", "0.6", "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "milk tea,0.6667,2")
	assert.Contains(t, out, "tea,1.0000,3")
}

func TestMine_InvalidSupport(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)

	_, _, err := run(t, "mine", in, "-s", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMine_MissingFile(t *testing.T) {
	_, _, err := run(t, "mine", filepath.Join(t.TempDir(), "none.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMine_ConfigFile(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)
	cfg := writeFile(t, "basket.yaml", "mining:\n  min_support: 0.8\noutput:\n  format: csv\n")

	out, _, err := run(t, "--config", cfg, "mine", in)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "\n"), "header plus bread, diaper, milk")

	out, _, err = run(t, "--config", cfg, "mine", in, "-s", "0.6")
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(out, "\n"), "flags win over the file")
}

func TestMine_VerboseLogsToStderr(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)

	out, errOut, err := run(t, "--log-format", "json", "mine", in, "-s", "0.6", "-v", "-f", "csv")
	require.NoError(t, err)
	assert.NotContains(t, out, "level")
	assert.Contains(t, errOut, "mining finished")
}

func TestRules(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)

	out, _, err := run(t, "rules", in, "-s", "0.6", "-c", "0.8", "-f", "json")
	require.NoError(t, err)

	var rows []report.RuleRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"beer"}, rows[0].Antecedent)
	assert.Equal(t, []string{"diaper"}, rows[0].Consequence)
	assert.InDelta(t, 1.25, rows[0].Lift, 1e-9)
}

func TestRules_WhereSortLimit(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)

	out, _, err := run(t, "rules", in, "-s", "0.6", "-c", "0",
		"--where", "lift < 1", "--sort", "lift", "-n", "2", "-f", "csv")
	require.NoError(t, err)

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for _, rec := range recs[1:] {
		assert.Equal(t, "0.9375", rec[4])
	}
}

func TestRules_BadExpression(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)

	_, _, err := run(t, "rules", in, "--where", "lift >")
	assert.Error(t, err)
}

func TestRules_BadSort(t *testing.T) {
	in := writeFile(t, "groceries.csv", groceriesCSV)

	_, _, err := run(t, "rules", in, "--sort", "novelty")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate", "-n", "200", "--items", "10", "--density", "0.2",
		"--seed", "3", "--plant", "a,b", "--plant-rate", "1")
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 200)
	for _, rec := range recs {
		assert.Contains(t, rec, "a")
		assert.Contains(t, rec, "b")
	}

	again, _, err := run(t, "generate", "-n", "200", "--items", "10", "--density", "0.2",
		"--seed", "3", "--plant", "a,b", "--plant-rate", "1")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same dataset")
}

func TestGenerate_ThenMine(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "synthetic.json")
	_, _, err := run(t, "generate", "-n", "500", "--items", "30", "--zipf", "1.3",
		"--basket-size", "4", "--prefix", "sku", "--plant", "x,y,z", "--plant-rate", "0.5",
		"-f", "json", "-o", dst)
	require.NoError(t, err)

	out, _, err := run(t, "mine", dst, "-s", "0.4", "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "x y z,")
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "--density", "2")
	assert.Error(t, err)

	_, _, err = run(t, "generate", "-f", "parquet")
	assert.Error(t, err)
}
