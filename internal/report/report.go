// Package report turns mining results into flat rows and renders them.
//
// Itemset rows carry {itemsets, support, frequency}; rule rows carry
// {antecedent, consequence, confidence, support, lift}. Both render as an
// aligned terminal table, CSV, JSON or YAML.
package report

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/basket/eclat"
	"github.com/katalvlaran/basket/rules"
)

// Format names an output layout.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat reports a format outside table, csv, json and yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ItemsetRow is one frequent itemset. Frequency is the number of transactions
// holding the itemset, round(support·n).
type ItemsetRow struct {
	Itemsets  []string `json:"itemsets" yaml:"itemsets"`
	Support   float64  `json:"support" yaml:"support"`
	Frequency uint64   `json:"frequency" yaml:"frequency"`
}

// RuleRow is one association rule.
type RuleRow struct {
	Antecedent  []string `json:"antecedent" yaml:"antecedent"`
	Consequence []string `json:"consequence" yaml:"consequence"`
	Confidence  float64  `json:"confidence" yaml:"confidence"`
	Support     float64  `json:"support" yaml:"support"`
	Lift        float64  `json:"lift" yaml:"lift"`
}

// ItemsetRows flattens res in Sorted order: shorter itemsets first, then
// lexicographically by items.
func ItemsetRows[T cmp.Ordered](res *eclat.Result[T]) []ItemsetRow {
	if res == nil {
		return []ItemsetRow{}
	}
	sets := res.Sorted()
	rows := make([]ItemsetRow, len(sets))
	for i, s := range sets {
		rows[i] = ItemsetRow{
			Itemsets:  stringify(s.Items),
			Support:   s.Support,
			Frequency: s.Count,
		}
	}
	return rows
}

// RuleRows flattens rs, keeping its order.
func RuleRows[T cmp.Ordered](rs []rules.Rule[T]) []RuleRow {
	rows := make([]RuleRow, len(rs))
	for i, r := range rs {
		rows[i] = RuleRow{
			Antecedent:  stringify(r.Antecedent),
			Consequence: stringify(r.Consequence),
			Confidence:  r.Confidence,
			Support:     r.Support,
			Lift:        r.Lift,
		}
	}
	return rows
}

func stringify[T cmp.Ordered](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprint(it)
	}
	return out
}
