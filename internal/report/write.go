package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// tabular is a row that can be laid out as table or CSV cells.
type tabular interface {
	header() []string
	record() []string
}

func (ItemsetRow) header() []string { return []string{"itemsets", "support", "frequency"} }

func (r ItemsetRow) record() []string {
	return []string{
		strings.Join(r.Itemsets, " "),
		formatFloat(r.Support),
		strconv.FormatUint(r.Frequency, 10),
	}
}

func (RuleRow) header() []string {
	return []string{"antecedent", "consequence", "confidence", "support", "lift"}
}

func (r RuleRow) record() []string {
	return []string{
		strings.Join(r.Antecedent, " "),
		strings.Join(r.Consequence, " "),
		formatFloat(r.Confidence),
		formatFloat(r.Support),
		formatFloat(r.Lift),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteItemsets renders itemset rows to w.
func WriteItemsets(w io.Writer, f Format, rows []ItemsetRow) error {
	return write(w, f, rows)
}

// WriteRules renders rule rows to w.
func WriteRules(w io.Writer, f Format, rows []RuleRow) error {
	return write(w, f, rows)
}

func write[R tabular](w io.Writer, f Format, rows []R) error {
	if rows == nil {
		rows = []R{}
	}

	var err error
	switch f {
	case FormatTable:
		err = writeTable(w, rows)
	case FormatCSV:
		err = writeCSV(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(rows); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("report: write %s: %w", f, err)
	}
	return nil
}

func writeTable[R tabular](w io.Writer, rows []R) error {
	var zero R
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	head := cell.Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		}).
		Headers(zero.header()...).
		Rows(records...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeCSV[R tabular](w io.Writer, rows []R) error {
	var zero R
	cw := csv.NewWriter(w)
	if err := cw.Write(zero.header()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
