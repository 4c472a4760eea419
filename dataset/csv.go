package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

func newCSVReader(r io.Reader, o Options) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	cr.Comma = o.Delimiter
	cr.Comment = o.Comment
	return cr
}

// eachRecord calls fn for every data row, skipping the header when asked.
func eachRecord(r io.Reader, o Options, fn func(line int, rec []string) error) error {
	cr := newCSVReader(r, o)
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if first && o.Header {
			continue
		}
		line, _ := cr.FieldPos(0)
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

func readBaskets(r io.Reader, o Options) ([][]string, error) {
	txs := make([][]string, 0)
	err := eachRecord(r, o, func(_ int, rec []string) error {
		tx := make([]string, 0, len(rec))
		for _, cell := range rec {
			if item := strings.TrimSpace(cell); item != "" {
				tx = append(tx, item)
			}
		}
		txs = append(txs, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func readTidy(r io.Reader, o Options) ([][]string, error) {
	var (
		txs   = make([][]string, 0)
		byTID = make(map[string]int)
	)
	err := eachRecord(r, o, func(line int, rec []string) error {
		if len(rec) < 2 {
			return fmt.Errorf("%w: line %d: want transaction,item, got %d field(s)", ErrMalformed, line, len(rec))
		}
		tid := strings.TrimSpace(rec[0])
		if tid == "" {
			return fmt.Errorf("%w: line %d: empty transaction id", ErrMalformed, line)
		}
		pos, ok := byTID[tid]
		if !ok {
			pos = len(txs)
			byTID[tid] = pos
			txs = append(txs, make([]string, 0, 4))
		}
		if item := strings.TrimSpace(rec[1]); item != "" {
			txs[pos] = append(txs[pos], item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// WriteCSV writes one basket per row with the given delimiter (zero means ',').
func WriteCSV(w io.Writer, txs [][]string, delimiter rune) error {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}
	if err := cw.WriteAll(txs); err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}
	return nil
}
