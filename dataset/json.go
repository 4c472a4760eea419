package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

func readJSON(r io.Reader) ([][]string, error) {
	var raw [][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	txs := make([][]string, len(raw))
	for i, row := range raw {
		tx := make([]string, 0, len(row))
		for _, cell := range row {
			if item := strings.TrimSpace(cell); item != "" {
				tx = append(tx, item)
			}
		}
		txs[i] = tx
	}
	return txs, nil
}

// WriteJSON writes txs as an array of string arrays.
func WriteJSON(w io.Writer, txs [][]string) error {
	if txs == nil {
		txs = [][]string{}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(txs); err != nil {
		return fmt.Errorf("dataset: write json: %w", err)
	}
	return nil
}
