package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/basket/dataset"
	"github.com/katalvlaran/basket/eclat"
	"github.com/katalvlaran/basket/internal/config"
	"github.com/katalvlaran/basket/internal/report"
)

// miningFlags are shared by mine and rules.
type miningFlags struct {
	minSupport  float64
	maxLength   int
	verbose     bool
	inputFormat string
	delimiter   string
	header      bool
	format      string
	output      string
}

func (f *miningFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64VarP(&f.minSupport, "min-support", "s", eclat.DefaultMinSupport, "minimum support in (0,1]")
	fs.IntVar(&f.maxLength, "max-length", eclat.NoMaxLength, "longest itemset to mine (-1 = unlimited)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log mining progress")
	fs.StringVarP(&f.inputFormat, "input-format", "i", "", "csv, tidy or json (default: from extension)")
	fs.StringVarP(&f.delimiter, "delimiter", "d", "", "cell delimiter for csv and tidy input")
	fs.BoolVar(&f.header, "header", false, "input has a header row")
	fs.StringVarP(&f.format, "format", "f", "table", "output format: table, csv, json or yaml")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
}

// apply copies explicitly set flags over cfg.
func (f *miningFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("min-support") {
		cfg.Mining.MinSupport = f.minSupport
	}
	if fs.Changed("max-length") {
		cfg.Mining.MaxLength = f.maxLength
	}
	if fs.Changed("verbose") {
		cfg.Mining.Verbose = f.verbose
	}
	if fs.Changed("input-format") {
		cfg.Input.Format = f.inputFormat
	}
	if fs.Changed("delimiter") {
		cfg.Input.Delimiter = unescapeDelimiter(f.delimiter)
	}
	if fs.Changed("header") {
		cfg.Input.Header = f.header
	}
	if fs.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fs.Changed("output") {
		cfg.Output.Path = f.output
	}
}

func unescapeDelimiter(s string) string {
	if s == `\t` || s == "tab" {
		return "\t"
	}
	return s
}

func newMineCmd(a *app) *cobra.Command {
	flags := &miningFlags{}
	cmd := &cobra.Command{
		Use:   "mine <file>",
		Short: "List frequent itemsets",
		Long: `Mine every itemset whose support (share of transactions containing it)
is at least --min-support. Rows show the itemset, its support and its
frequency (number of transactions).`,
		Example: `  basket mine baskets.csv -s 0.05
  basket mine orders.csv -i tidy --header -s 0.01 -f json -o itemsets.json`,
		GroupID: "analysis",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, a.cfg)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			res, err := a.mine(cmd, args[0])
			if err != nil {
				return err
			}
			return a.writeItemsets(cmd, report.ItemsetRows(res))
		},
	}
	flags.register(cmd)
	return cmd
}

// mine reads path and mines it with the resolved configuration.
func (a *app) mine(cmd *cobra.Command, path string) (*eclat.Result[string], error) {
	txs, err := a.readTransactions(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := eclat.Fit(txs,
		eclat.WithContext(cmd.Context()),
		eclat.WithMinSupport(a.cfg.Mining.MinSupport),
		eclat.WithMaxLength(a.cfg.Mining.MaxLength),
		eclat.WithLogger(a.log),
		eclat.WithVerbose(a.cfg.Mining.Verbose),
	)
	if err != nil {
		return nil, fmt.Errorf("mine %s: %w", path, err)
	}

	a.log.Debug().
		Str("file", path).
		Int("transactions", res.TransactionCount()).
		Int("itemsets", res.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("mining complete")
	return res, nil
}

func (a *app) readTransactions(path string) ([][]string, error) {
	format := dataset.FormatFromPath(path)
	if a.cfg.Input.Format != "" {
		f, err := dataset.ParseFormat(a.cfg.Input.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	var opts []dataset.Option
	if d := []rune(a.cfg.Input.Delimiter); len(d) == 1 {
		opts = append(opts, dataset.WithDelimiter(d[0]))
	}
	opts = append(opts, dataset.WithHeader(a.cfg.Input.Header))

	txs, err := dataset.ReadFile(path, format, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("file", path).Str("format", string(format)).Int("transactions", len(txs)).Msg("input loaded")
	return txs, nil
}

func (a *app) writeItemsets(cmd *cobra.Command, rows []report.ItemsetRow) (err error) {
	format, err := report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	w, closeFn, err := a.output(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()
	return report.WriteItemsets(w, format, rows)
}
