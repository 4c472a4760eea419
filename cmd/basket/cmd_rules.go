package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/basket/internal/config"
	"github.com/katalvlaran/basket/internal/report"
	"github.com/katalvlaran/basket/rules"
)

type rulesFlags struct {
	miningFlags
	minConfidence float64
	where         string
	sort          string
	limit         int
	strict        bool
}

func (f *rulesFlags) register(cmd *cobra.Command) {
	f.miningFlags.register(cmd)
	fs := cmd.Flags()
	fs.Float64VarP(&f.minConfidence, "min-confidence", "c", rules.DefaultMinConfidence, "minimum confidence in [0,1]")
	fs.StringVarP(&f.where, "where", "w", "", `filter expression, e.g. "lift > 1.2 && size == 2"`)
	fs.StringVar(&f.sort, "sort", string(rules.ByConfidence), "sort by confidence, lift or support (descending)")
	fs.IntVarP(&f.limit, "limit", "n", 0, "keep the first N rules after sorting (0 = all)")
	fs.BoolVar(&f.strict, "strict", false, "fail when a subset support is missing instead of skipping")
}

func (f *rulesFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f.miningFlags.apply(cmd, cfg)
	fs := cmd.Flags()
	if fs.Changed("min-confidence") {
		cfg.Rules.MinConfidence = f.minConfidence
	}
	if fs.Changed("where") {
		cfg.Rules.Where = f.where
	}
	if fs.Changed("sort") {
		cfg.Rules.Sort = f.sort
	}
	if fs.Changed("limit") {
		cfg.Rules.Limit = f.limit
	}
	if fs.Changed("strict") {
		cfg.Rules.Strict = f.strict
	}
}

func newRulesCmd(a *app) *cobra.Command {
	flags := &rulesFlags{}
	cmd := &cobra.Command{
		Use:   "rules <file>",
		Short: "Derive association rules",
		Long: `Mine frequent itemsets, then split each into antecedent -> {item} rules.

  confidence = support(itemset) / support(antecedent)
  lift       = confidence / support({item})

--where filters with an expression over confidence, support, lift,
leverage, conviction, antecedent (list), consequence and size.`,
		Example: `  basket rules baskets.csv -s 0.02 -c 0.6
  basket rules baskets.csv -s 0.01 --where '"beer" in antecedent' --sort lift -n 20`,
		GroupID: "analysis",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, a.cfg)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runRules(cmd, args[0])
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) runRules(cmd *cobra.Command, path string) (err error) {
	rc := a.cfg.Rules

	// 1. Compile the filter before mining so typos fail fast.
	var pred *rules.Predicate
	if rc.Where != "" {
		if pred, err = rules.Compile(rc.Where); err != nil {
			return err
		}
	}
	key, err := rules.ParseSortKey(rc.Sort)
	if err != nil {
		return err
	}

	// 2. Mine and generate.
	res, err := a.mine(cmd, path)
	if err != nil {
		return err
	}
	opts := []rules.Option{rules.WithLogger(a.log)}
	if rc.Strict {
		opts = append(opts, rules.WithStrictSubsets())
	}
	rs, err := rules.Generate(res, rc.MinConfidence, opts...)
	if err != nil {
		return fmt.Errorf("rules %s: %w", path, err)
	}
	generated := len(rs)

	// 3. Filter, sort, truncate.
	rs = rules.Filter(rs, pred)
	rules.Sort(rs, key)
	if rc.Limit > 0 && len(rs) > rc.Limit {
		rs = rs[:rc.Limit]
	}
	a.log.Debug().Int("generated", generated).Int("kept", len(rs)).Str("sort", string(key)).Msg("rules ready")

	// 4. Render.
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
	return report.WriteRules(w, format, report.RuleRows(rs))
}
