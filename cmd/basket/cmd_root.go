package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/basket/internal/config"
	"github.com/katalvlaran/basket/internal/logging"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// app carries state shared by every subcommand once the root pre-run has
// resolved configuration and logging.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "basket",
		Short: "Frequent itemset mining and association rules (ECLAT)",
		Long: `basket finds itemsets that occur together in at least a given share of
transactions, using the depth-first ECLAT algorithm over a vertical
item -> transaction-set index, and derives association rules from them.

Configuration is layered: defaults, then a YAML file (--config, $BASKET_CONFIG
or ./basket.yaml), then BASKET_* environment variables, then flags.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "trace, debug, info, warn, error or disabled")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "console or json")

	root.AddGroup(
		&cobra.Group{ID: "analysis", Title: "Analysis Commands:"},
		&cobra.Group{ID: "data", Title: "Data Commands:"},
	)
	root.AddCommand(newMineCmd(a))
	root.AddCommand(newRulesCmd(a))
	root.AddCommand(newGenerateCmd(a))

	return root
}

// setup loads configuration, applies the persistent flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}

	a.cfg = cfg
	a.log = logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: cfg.Logging.Format == "json",
		Output:    cmd.ErrOrStderr(),
	})
	return nil
}

// output returns the destination for results: the configured file, or the
// command's stdout. The returned close func is always safe to call.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.cfg.Output.Path == "" || a.cfg.Output.Path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.cfg.Output.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
