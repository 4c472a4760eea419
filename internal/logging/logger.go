// Package logging builds the zerolog logger used by the basket CLI.
//
// Library packages (eclat, rules) never log globally; they accept a
// zerolog.Logger option and default to zerolog.Nop(). The CLI creates one
// logger with New and hands it down.
//
//	log := logging.New(logging.Config{Level: "debug", Format: "console"})
//	res, err := eclat.Mine(idx, eclat.WithLogger(log), eclat.WithVerbose(true))
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, disabled.
	// Default: info
	Level string

	// Format is json or console.
	// Default: console (the CLI is interactive)
	Format string

	// Timestamp enables timestamps in log output.
	Timestamp bool

	// Output is the log destination. Default: os.Stderr, so results on
	// stdout stay clean.
	Output io.Writer
}

// DefaultConfig returns the CLI defaults.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "console",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// New builds a logger from cfg. Empty fields fall back to DefaultConfig.
// The level is set on the returned logger only; the zerolog global level is
// left alone.
func New(cfg Config) zerolog.Logger {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}

	output := cfg.Output
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(cfg.Output),
		}
	}

	logger := zerolog.New(output).Level(parseLevel(cfg.Level))
	if cfg.Timestamp {
		logger = logger.With().Timestamp().Logger()
	}
	return logger
}

// parseLevel converts a level name to zerolog.Level; unknown names mean info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
