// Package config loads the basket CLI configuration.
//
// Values are layered, later layers winning:
//
//  1. Defaults (DefaultConfig)
//  2. YAML file: the path given to Load, else $BASKET_CONFIG, else the first
//     of DefaultConfigPaths that exists
//  3. Environment: BASKET_<SECTION>_<KEY>, e.g. BASKET_MINING_MIN_SUPPORT=0.05
//     sets mining.min_support
//
// Command-line flags are applied on top by the CLI itself, then Validate runs.
//
// Example file:
//
//	mining:
//	  min_support: 0.02
//	  max_length: 3
//	rules:
//	  min_confidence: 0.6
//	  sort: lift
//	  where: "lift > 1.2"
//	output:
//	  format: table
//	logging:
//	  level: debug
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "BASKET_"

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = EnvPrefix + "CONFIG"

// DefaultConfigPaths are searched in order when no path is given.
var DefaultConfigPaths = []string{
	"basket.yaml",
	"basket.yml",
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Mining  MiningConfig  `koanf:"mining"`
	Rules   RulesConfig   `koanf:"rules"`
	Input   InputConfig   `koanf:"input"`
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`
}

// MiningConfig drives eclat.Mine.
type MiningConfig struct {
	MinSupport float64 `koanf:"min_support" validate:"gt=0,lte=1"`
	// MaxLength caps itemset length; -1 means unlimited.
	MaxLength int  `koanf:"max_length" validate:"eq=-1|gte=1"`
	Verbose   bool `koanf:"verbose"`
}

// RulesConfig drives rules.Generate and the post-filters.
type RulesConfig struct {
	MinConfidence float64 `koanf:"min_confidence" validate:"gte=0,lte=1"`
	Sort          string  `koanf:"sort" validate:"oneof=confidence lift support"`
	Where         string  `koanf:"where"`
	// Limit keeps the first N rules after sorting; 0 keeps all.
	Limit  int  `koanf:"limit" validate:"gte=0"`
	Strict bool `koanf:"strict"`
}

// InputConfig describes the transaction file.
type InputConfig struct {
	// Format is csv, tidy or json; empty guesses from the file extension.
	Format    string `koanf:"format" validate:"omitempty,oneof=csv tidy json"`
	Delimiter string `koanf:"delimiter" validate:"omitempty,len=1"`
	Header    bool   `koanf:"header"`
}

// OutputConfig selects the report writer.
type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=table csv json yaml"`
	// Path is the output file; empty means stdout.
	Path string `koanf:"path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Mining: MiningConfig{
			MinSupport: 0.01,
			MaxLength:  -1,
			Verbose:    false,
		},
		Rules: RulesConfig{
			MinConfidence: 0.5,
			Sort:          "confidence",
			Where:         "",
			Limit:         0,
			Strict:        false,
		},
		Input: InputConfig{
			Format:    "",
			Delimiter: "",
			Header:    false,
		},
		Output: OutputConfig{
			Format: "table",
			Path:   "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load layers defaults, the YAML file and the environment into a Config.
// path may be empty. The result is not validated; call Validate after
// applying flag overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// Layer 2: optional YAML file
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	// Layer 3: environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns $BASKET_CONFIG or the first existing default path.
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc maps BASKET_MINING_MIN_SUPPORT to mining.min_support: the
// first segment after the prefix names the section, the rest is the key.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	return section + "." + rest
}
