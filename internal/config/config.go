// Package config resolves matchkit runtime settings from .matchkit.yaml,
// MATCHKIT_* environment variables and CLI flags, in viper precedence order.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Accepted values for Config.InputFormat and Config.Output.
const (
	FormatEdges = "edges"
	FormatTOML  = "toml"

	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all runtime configuration for a matchkit invocation.
type Config struct {
	LogLevel         string `mapstructure:"log_level"`
	CheckInvariants  bool   `mapstructure:"check_invariants"`
	InputFormat      string `mapstructure:"input_format"`
	Output           string `mapstructure:"output"`
	MaxAugmentations int    `mapstructure:"max_augmentations"`
}

// SetDefaults installs the built-in defaults on viper.
func SetDefaults() {
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("check_invariants", false)
	viper.SetDefault("input_format", FormatEdges)
	viper.SetDefault("output", OutputText)
	viper.SetDefault("max_augmentations", 0)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects unknown formats and negative limits.
func (c Config) Validate() error {
	switch c.InputFormat {
	case FormatEdges, FormatTOML:
	default:
		return errors.Newf("config: input_format must be %q or %q, got %q", FormatEdges, FormatTOML, c.InputFormat)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return errors.Newf("config: output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	if c.MaxAugmentations < 0 {
		return errors.Newf("config: max_augmentations must be >= 0, got %d", c.MaxAugmentations)
	}

	return nil
}
