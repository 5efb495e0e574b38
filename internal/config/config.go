// Package config provides Viper-based configuration loading for the
// dice roller CLI and its compile-time wiring graph.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// EngineConfig selects the default number-generation engine.
type EngineConfig struct {
	// Kind selects the engine: "math", "crypto", or "mt19937".
	Kind string `mapstructure:"kind"`
}

// DefaultsConfig is the top-level application configuration for the
// dice roller: the engine a DiceRoll uses when none is supplied
// explicitly, the modifier-loop iteration cap, and logging.
// IterationCap is loaded and validated only; the dice modifiers use
// their own fixed cap of 1000 and do not read it.
type DefaultsConfig struct {
	Engine       EngineConfig  `mapstructure:"engine"`
	IterationCap int           `mapstructure:"iteration_cap"`
	Logging      LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c DefaultsConfig) Validate() error {
	var errs []string

	if err := validateEngine(c.Engine); err != nil {
		errs = append(errs, err.Error())
	}
	if c.IterationCap < 1 {
		errs = append(errs, fmt.Sprintf("iteration_cap must be >= 1, got %d", c.IterationCap))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateEngine(e EngineConfig) error {
	validKinds := map[string]bool{"math": true, "crypto": true, "mt19937": true}
	if !validKinds[e.Kind] {
		return fmt.Errorf("engine.kind must be one of [math, crypto, mt19937], got %q", e.Kind)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies
// environment variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML
// configuration file.
// Postcondition: Returns a valid DefaultsConfig or a non-nil error.
func Load(path string) (DefaultsConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvPrefix("DICEROLLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return DefaultsConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg DefaultsConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultsConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultsConfig{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a DefaultsConfig from an already-configured
// Viper instance. It sets no defaults of its own; the wiring graph
// uses Load, not this function.
//
// Precondition: v must be non-nil.
// Postcondition: Returns a valid DefaultsConfig or a non-nil error.
func LoadFromViper(v *viper.Viper) (DefaultsConfig, error) {
	var cfg DefaultsConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultsConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultsConfig{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.kind", "math")
	v.SetDefault("iteration_cap", 1000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
