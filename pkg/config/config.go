package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tracesift/tracesift/pkg/filter"
)

var (
	summaryFormats = []string{"text", "json", "table"}
	logLevels      = []string{"debug", "info", "warn", "error"}
	logFormats     = []string{"auto", "text", "json"}
)

// Load reads and validates a configuration file. The format is chosen by
// extension: .toml is TOML, anything else is YAML.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			// Empty document: keep defaults
			return nil
		}
		return err
	}
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if len(cfg.Filter.Rules) == 0 {
		return errors.New("filter.rules: at least one rule is required")
	}
	for i, rule := range cfg.Filter.Rules {
		if err := validateRule(rule); err != nil {
			return fmt.Errorf("filter.rules[%d]: %w", i, err)
		}
	}

	if !slices.Contains(summaryFormats, cfg.Summary.Format) {
		return fmt.Errorf("summary.format: invalid value %q (must be one of %s)",
			cfg.Summary.Format, strings.Join(summaryFormats, ", "))
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("log.level: invalid value %q (must be one of %s)",
			cfg.Log.Level, strings.Join(logLevels, ", "))
	}

	if !slices.Contains(logFormats, cfg.Log.Format) {
		return fmt.Errorf("log.format: invalid value %q (must be one of %s)",
			cfg.Log.Format, strings.Join(logFormats, ", "))
	}

	return nil
}

func validateRule(rule filter.Rule) error {
	if rule.Tag == "" {
		return errors.New("tag is required")
	}
	for j, m := range rule.Markers {
		if m == "" {
			return fmt.Errorf("markers[%d]: marker must not be empty", j)
		}
	}
	return nil
}
