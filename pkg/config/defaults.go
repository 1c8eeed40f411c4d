package config

import "github.com/tracesift/tracesift/pkg/filter"

// Default values for configuration.
const (
	DefaultSummaryFormat = "text"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "auto"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills every unset field.
func (c *Config) applyDefaults() {
	if len(c.Filter.Rules) == 0 {
		c.Filter.Rules = filter.DefaultRules()
	}
	if c.Summary.Format == "" {
		c.Summary.Format = DefaultSummaryFormat
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
