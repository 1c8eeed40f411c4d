// Package config provides optional configuration loading for the tracesift tools.
package config

import "github.com/tracesift/tracesift/pkg/filter"

// Config is the root configuration structure.
type Config struct {
	Filter  FilterConfig  `yaml:"filter" toml:"filter"`
	Summary SummaryConfig `yaml:"summary" toml:"summary"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// FilterConfig controls which lines tracefilter selects.
type FilterConfig struct {
	// Rules replaces the default TS/CQM rule set when non-empty.
	Rules filter.RuleSet `yaml:"rules" toml:"rules"`
}

// SummaryConfig controls syncstat output.
type SummaryConfig struct {
	// Format is text, json or table.
	Format string `yaml:"format" toml:"format"`

	// RetainPoints keeps parsed records so the json format can list them.
	RetainPoints bool `yaml:"retain_points" toml:"retain_points"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level" toml:"level"`

	// Format is auto, text or json. Auto picks text on a terminal.
	Format string `yaml:"format" toml:"format"`
}
