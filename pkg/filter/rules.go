// Package filter selects trace log lines by their leading engine tag and
// embedded event markers.
package filter

import "strings"

// Engine tags recognised by the default rule set.
const (
	TagTS  = "TS"
	TagCQM = "CQM"
)

// Rule selects lines starting with Tag. When Markers is non-empty the line
// must also contain at least one of them.
type Rule struct {
	Tag     string   `yaml:"tag" toml:"tag" json:"tag"`
	Markers []string `yaml:"markers,omitempty" toml:"markers,omitempty" json:"markers,omitempty"`
}

// Match reports whether line satisfies the rule. The line is expected to be
// trimmed already.
func (r Rule) Match(line string) bool {
	if !strings.HasPrefix(line, r.Tag) {
		return false
	}
	if len(r.Markers) == 0 {
		return true
	}
	for _, m := range r.Markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// RuleSet is an ordered list of rules; a line is selected if any rule matches.
type RuleSet []Rule

// DefaultRules returns every TS line plus CQM lines carrying event 8 or 9.
func DefaultRules() RuleSet {
	return RuleSet{
		{Tag: TagTS},
		{Tag: TagCQM, Markers: []string{"event=9", "event=8"}},
	}
}

// Match reports whether any rule in the set matches line.
func (rs RuleSet) Match(line string) bool {
	for _, r := range rs {
		if r.Match(line) {
			return true
		}
	}
	return false
}
