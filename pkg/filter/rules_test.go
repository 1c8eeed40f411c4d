package filter

import "testing"

func TestDefaultRules_Match(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"ts line", "TS     0  1  2  stream=4 op pid=3 ts=1000", true},
		{"ts with event marker", "TS 0 event=9", true},
		{"ts bare tag", "TS", true},
		{"ts prefix of longer word", "TSX something", true},
		{"cqm event 9", "CQM    0  1  2  event=9    evt=x vc=0 pid=1  ts=1", true},
		{"cqm event 8", "CQM    0  1  2  event=8    evt=x vc=0 pid=1  ts=1", true},
		{"cqm event 90 contains event=9", "CQM 0 event=90", true},
		{"cqm other event", "CQM    0  1  2  event=7    evt=x vc=0 pid=1  ts=1", false},
		{"cqm no event", "CQM 0 1 2", false},
		{"other tag with marker", "SIP 0 event=9", false},
		{"marker before tag", "event=9 CQM", false},
		{"lower case tag", "ts 0 1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Match(tt.line); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRule_Match(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		line string
		want bool
	}{
		{"tag only", Rule{Tag: "DMA"}, "DMA 1 2", true},
		{"tag mismatch", Rule{Tag: "DMA"}, "SIP 1 2", false},
		{"any marker", Rule{Tag: "DMA", Markers: []string{"a=1", "b=2"}}, "DMA b=2", true},
		{"no marker", Rule{Tag: "DMA", Markers: []string{"a=1"}}, "DMA b=2", false},
		{"empty tag matches everything", Rule{}, "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Match(tt.line); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRuleSet_Empty(t *testing.T) {
	var rules RuleSet
	if rules.Match("TS 1") {
		t.Error("empty rule set should match nothing")
	}
}
