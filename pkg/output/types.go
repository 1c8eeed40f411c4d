// Package output provides formatting for sync point summaries.
package output

import (
	"math/big"

	"github.com/tracesift/tracesift/pkg/syncpoint"
)

// Report is the rendered view of a syncpoint.Summary.
type Report struct {
	// Source is the file the summary was read from.
	Source string `json:"source"`

	HostMin   *big.Int `json:"host_min"`
	HostMax   *big.Int `json:"host_max"`
	CycleMin  *big.Int `json:"dev_min"`
	CycleMax  *big.Int `json:"dev_max"`
	HostSpan  *big.Int `json:"host_span"`
	CycleSpan *big.Int `json:"cycle_span"`

	// HostSpanSeconds is HostSpan / 1e9.
	HostSpanSeconds float64 `json:"host_span_seconds"`

	// CycleRate is device cycles per host second; nil when undefined.
	CycleRate *float64 `json:"cycle_rate_hz,omitempty"`

	Records   int `json:"records"`
	Skipped   int `json:"skipped"`
	LinesRead int `json:"lines_read"`

	Points []syncpoint.SyncPoint `json:"points,omitempty"`
}

// NewReport creates a Report from a summary.
func NewReport(sum *syncpoint.Summary, source string) *Report {
	report := &Report{
		Source:          source,
		HostMin:         sum.Host.Min(),
		HostMax:         sum.Host.Max(),
		CycleMin:        sum.Cycle.Min(),
		CycleMax:        sum.Cycle.Max(),
		HostSpan:        sum.Host.Span(),
		CycleSpan:       sum.Cycle.Span(),
		HostSpanSeconds: sum.HostSpanSeconds(),
		Records:         sum.Records,
		Skipped:         sum.Skipped,
		LinesRead:       sum.LinesRead,
		Points:          sum.Points,
	}

	if rate, ok := sum.CycleRate(); ok {
		report.CycleRate = &rate
	}

	return report
}

// HasData returns true if at least one record contributed to the extrema.
func (r *Report) HasData() bool {
	return r.Records > 0
}
