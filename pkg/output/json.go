package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return FormatJSON
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if !f.opts.Verbose {
		// Line accounting only with verbose
		return encoder.Encode(statsOnly{Report: report})
	}

	return encoder.Encode(report)
}

// statsOnly hides the line accounting fields of the embedded Report.
type statsOnly struct {
	*Report
	Records   *int `json:"records,omitempty"`
	Skipped   *int `json:"skipped,omitempty"`
	LinesRead *int `json:"lines_read,omitempty"`
}
