package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter prints the seven summary statistics, one per line. Its output
// is fixed, so it takes no options.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return FormatText
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	lines := []struct {
		label string
		value any
	}{
		{"host min: ", report.HostMin},
		{"host max: ", report.HostMax},
		{"dev min: ", report.CycleMin},
		{"dev max: ", report.CycleMax},
		{"host span: ", report.HostSpan},
		{"cycle span: ", report.CycleSpan},
		{"host span in seconds: ", formatFloat(report.HostSpanSeconds)},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}
