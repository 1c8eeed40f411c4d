package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders a sync point report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json, table).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds line accounting to the json and table formats.
	Verbose bool
}

// Format names accepted by NewFormatter.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case FormatText, "":
		return NewTextFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	case FormatTable:
		return NewTableFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json or table)", name)
	}
}
