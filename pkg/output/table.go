package output

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TableFormatter renders the report as a bordered table with grouped digits.
type TableFormatter struct {
	opts    FormatOptions
	printer *message.Printer
}

// NewTableFormatter creates a new table formatter with the given options.
func NewTableFormatter(opts FormatOptions) *TableFormatter {
	return &TableFormatter{
		opts:    opts,
		printer: message.NewPrinter(language.English),
	}
}

// Name returns the format name.
func (f *TableFormatter) Name() string {
	return FormatTable
}

// Format renders the report as a table.
func (f *TableFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(report.Source)
	tw.AppendHeader(table.Row{"Statistic", "Host (ns)", "Device (cycles)"})

	tw.AppendRow(table.Row{"min", f.bigInt(report.HostMin), f.bigInt(report.CycleMin)})
	tw.AppendRow(table.Row{"max", f.bigInt(report.HostMax), f.bigInt(report.CycleMax)})
	tw.AppendRow(table.Row{"span", f.bigInt(report.HostSpan), f.bigInt(report.CycleSpan)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"span (s)", formatFloat(report.HostSpanSeconds), ""})

	rate := "n/a"
	if report.CycleRate != nil {
		rate = f.printer.Sprintf("%.0f", *report.CycleRate)
	}
	tw.AppendRow(table.Row{"cycles/s", "", rate})

	if f.opts.Verbose {
		tw.AppendSeparator()
		tw.AppendRow(table.Row{"records", f.printer.Sprintf("%d", report.Records), ""})
		tw.AppendRow(table.Row{"skipped", f.printer.Sprintf("%d", report.Skipped), ""})
		tw.AppendRow(table.Row{"lines", f.printer.Sprintf("%d", report.LinesRead), ""})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

// bigInt groups digits for values that fit in 64 bits; the empty-input
// sentinel does not and is printed plain.
func (f *TableFormatter) bigInt(v *big.Int) string {
	switch {
	case v.IsInt64():
		return f.printer.Sprintf("%d", v.Int64())
	case v.IsUint64():
		return f.printer.Sprintf("%d", v.Uint64())
	default:
		return v.String()
	}
}
