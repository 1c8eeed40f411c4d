package syncpoint

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"

	"github.com/tracesift/tracesift/pkg/parser"
)

// Summary is the result of scanning a sync point file.
type Summary struct {
	// Host covers the host timestamps, in nanoseconds.
	Host Range

	// Cycle covers the device cycle counters.
	Cycle Range

	// Records is the number of well-formed lines.
	Records int

	// Skipped is the number of lines without exactly three tokens.
	Skipped int

	// LinesRead is the total number of lines scanned.
	LinesRead int

	// Points holds every parsed record when WithRetainPoints is set.
	Points []SyncPoint
}

// HostSpanSeconds returns the host span divided by 1e9, rounded to the
// nearest float64.
func (s *Summary) HostSpanSeconds() float64 {
	secs, _ := new(big.Rat).SetFrac(s.Host.Span(), big.NewInt(NanosPerSecond)).Float64()
	return secs
}

// CycleRate returns device cycles per host second. ok is false when there is
// no positive host span to divide by.
func (s *Summary) CycleRate() (rate float64, ok bool) {
	if s.Records == 0 || s.Host.Span().Sign() <= 0 {
		return 0, false
	}
	cyclesPerNano := new(big.Rat).SetFrac(s.Cycle.Span(), s.Host.Span())
	rate, _ = cyclesPerNano.Mul(cyclesPerNano, new(big.Rat).SetInt64(NanosPerSecond)).Float64()
	return rate, true
}

type options struct {
	retainPoints bool
	logger       *slog.Logger
}

// Option configures Summarize.
type Option func(*options)

// WithRetainPoints keeps every parsed record in Summary.Points.
func WithRetainPoints(v bool) Option {
	return func(o *options) {
		o.retainPoints = v
	}
}

// WithLogger sets the logger used for per-line debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Summarize reads every line from src and accumulates the host and device
// extrema. Lines that are not three tokens long are skipped. The first line
// with a non-integer field aborts the scan with a *ParseError.
func Summarize(ctx context.Context, src parser.LineSource, opts ...Option) (*Summary, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1 << 30)}))}
	for _, opt := range opts {
		opt(&o)
	}

	sum := &Summary{}
	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		sum.LinesRead++

		sp, ok, err := ParseLine(line.Content)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Source = line.Source
				perr.LineNum = line.LineNum
			}
			return nil, err
		}
		if !ok {
			sum.Skipped++
			o.logger.DebugContext(ctx, "skipping line",
				"source", line.Source,
				"line", line.LineNum)
			continue
		}

		sum.Records++
		sum.Host.Observe(sp.HostTime)
		sum.Cycle.Observe(sp.DevCycle)
		if o.retainPoints {
			sum.Points = append(sum.Points, sp)
		}
	}

	o.logger.DebugContext(ctx, "sync points summarized",
		"records", sum.Records,
		"skipped", sum.Skipped,
		"lines", sum.LinesRead)
	return sum, nil
}
