package filter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tracesift/tracesift/pkg/parser"
)

// Stats summarises a filter run.
type Stats struct {
	LinesRead    int
	LinesMatched int
}

// Run reads every line from src, trims it, and writes the lines accepted by
// rules to w in input order.
func Run(ctx context.Context, src parser.LineSource, w io.Writer, rules RuleSet) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriter(w)

	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.LinesRead++

		trimmed := strings.TrimSpace(line.Content)
		if !rules.Match(trimmed) {
			continue
		}

		stats.LinesMatched++
		if _, err := fmt.Fprintln(bw, trimmed); err != nil {
			return stats, fmt.Errorf("writing output: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("writing output: %w", err)
	}
	return stats, nil
}
