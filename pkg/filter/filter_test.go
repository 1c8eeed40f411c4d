package filter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tracesift/tracesift/pkg/parser"
)

const sampleTrace = `SIP    0  0  1  event=9    pid=1 ts=10
  TS     0  1  2  stream=1 op pid=2 ts=20  
CQM    0  1  2  event=7    evt=a vc=0 pid=3  ts=30
CQM    0  1  2  event=9    evt=b vc=0 pid=4  ts=40
	CQM    0  1  2  event=8    evt=c vc=0 pid=5  ts=50
TS     0  1  2  stream=2 op pid=6 ts=60

DMA    0  1  event=8  payload=1 ts=70
`

func TestRun_SelectsAndPreservesOrder(t *testing.T) {
	var out bytes.Buffer
	src := parser.NewReaderSource("sample", strings.NewReader(sampleTrace))

	stats, err := Run(context.Background(), src, &out, DefaultRules())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := strings.Join([]string{
		"TS     0  1  2  stream=1 op pid=2 ts=20",
		"CQM    0  1  2  event=9    evt=b vc=0 pid=4  ts=40",
		"CQM    0  1  2  event=8    evt=c vc=0 pid=5  ts=50",
		"TS     0  1  2  stream=2 op pid=6 ts=60",
	}, "\n") + "\n"

	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}
	if stats.LinesRead != 8 {
		t.Errorf("LinesRead = %d, want 8", stats.LinesRead)
	}
	if stats.LinesMatched != 4 {
		t.Errorf("LinesMatched = %d, want 4", stats.LinesMatched)
	}
}

func TestRun_NoMatches(t *testing.T) {
	var out bytes.Buffer
	src := parser.NewReaderSource("sample", strings.NewReader("SIP 1\nDMA 2\n"))

	stats, err := Run(context.Background(), src, &out, DefaultRules())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
	if stats.LinesMatched != 0 {
		t.Errorf("LinesMatched = %d, want 0", stats.LinesMatched)
	}
}

func TestRun_DuplicateLinesKept(t *testing.T) {
	var out bytes.Buffer
	src := parser.NewReaderSource("sample", strings.NewReader("TS a\nTS a\n"))

	if _, err := Run(context.Background(), src, &out, DefaultRules()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "TS a\nTS a\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_Idempotent(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		src := parser.NewReaderSource("sample", strings.NewReader(sampleTrace))
		if _, err := Run(context.Background(), src, &out, DefaultRules()); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return out.String()
	}

	if first, second := run(), run(); first != second {
		t.Errorf("outputs differ:\n%q\n%q", first, second)
	}
}

func TestRun_CustomRules(t *testing.T) {
	var out bytes.Buffer
	src := parser.NewReaderSource("sample", strings.NewReader(sampleTrace))
	rules := RuleSet{{Tag: "DMA", Markers: []string{"event=8"}}}

	if _, err := Run(context.Background(), src, &out, rules); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "DMA    0  1  event=8  payload=1 ts=70\n" {
		t.Errorf("output = %q", out.String())
	}
}

type failingSource struct {
	err error
}

func (f failingSource) Next(context.Context) (*parser.LogLine, error) { return nil, f.err }
func (f failingSource) Close() error                                 { return nil }

func TestRun_SourceError(t *testing.T) {
	readErr := errors.New("disk on fire")
	_, err := Run(context.Background(), failingSource{err: readErr}, &bytes.Buffer{}, DefaultRules())
	if !errors.Is(err, readErr) {
		t.Errorf("Run() error = %v, want %v", err, readErr)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := parser.NewReaderSource("sample", strings.NewReader(sampleTrace))
	_, err := Run(ctx, src, &bytes.Buffer{}, DefaultRules())
	if err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
