package parser

import (
	"bufio"
	"context"
	"io"
	"os"
)

const readBufferSize = 64 * 1024

// ReaderSource implements LineSource over an arbitrary io.Reader.
// Lines may be of any length.
type ReaderSource struct {
	name    string
	reader  *bufio.Reader
	pending []string
	eof     bool
	lineNum int
}

// NewReaderSource creates a LineSource reading from r.
// The name is reported as the Source of each line.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{
		name:   name,
		reader: bufio.NewReaderSize(r, readBufferSize),
	}
}

// Next returns the next line.
// Returns io.EOF when the reader is exhausted.
func (s *ReaderSource) Next(ctx context.Context) (*LogLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	for len(s.pending) == 0 {
		if s.eof {
			return nil, io.EOF
		}
		if err := s.fill(); err != nil {
			return nil, &FileAccessError{Op: "read", Path: s.name, Err: err}
		}
	}

	content := s.pending[0]
	s.pending = s.pending[1:]
	s.lineNum++
	return &LogLine{
		Content: content,
		Source:  s.name,
		LineNum: s.lineNum,
	}, nil
}

// fill reads through the next '\n' and queues the lines it holds. A '\r'
// can only end a chunk at EOF, so "\r\n" is never split across chunks.
func (s *ReaderSource) fill() error {
	chunk, err := s.reader.ReadString('\n')
	if err == io.EOF {
		s.eof = true
	} else if err != nil {
		return err
	}
	s.pending = append(s.pending, SplitUniversalLines(chunk)...)
	return nil
}

// Close is a no-op; the caller owns the reader.
func (s *ReaderSource) Close() error {
	return nil
}

// FileSource implements LineSource for reading a file from disk.
type FileSource struct {
	*ReaderSource
	file *os.File
}

// Open opens path for line-by-line reading.
// The returned source must be closed by the caller.
func Open(path string) (*FileSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, &FileAccessError{Op: "open", Path: path, Err: err}
	}

	return &FileSource{
		ReaderSource: NewReaderSource(path, f),
		file:         f,
	}, nil
}

// Close releases the underlying file. Calling Close more than once is safe.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
