// Package parser provides line-oriented reading of log and trace files.
package parser

// LogLine is a single raw line read from an input.
type LogLine struct {
	// Content is the line text without its terminator.
	Content string

	// Source is the file path (or reader name) this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}
