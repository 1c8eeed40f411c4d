package syncpoint

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// fieldCount is the number of tokens in a well-formed record.
const fieldCount = 3

var fieldNames = [fieldCount]string{"sync index", "host time", "device cycle"}

// ParseError reports a record-shaped line with a non-integer field.
type ParseError struct {
	Source  string
	LineNum int
	Field   string
	Token   string
	Err     error
}

func (e *ParseError) Error() string {
	loc := e.Source
	if e.LineNum > 0 {
		loc = fmt.Sprintf("%s:%d", e.Source, e.LineNum)
	}
	return fmt.Sprintf("%s: invalid %s %q: %v", loc, e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLine parses "index hostTime devCycle". ok is false when the line does
// not split into exactly three whitespace-separated tokens; such lines are not
// records and carry no error. Source and LineNum of a returned ParseError are
// left for the caller to fill in.
func ParseLine(line string) (sp SyncPoint, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return SyncPoint{}, false, nil
	}

	sp.Index, err = parseIndex(fields[0])
	if err != nil {
		return SyncPoint{}, true, newParseError(0, fields[0], err)
	}
	sp.HostTime, err = parseUnsigned(fields[1])
	if err != nil {
		return SyncPoint{}, true, newParseError(1, fields[1], err)
	}
	sp.DevCycle, err = parseUnsigned(fields[2])
	if err != nil {
		return SyncPoint{}, true, newParseError(2, fields[2], err)
	}

	return sp, true, nil
}

// parseIndex accepts any signed decimal integer.
func parseIndex(tok string) (*big.Int, error) {
	idx, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return nil, strconv.ErrSyntax
	}
	return idx, nil
}

// parseUnsigned accepts an optional leading '+', which ParseUint rejects.
func parseUnsigned(tok string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64)
}

func newParseError(field int, token string, err error) *ParseError {
	// strconv's NumError repeats the token; keep only the reason.
	if numErr, ok := err.(*strconv.NumError); ok {
		err = numErr.Err
	}
	return &ParseError{
		Field: fieldNames[field],
		Token: token,
		Err:   err,
	}
}
