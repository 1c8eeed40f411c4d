package parser

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileAccessError reports an input file that could not be opened or read.
type FileAccessError struct {
	// Op is the failed operation, "open" or "read".
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	cause := e.Err
	// PathError would repeat the op and path
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
