package results

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess matches every failure to read a report file.
	ErrFileAccess = errors.New("results: file access")

	// ErrIncomplete indicates that a grid lacks a cell or that a cell's burn
	// sample presence disagrees with its thread count.
	ErrIncomplete = errors.New("results: incomplete grid")
)

// FileAccessError reports a missing or unreadable report file.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() []error { return []error{ErrFileAccess, e.Err} }
