// SPDX-License-Identifier: MIT

package textstore

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is the category of file-system failures (open, read, write, close).
	ErrIO = errors.New("textstore: i/o failure")

	// ErrFormat is the category of structurally malformed files.
	ErrFormat = errors.New("textstore: malformed file")
)

// IOError reports a failed file-system operation on one of the two files.
type IOError struct {
	Op   string // "open", "read", "create", "write" or "close"
	Path string
	Err  error
}

// Error returns the error string.
func (e *IOError) Error() string {
	return fmt.Sprintf("textstore: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying os/io error, e.g. fs.ErrNotExist.
func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is the ErrIO category.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// FormatError reports a structural problem at a given line (1-based).
type FormatError struct {
	Path   string
	Line   int
	Reason string
}

// Error returns the error string.
func (e *FormatError) Error() string {
	return fmt.Sprintf("textstore: %s:%d: %s", e.Path, e.Line, e.Reason)
}

// Is reports whether target is the ErrFormat category.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
