package welltag

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is neither .csv nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format, use .csv or .xlsx")

// ErrNoTags indicates an export was requested with nothing saved.
var ErrNoTags = errors.New("no tags to export")

// File operations reported by FileError.
const (
	OpLoad   = "load"
	OpExport = "export"
)

// FileError represents an I/O failure while loading a source or writing a report.
type FileError struct {
	Path string
	Op   string // "load" or "export"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
