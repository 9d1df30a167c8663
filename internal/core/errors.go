package core

import (
	"errors"
	"fmt"
)

// ErrUsage marks command-line usage problems. Test with errors.Is.
var ErrUsage = errors.New("usage error")

// Parse failure causes wrapped by ParseError.
var (
	ErrEmptyFile     = errors.New("empty file")
	ErrMissingColumn = errors.New("missing required column")
	ErrFileTooLarge  = errors.New("file too large")
)

// UsageError reports a wrong argument count or an output path collision.
// Err is optional; for a collision it is fs.ErrExist.
type UsageError struct {
	Reason string
	Err    error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *UsageError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUsage, e.Err}
	}
	return []error{ErrUsage}
}

// ParseError reports an input file that could not be read or parsed as CSV.
// Line is the 1-based line of the offending row, or 0 when not row-specific.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SerializationError reports a merged table that could not be encoded as CSV.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize output: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// WriteError reports an output file that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
