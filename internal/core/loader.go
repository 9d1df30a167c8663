package core

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/addrjoin/internal/logging"
)

// LoadOptions controls how an input file becomes a Table.
type LoadOptions struct {
	// MaxFileSize rejects larger files before parsing. 0 disables the check.
	MaxFileSize int64

	// RequiredColumns must all appear in the header.
	RequiredColumns []string

	// Normalizers rewrite field values as each record is parsed.
	Normalizers map[string]Normalizer
}

// DefaultLoadOptions requires the join key columns and normalizes Street.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		RequiredColumns: []string{ColAddressNumber, ColStreet},
		Normalizers:     DefaultNormalizers,
	}
}

// LoadTable reads and parses the CSV file at path. The first row is the
// header; every later row becomes a Record with one field per header column.
// Any failure is returned as a *ParseError and no partial table is returned.
func LoadTable(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	logger := logging.WithFields(ctx, "file", path)

	data, n, err := readInput(path, opts.MaxFileSize)
	if err != nil {
		return nil, &ParseError{File: path, Err: err}
	}

	t, err := ParseTable(path, bytes.NewReader(data), opts)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded table", "rows", len(t.Records), "columns", len(t.Header), "bytes", n)
	return t, nil
}

// ParseTable parses CSV from r the same way LoadTable parses a file.
// name is recorded as the table name and used in error messages.
func ParseTable(name string, r io.Reader, opts LoadOptions) (*Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	row, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{File: name, Err: ErrEmptyFile}
	}
	if err != nil {
		return nil, csvParseError(name, err)
	}

	header := make([]string, len(row))
	for i, h := range row {
		header[i] = strings.TrimSpace(h)
	}
	if err := checkHeader(header, opts.RequiredColumns); err != nil {
		return nil, &ParseError{File: name, Line: 1, Err: err}
	}

	t := &Table{Name: name, Header: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvParseError(name, err)
		}

		rec := NewRecord(len(header))
		for i, col := range header {
			rec.Set(col, row[i])
		}
		applyNormalizers(rec, opts.Normalizers)
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

// checkHeader verifies required columns are present. Repeated names are
// allowed; the record keeps the last value under the first position.
func checkHeader(header, required []string) error {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = true
	}

	var missing []string
	for _, col := range required {
		if !seen[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// csvParseError converts an encoding/csv error into a ParseError with the
// line number the csv package reported.
func csvParseError(name string, err error) *ParseError {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{File: name, Line: pe.Line, Err: pe.Err}
	}
	return &ParseError{File: name, Err: err}
}
