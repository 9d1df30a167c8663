package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
)

// EncodeTable writes t to w as CSV. The header is the union of field names
// across all records; a record without one of those fields gets an empty
// value in that column.
func EncodeTable(w io.Writer, t *Table) error {
	cols := t.Columns()
	if len(cols) == 0 {
		return &SerializationError{Err: errors.New("table has no columns")}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return &SerializationError{Err: err}
	}

	row := make([]string, len(cols))
	for _, rec := range t.Records {
		for i, col := range cols {
			row[i] = rec.Value(col)
		}
		if err := cw.Write(row); err != nil {
			return &SerializationError{Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

// WriteTable serializes t in memory and then writes it to a new file at
// path in a single write. It refuses to overwrite an existing file. If the
// write fails after the file was created, the partial file is removed.
func WriteTable(path string, t *Table) error {
	var buf bytes.Buffer
	if err := EncodeTable(&buf, t); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
