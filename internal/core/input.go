package core

// input.go prepares raw file bytes for CSV parsing:
//
//   - BOMSkippingReader: Removes the UTF-8 BOM (0xEF 0xBB 0xBF) written by Excel
//   - CountingReader: Tracks bytes read for logging
//   - readInput: Applies both, enforces the size limit and replaces invalid
//     UTF-8 with U+FFFD so the parser never sees broken sequences

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
type BOMSkippingReader struct {
	reader  *bufio.Reader
	checked bool
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{reader: bufio.NewReader(r)}
}

// Read implements io.Reader. On the first read, it checks for and skips the BOM.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true
		if head, err := r.reader.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
			if _, err := r.reader.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}
	return r.reader.Read(p)
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// readInput reads the whole file at path. maxSize <= 0 disables the limit.
// The returned count is the number of bytes read from disk, BOM included.
func readInput(path string, maxSize int64) ([]byte, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	counter := NewCountingReader(f)
	var src io.Reader = NewBOMSkippingReader(counter)
	if maxSize > 0 {
		// One byte past the limit is enough to detect an oversized file.
		src = io.LimitReader(src, maxSize+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, counter.BytesRead, err
	}
	if maxSize > 0 && counter.BytesRead > maxSize {
		return nil, counter.BytesRead, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, maxSize)
	}

	return bytes.ToValidUTF8(data, []byte("\uFFFD")), counter.BytesRead, nil
}
