package core

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestBOMSkippingReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "file with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello,world")...),
			expected: "hello,world",
		},
		{
			name:     "file without BOM",
			input:    []byte("hello,world"),
			expected: "hello,world",
		},
		{
			name:     "empty file",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "partial BOM at start",
			input:    []byte{0xEF, 0xBB, 'a', 'b', 'c'},
			expected: string([]byte{0xEF, 0xBB, 'a', 'b', 'c'}),
		},
		{
			name:     "short file",
			input:    []byte("a"),
			expected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewBOMSkippingReader(bytes.NewReader(tt.input))
			result, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestCountingReader(t *testing.T) {
	r := NewCountingReader(bytes.NewReader([]byte("Address_Number,Street\n")))
	if _, err := io.ReadAll(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.BytesRead != 22 {
		t.Errorf("BytesRead = %d, want 22", r.BytesRead)
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		maxSize int64
		want    string
		wantErr error
	}{
		{
			name:  "strips BOM",
			input: append([]byte{0xEF, 0xBB, 0xBF}, "a,b\n"...),
			want:  "a,b\n",
		},
		{
			name:  "replaces invalid UTF-8",
			input: []byte("Main\x80,b\n"),
			want:  "Main\uFFFD,b\n",
		},
		{
			name:    "at size limit",
			input:   []byte("12345"),
			maxSize: 5,
			want:    "12345",
		},
		{
			name:    "over size limit",
			input:   []byte("123456"),
			maxSize: 5,
			wantErr: ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "in.csv", tt.input)

			got, n, err := readInput(path, tt.maxSize)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if n != int64(len(tt.input)) {
				t.Errorf("bytes read = %d, want %d", n, len(tt.input))
			}
		})
	}
}

func TestReadInput_Missing(t *testing.T) {
	_, _, err := readInput(filepath.Join(t.TempDir(), "nope.csv"), 0)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
