// Package host accesses the manuscript document being tracked.
package host

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrDocumentUnavailable indicates the manuscript could not be read.
var ErrDocumentUnavailable = errors.New("document unavailable")

// DocumentReader reads the current plain text of the tracked manuscript.
type DocumentReader interface {
	ReadText(ctx context.Context) (string, error)
}

// FileReader reads the manuscript from a file on disk.
type FileReader struct {
	path string
}

// NewFileReader creates a reader for the manuscript at path.
func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

// ReadText returns the file's contents. Any failure, including a missing
// file, is reported as ErrDocumentUnavailable so callers can surface it
// without mutating progress state.
func (r *FileReader) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentUnavailable, err)
	}
	return string(data), nil
}
