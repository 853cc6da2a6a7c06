package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File stores the blob as a single JSON file, written atomically via a
// temp-file rename so a crashed write never leaves a truncated blob behind.
type File struct {
	path string
}

// NewFile creates a file-backed store at path. The parent directory is
// created on first write.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Get(ctx context.Context) ([]byte, bool, error) {
	blob, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading state file: %w", err)
	}
	return blob, true, nil
}

func (f *File) Set(ctx context.Context, blob []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".penlight-state-*")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
