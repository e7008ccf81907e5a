// Package storage keeps generated cause list files on disk or in a MinIO bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"ecourts_backend/internal/feature/causelist/usecase"
)

// LocalStore keeps files in a single directory.
type LocalStore struct {
	dir string
}

var _ usecase.FileStore = (*LocalStore)(nil)

// NewLocalStore creates dir if needed and returns a store rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes data under name, replacing any existing file.
func (s *LocalStore) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to store file: %w", err)
	}
	return nil
}

// Open returns the file and its size.
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, usecase.ErrFileNotFound
		}
		return nil, 0, fmt.Errorf("failed to open file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, usecase.ErrFileNotFound
	}
	return f, info.Size(), nil
}
