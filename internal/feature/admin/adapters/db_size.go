// Package adapters reports database file sizes.
package adapters

import (
	"errors"
	"io/fs"
	"os"

	"ecourts_backend/internal/feature/admin/usecase"
)

// FileSize reports the size of a single-file database. Servers without a local file report 0.
type FileSize struct {
	path string
}

var _ usecase.SizeReporter = FileSize{}

// NewFileSize creates a reporter for path. An empty path always reports 0.
func NewFileSize(path string) FileSize {
	return FileSize{path: path}
}

// Size returns the file size, or 0 when the file does not exist yet.
func (f FileSize) Size() (int64, error) {
	if f.path == "" {
		return 0, nil
	}
	info, err := os.Stat(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	return info.Size(), nil
}
