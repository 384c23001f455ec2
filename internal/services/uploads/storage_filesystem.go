package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FilesystemStorage implements Storage on a local directory
type FilesystemStorage struct {
	basePath string
}

// Ensure FilesystemStorage implements Storage interface
var _ Storage = (*FilesystemStorage)(nil)

// NewFilesystemStorage creates a new filesystem storage backend rooted at
// basePath, creating the directory when absent
func NewFilesystemStorage(basePath string) (*FilesystemStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FilesystemStorage{basePath: basePath}, nil
}

// Path returns the filesystem path for a stored name. Names are validated
// upstream; the base of the name is used so a crafted name cannot escape
// the storage root.
func (fs *FilesystemStorage) Path(name string) string {
	return filepath.Join(fs.basePath, filepath.Base(name))
}

// Save writes the payload under name unless a blob already exists there.
// An existing blob is never overwritten; skipped reports that case.
func (fs *FilesystemStorage) Save(ctx context.Context, data io.Reader, name string) (string, bool, error) {
	fullPath := fs.Path(name)

	if _, err := os.Stat(fullPath); err == nil {
		return fullPath, true, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("failed to stat file: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", false, fmt.Errorf("failed to write file: %w", err)
	}

	return fullPath, false, nil
}

// Exists checks if a blob is stored under name
func (fs *FilesystemStorage) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(fs.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}
