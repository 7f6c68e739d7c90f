package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStore saves uploads on disk under a base directory. Files are served
// back by the HTTP layer under /uploads/.
type LocalStore struct {
	baseDir   string
	publicURL string
}

// NewLocalStore ensures the base directory exists and returns a handle.
func NewLocalStore(baseDir, publicBaseURL string) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = "./public/uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir, publicURL: publicBaseURL}, nil
}

// Put copies the reader into baseDir/key and returns the public URL.
func (s *LocalStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	target := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("prepare upload directory: %w", err)
	}
	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.publicURL + path.Join("/uploads", key), nil
}

// Delete removes a stored file if present.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	target := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}

// Dir exposes the base directory so the router can serve it statically.
func (s *LocalStore) Dir() string {
	return s.baseDir
}
