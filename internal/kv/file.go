package kv

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// FileStore keeps one file per key under Dir. Keys containing "/" become
// subdirectories.
type FileStore struct {
	Dir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (fc *FileStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(fc.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (fc *FileStore) Set(_ context.Context, key, value string) error {
	filePath := fc.path(key)
	// Create parent directories if they don't exist
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(value), 0644)
}

func (fc *FileStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(fc.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (fc *FileStore) path(key string) string {
	return filepath.Join(fc.Dir, filepath.FromSlash(key))
}
