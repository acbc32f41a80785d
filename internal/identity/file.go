package identity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage persists the id in a single file, used by the CLI.
type FileStorage struct {
	Path string
}

// DefaultFileStorage places the id under the user's config directory.
func DefaultFileStorage() (*FileStorage, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &FileStorage{Path: filepath.Join(dir, "unipick", "anonymous_user_id")}, nil
}

func (f *FileStorage) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", ErrNotFound
	}
	return id, nil
}

func (f *FileStorage) Store(_ context.Context, id string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.WriteFile(f.Path, []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (f *FileStorage) Remove(_ context.Context) error {
	err := os.Remove(f.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

var _ Storage = (*FileStorage)(nil)
