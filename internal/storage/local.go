package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage implements Storage on the local filesystem. Paths are
// relative to the process working directory so stored values stay
// meaningful in the database and in upload responses.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

// BaseDir returns the directory files are stored under.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

func (s *LocalStorage) Save(path string, file io.Reader) error {
	full := filepath.Join(s.baseDir, path)

	// MkdirAll is a no-op for an existing directory, which keeps
	// first-use safe under concurrent uploads.
	err := os.MkdirAll(filepath.Dir(full), 0755)
	if err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	out, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(out, file)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}

	err = out.Close()
	if err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Delete(path string) error {
	err := os.Remove(filepath.Join(s.baseDir, path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(path string) string {
	return "/" + filepath.ToSlash(filepath.Join(s.baseDir, path))
}
