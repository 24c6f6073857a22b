// Package storage writes uploaded files under a directory and maps them to public URLs.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Store saves files into one directory of a filesystem.
type Store struct {
	fs        afero.Fs
	dir       string
	urlPrefix string
}

// New creates a Store writing into dir. urlPrefix is prepended to the stored name
// to form the URL returned to callers.
func New(fs afero.Fs, dir, urlPrefix string) *Store {
	return &Store{
		fs:        fs,
		dir:       dir,
		urlPrefix: urlPrefix,
	}
}

// Save writes data under a fresh random name ending in ext and returns its public URL.
// The directory is created when missing.
func (s *Store) Save(data []byte, ext string) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.NewString() + ext
	if err := afero.WriteFile(s.fs, filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.urlPrefix + name, nil
}

// Extension returns the extension of filename including the dot, or "" when it has none.
func Extension(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return filepath.Ext(base)
}
