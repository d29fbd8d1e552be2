// Package fsstore implements the Storage contract on the local filesystem.
// Writes are atomic: data lands in a temp file that is fsynced and renamed
// over the destination, so a failed write never clobbers an existing preset.
package fsstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store is a filesystem-backed Storage rooted at a data directory.
type Store struct {
	root string
}

// New returns a Store rooted at root. The directory itself is created lazily
// by MkdirAll.
func New(root string) *Store {
	return &Store{root: root}
}

// abs resolves a store-relative path against the root.
func (s *Store) abs(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

// ReadFile returns the contents of the file at path. A missing file satisfies
// errors.Is(err, fs.ErrNotExist).
func (s *Store) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(s.abs(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// WriteFile atomically replaces the file at path with data using the
// temp-file, fsync, rename pattern. The temp name carries a UUID suffix so
// concurrent writers to different presets in the same directory never
// collide.
func (s *Store) WriteFile(path string, data []byte) error {
	dst := s.abs(path)
	tmpName := dst + "." + uuid.NewString() + ".tmp"

	tmp, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Remove deletes the file at path. Removing an absent file succeeds.
func (s *Store) Remove(path string) error {
	if err := os.Remove(s.abs(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// List returns the names of regular files directly under dir.
func (s *Store) List(dir string) ([]string, error) {
	dirents, err := os.ReadDir(s.abs(dir))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, de := range dirents {
		if de.Type().IsRegular() {
			names = append(names, de.Name())
		}
	}
	return names, nil
}

// MkdirAll creates dir and any missing parents under the root. Idempotent.
func (s *Store) MkdirAll(dir string) error {
	if err := os.MkdirAll(s.abs(dir), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// Close is a no-op; the filesystem backend holds no long-lived resources.
func (s *Store) Close() error {
	return nil
}
