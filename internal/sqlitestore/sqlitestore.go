// Package sqlitestore implements the Storage contract on a single SQLite
// database file. Preset documents are blobs keyed by path, so the preset
// store sees the same path semantics as the filesystem backend: missing files
// and directories surface as fs.ErrNotExist, writes replace the whole
// document atomically.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	gopath "path"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside the data dir.
const dbFileName = "wardrobe.db"

// Store is a SQLite-backed Storage. Open before use; Close releases the
// database handle and is idempotent.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	open bool
}

// Open creates the data dir if needed, opens (or creates) the database inside
// it, and applies the schema.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db, open: true}, nil
}

// ReadFile returns the blob stored at path. A missing path satisfies
// errors.Is(err, fs.ErrNotExist).
func (s *Store) ReadFile(path string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM files WHERE path = ?`, path).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reading %s: %w", path, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// WriteFile stores data at path, replacing any previous blob. SQLite makes
// the replacement atomic; a failed write leaves the old blob intact.
func (s *Store) WriteFile(path string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO files (path, data) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET data = excluded.data`,
		path, data,
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Remove deletes the blob at path. Removing an absent path succeeds.
func (s *Store) Remove(path string) error {
	if _, err := s.db.Exec(`DELETE FROM files WHERE path = ?`, path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// List returns the file names directly under dir. Listing a directory that
// MkdirAll never created fails with fs.ErrNotExist, matching the filesystem
// backend.
func (s *Store) List(dir string) ([]string, error) {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM dirs WHERE path = ?`, dir).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("listing %s: %w", dir, fs.ErrNotExist)
	}

	rows, err := s.db.Query(`SELECT path FROM files WHERE path LIKE ?`, dir+"/%")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}
		// Only direct children; nested paths belong to subdirectories.
		if gopath.Dir(p) == dir {
			names = append(names, gopath.Base(p))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	return names, nil
}

// MkdirAll records dir and all its ancestors. Idempotent.
func (s *Store) MkdirAll(dir string) error {
	for p := gopath.Clean(dir); p != "." && p != "/"; p = gopath.Dir(p) {
		if _, err := s.db.Exec(`INSERT OR IGNORE INTO dirs (path) VALUES (?)`, p); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// Close releases the database handle. Idempotent: repeated calls succeed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	return s.db.Close()
}
