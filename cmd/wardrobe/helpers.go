// Shared helpers for wardrobe CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/wardrobe/internal/fsstore"
	"github.com/mesh-intelligence/wardrobe/internal/sqlitestore"
	"github.com/mesh-intelligence/wardrobe/internal/store"
	"github.com/mesh-intelligence/wardrobe/pkg/options"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// session bundles everything a command needs: the option schema with the
// last-used values restored, the preset store over the configured backend,
// and the storage handle to close when done.
type session struct {
	schema  *options.Schema
	store   *store.Store
	storage types.Storage
}

// Close releases the storage backend.
func (s *session) Close() {
	if err := s.storage.Close(); err != nil {
		logger.Warn("closing storage", "err", err)
	}
}

// openSession resolves configuration, opens the storage backend, ensures the
// preset directories exist, and auto-restores both cache presets onto a
// fresh default schema. The caller must defer Close.
func openSession() (*session, error) {
	storage, err := openStorage()
	if err != nil {
		return nil, err
	}

	schema := options.DefaultSchema()
	st := store.New(storage, schema, logger)

	if err := st.EnsureDirectories(); err != nil {
		storage.Close()
		return nil, err
	}

	// Restore the last-applied configuration. A fresh installation has no
	// caches; that is nothing to restore, not a failure.
	if err := st.LoadCache(types.CategorySetting); err != nil {
		storage.Close()
		return nil, fmt.Errorf("restore cached settings: %w", err)
	}
	if err := st.LoadCache(types.CategoryCosmetic); err != nil {
		storage.Close()
		return nil, fmt.Errorf("restore cached cosmetics: %w", err)
	}

	return &session{schema: schema, store: st, storage: storage}, nil
}

// openStorage builds the configured storage backend rooted at the resolved
// data directory.
func openStorage() (types.Storage, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := flagBackend
	if backend == "" {
		backend = configBackend
	}
	if backend == "" {
		backend = defaultBackend
	}

	cfg := types.Config{Backend: backend, DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlitestore.Open(cfg.DataDir)
	default:
		return fsstore.New(cfg.DataDir), nil
	}
}

// selectedCategory parses the --category flag. Only preset-bearing
// categories are accepted.
func selectedCategory() (types.Category, error) {
	category, err := types.ParseCategory(flagCategory)
	if err != nil {
		return 0, fmt.Errorf("unknown category %q (valid: setting, cosmetic)", flagCategory)
	}
	if category == types.CategoryToggle {
		return 0, fmt.Errorf("category %q has no presets", flagCategory)
	}
	return category, nil
}
