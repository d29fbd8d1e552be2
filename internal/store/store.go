// Package store persists named presets and re-applies them onto the live
// option set. A preset is one category's option values, written as an XML
// document whose path is fully determined by (name, category). Two reserved
// presets per installation cache the last-applied configuration and are
// hidden from enumeration.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	gopath "path"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/wardrobe/internal/codec"
	"github.com/mesh-intelligence/wardrobe/internal/resync"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Reserved preset names used by the cache save/restore path. Hidden from List.
const (
	CachedSettingsName  = "CACHED_SETTINGS"
	CachedCosmeticsName = "CACHED_COSMETICS"
)

// presetExt is the file extension for preset documents.
const presetExt = ".xml"

// Store performs preset operations against a Storage backend on behalf of an
// option Provider. Operations are synchronous and run to completion; callers
// must not invoke them concurrently for the same (name, category).
type Store struct {
	storage  types.Storage
	provider types.Provider
	logger   *log.Logger
}

// New returns a Store over the given backend and provider.
func New(storage types.Storage, provider types.Provider, logger *log.Logger) *Store {
	return &Store{storage: storage, provider: provider, logger: logger}
}

// baseDir maps a category to its preset directory. Toggle options have no
// presets.
func baseDir(category types.Category) (string, error) {
	switch category {
	case types.CategorySetting:
		return "settings", nil
	case types.CategoryCosmetic:
		return "cosmetics", nil
	}
	return "", types.ErrCategoryUnsupported
}

// presetPath returns the storage path for a preset. The path is fully
// determined by (name, category); no other metadata exists.
func presetPath(name string, category types.Category) (string, error) {
	dir, err := baseDir(category)
	if err != nil {
		return "", err
	}
	return gopath.Join(dir, name+presetExt), nil
}

// cacheName returns the reserved cache preset name for a category.
func cacheName(category types.Category) (string, error) {
	switch category {
	case types.CategorySetting:
		return CachedSettingsName, nil
	case types.CategoryCosmetic:
		return CachedCosmeticsName, nil
	}
	return "", types.ErrCategoryUnsupported
}

// EnsureDirectories creates both preset directories. Idempotent; existing
// directories are not an error.
func (s *Store) EnsureDirectories() error {
	for _, category := range []types.Category{types.CategorySetting, types.CategoryCosmetic} {
		dir, err := baseDir(category)
		if err != nil {
			return err
		}
		if err := s.storage.MkdirAll(dir); err != nil {
			return fmt.Errorf("ensure preset directories: %w", err)
		}
	}
	return nil
}

// Save writes the current values of all options in category to the preset's
// path. Entry order is the provider's traversal order; names are written with
// line breaks stripped. An empty name is rejected before any I/O.
func (s *Store) Save(name string, category types.Category) error {
	if name == "" {
		return types.ErrEmptyName
	}

	path, err := presetPath(name, category)
	if err != nil {
		return err
	}

	var entries []codec.Entry
	for _, opt := range s.provider.Options() {
		if opt.Category() != category {
			continue
		}
		entries = append(entries, codec.Entry{
			Name:  codec.NormalizeName(opt.Name()),
			Value: opt.Value(),
		})
	}

	data, err := codec.Marshal(entries)
	if err != nil {
		return err
	}
	if err := s.storage.WriteFile(path, data); err != nil {
		return fmt.Errorf("save preset %q: %w", name, err)
	}

	s.logger.Debug("saved preset", "name", name, "category", category, "entries", len(entries))
	return nil
}

// Load reads the preset and re-applies its values onto the live option set.
// All-or-nothing at the document level: a missing file or a failed parse
// mutates no options. Entries and options that no longer line up are
// reconciled by name; orphans on either side are ignored.
func (s *Store) Load(name string, category types.Category) error {
	path, err := presetPath(name, category)
	if err != nil {
		return err
	}

	data, err := s.storage.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", types.ErrPresetNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("load preset %q: %w", name, err)
	}

	entries, err := codec.Unmarshal(data)
	if err != nil {
		return err
	}

	matcher := resync.NewMatcher(entries)
	matcher.Apply(s.provider.Options(), category)

	s.logger.Debug("loaded preset",
		"name", name, "category", category,
		"entries", len(entries), "scans", matcher.Scans())
	return nil
}

// Delete removes the preset file. Best-effort: deleting a preset that does
// not exist succeeds.
func (s *Store) Delete(name string, category types.Category) error {
	path, err := presetPath(name, category)
	if err != nil {
		return err
	}
	if err := s.storage.Remove(path); err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	return nil
}

// List returns the preset names stored for category, excluding the reserved
// cache presets.
func (s *Store) List(category types.Category) ([]string, error) {
	dir, err := baseDir(category)
	if err != nil {
		return nil, err
	}

	files, err := s.storage.List(dir)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	var names []string
	for _, f := range files {
		if !strings.HasSuffix(f, presetExt) {
			continue
		}
		name := strings.TrimSuffix(f, presetExt)
		if name == CachedSettingsName || name == CachedCosmeticsName {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// SaveCache persists the current configuration for category under its
// reserved cache name.
func (s *Store) SaveCache(category types.Category) error {
	name, err := cacheName(category)
	if err != nil {
		return err
	}
	return s.Save(name, category)
}

// LoadCache restores the last-applied configuration for category. A cache
// file that was never saved is nothing to restore, not an error.
func (s *Store) LoadCache(category types.Category) error {
	name, err := cacheName(category)
	if err != nil {
		return err
	}
	if err := s.Load(name, category); err != nil {
		if errors.Is(err, types.ErrPresetNotFound) {
			return nil
		}
		return err
	}
	return nil
}
