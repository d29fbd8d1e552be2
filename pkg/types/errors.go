package types

import "errors"

// Preset operation errors. All are recoverable; the store reports them to the
// immediate caller and never aborts the process.
var (
	// ErrEmptyName is returned by Save before any I/O when the preset name
	// is empty.
	ErrEmptyName = errors.New("preset name must not be empty")

	// ErrPresetNotFound is returned by Load when no preset file exists for
	// the given name and category.
	ErrPresetNotFound = errors.New("preset not found")

	// ErrMalformedPreset is returned by Load when the preset file does not
	// carry the expected document root. Older sibling formats are rejected,
	// not migrated.
	ErrMalformedPreset = errors.New("malformed preset document")

	// ErrCategoryUnsupported is returned for categories that have no preset
	// directory.
	ErrCategoryUnsupported = errors.New("category does not support presets")
)
