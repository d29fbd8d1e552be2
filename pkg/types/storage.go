package types

// Storage is the persistence contract consumed by the preset store. Paths are
// slash-separated and relative to the backend's data dir. Implementations
// report missing files with an error satisfying errors.Is(err, fs.ErrNotExist)
// so callers can distinguish absence from I/O failure.
type Storage interface {
	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at path with data. The write is atomic:
	// on failure the previous contents, if any, survive intact.
	WriteFile(path string, data []byte) error

	// Remove deletes the file at path. Removing an absent file is not an
	// error.
	Remove(path string) error

	// List returns the file names (not full paths) directly under dir.
	List(dir string) ([]string, error)

	// MkdirAll creates dir and any missing parents. Idempotent.
	MkdirAll(dir string) error

	// Close releases backend resources. Idempotent.
	Close() error
}
