package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	gopath "path"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// memStorage is an in-memory Storage that counts operations, so tests can
// assert that guarded failures perform no I/O.
type memStorage struct {
	files  map[string][]byte
	dirs   map[string]bool
	writes int
	reads  int
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}, dirs: map[string]bool{}}
}

func (m *memStorage) ReadFile(path string) ([]byte, error) {
	m.reads++
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("reading %s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}

func (m *memStorage) WriteFile(path string, data []byte) error {
	m.writes++
	m.files[path] = data
	return nil
}

func (m *memStorage) Remove(path string) error {
	delete(m.files, path)
	return nil
}

func (m *memStorage) List(dir string) ([]string, error) {
	if !m.dirs[dir] {
		return nil, fmt.Errorf("listing %s: %w", dir, fs.ErrNotExist)
	}
	var names []string
	for p := range m.files {
		if gopath.Dir(p) == dir {
			names = append(names, gopath.Base(p))
		}
	}
	return names, nil
}

func (m *memStorage) MkdirAll(dir string) error {
	m.dirs[dir] = true
	return nil
}

func (m *memStorage) Close() error { return nil }

// fakeOption accepts any text.
type fakeOption struct {
	name     string
	category types.Category
	value    string
}

func (o *fakeOption) Name() string             { return o.name }
func (o *fakeOption) Category() types.Category { return o.category }
func (o *fakeOption) Value() string            { return o.value }
func (o *fakeOption) SetFromText(text string) bool {
	o.value = text
	return true
}

type fakeProvider struct {
	opts []*fakeOption
}

func (p *fakeProvider) Options() []types.Option {
	opts := make([]types.Option, len(p.opts))
	for i, o := range p.opts {
		opts[i] = o
	}
	return opts
}

func newStore(storage types.Storage, provider types.Provider) *Store {
	return New(storage, provider, log.New(io.Discard))
}

func defaultProvider() *fakeProvider {
	return &fakeProvider{opts: []*fakeOption{
		{name: "Difficulty", category: types.CategorySetting, value: "Normal"},
		{name: "Starting\nLives", category: types.CategorySetting, value: "3"},
		{name: "Theme", category: types.CategoryCosmetic, value: "Classic"},
	}}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	storage := newMemStorage()
	provider := defaultProvider()
	s := newStore(storage, provider)

	require.NoError(t, s.Save("speedrun", types.CategorySetting))

	provider.opts[0].value = "Easy"
	provider.opts[1].value = "9"

	require.NoError(t, s.Load("speedrun", types.CategorySetting))
	assert.Equal(t, "Normal", provider.opts[0].value)
	assert.Equal(t, "3", provider.opts[1].value)
}

func TestSaveEmptyNamePerformsNoIO(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())

	err := s.Save("", types.CategorySetting)
	require.ErrorIs(t, err, types.ErrEmptyName)
	assert.Zero(t, storage.writes)
	assert.Zero(t, storage.reads)
}

func TestSaveToggleCategoryUnsupported(t *testing.T) {
	s := newStore(newMemStorage(), defaultProvider())

	err := s.Save("anything", types.CategoryToggle)
	assert.ErrorIs(t, err, types.ErrCategoryUnsupported)
}

func TestSaveWritesNormalizedNames(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())

	require.NoError(t, s.Save("speedrun", types.CategorySetting))

	doc := string(storage.files["settings/speedrun.xml"])
	assert.Contains(t, doc, `name="Starting Lives"`)
	assert.NotContains(t, doc, "Starting\nLives")
}

func TestSaveFiltersByCategory(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())

	require.NoError(t, s.Save("speedrun", types.CategorySetting))

	doc := string(storage.files["settings/speedrun.xml"])
	assert.NotContains(t, doc, "Theme")
}

func TestLoadMissingPresetFails(t *testing.T) {
	provider := defaultProvider()
	s := newStore(newMemStorage(), provider)

	err := s.Load("nope", types.CategorySetting)
	require.ErrorIs(t, err, types.ErrPresetNotFound)
	assert.Equal(t, "Normal", provider.opts[0].value)
}

func TestLoadMalformedDocumentMutatesNothing(t *testing.T) {
	storage := newMemStorage()
	provider := defaultProvider()
	s := newStore(storage, provider)

	// Legacy pre-<settings> format: rejected wholesale.
	storage.files["settings/old.xml"] = []byte(
		`<?xml version="1.0"?><preset><setting name="Difficulty">Easy</setting></preset>`)

	err := s.Load("old", types.CategorySetting)
	require.ErrorIs(t, err, types.ErrMalformedPreset)
	assert.Equal(t, "Normal", provider.opts[0].value)
}

func TestLoadDoesNotTouchOtherCategories(t *testing.T) {
	storage := newMemStorage()
	provider := defaultProvider()
	s := newStore(storage, provider)

	// A settings document that happens to name a cosmetic option.
	storage.files["settings/sneaky.xml"] = []byte(
		`<?xml version="1.0"?><settings><setting name="Theme">Midnight</setting></settings>`)

	require.NoError(t, s.Load("sneaky", types.CategorySetting))
	assert.Equal(t, "Classic", provider.opts[2].value)
}

func TestDeleteIsBestEffort(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())

	require.NoError(t, s.Save("speedrun", types.CategorySetting))
	require.NoError(t, s.Delete("speedrun", types.CategorySetting))
	require.NoError(t, s.Delete("speedrun", types.CategorySetting))

	_, ok := storage.files["settings/speedrun.xml"]
	assert.False(t, ok)
}

func TestListExcludesCachePresets(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())
	require.NoError(t, s.EnsureDirectories())

	require.NoError(t, s.Save("alpha", types.CategorySetting))
	require.NoError(t, s.Save("beta", types.CategorySetting))
	require.NoError(t, s.SaveCache(types.CategorySetting))

	names, err := s.List(types.CategorySetting)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestListIgnoresForeignFiles(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())
	require.NoError(t, s.EnsureDirectories())

	storage.files["settings/notes.txt"] = []byte("not a preset")
	require.NoError(t, s.Save("alpha", types.CategorySetting))

	names, err := s.List(types.CategorySetting)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, names)
}

func TestListSeparatesCategories(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())
	require.NoError(t, s.EnsureDirectories())

	require.NoError(t, s.Save("outfit", types.CategoryCosmetic))

	names, err := s.List(types.CategorySetting)
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = s.List(types.CategoryCosmetic)
	require.NoError(t, err)
	assert.Equal(t, []string{"outfit"}, names)
}

func TestCacheRoundTrip(t *testing.T) {
	storage := newMemStorage()
	provider := defaultProvider()
	s := newStore(storage, provider)

	provider.opts[2].value = "Midnight"
	require.NoError(t, s.SaveCache(types.CategoryCosmetic))

	provider.opts[2].value = "Classic"
	require.NoError(t, s.LoadCache(types.CategoryCosmetic))
	assert.Equal(t, "Midnight", provider.opts[2].value)
}

func TestLoadCacheFreshInstallIsNoOp(t *testing.T) {
	provider := defaultProvider()
	s := newStore(newMemStorage(), provider)

	require.NoError(t, s.LoadCache(types.CategorySetting))
	assert.Equal(t, "Normal", provider.opts[0].value)
	assert.Equal(t, "3", provider.opts[1].value)
}

func TestEnsureDirectoriesIdempotent(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())

	require.NoError(t, s.EnsureDirectories())
	require.NoError(t, s.EnsureDirectories())

	assert.True(t, storage.dirs["settings"])
	assert.True(t, storage.dirs["cosmetics"])
}

func TestLoadNameNormalizationBridgesSchemas(t *testing.T) {
	storage := newMemStorage()
	provider := defaultProvider()
	s := newStore(storage, provider)

	// Document produced by a version whose display name had no line break.
	storage.files["settings/legacy.xml"] = []byte(
		`<?xml version="1.0"?><settings><setting name="Starting Lives">7</setting></settings>`)

	require.NoError(t, s.Load("legacy", types.CategorySetting))
	assert.Equal(t, "7", provider.opts[1].value)
}

func TestErrorsAreRecoverable(t *testing.T) {
	// A failed load leaves the store usable for the next operation.
	storage := newMemStorage()
	provider := defaultProvider()
	s := newStore(storage, provider)

	require.Error(t, s.Load("missing", types.CategorySetting))
	require.NoError(t, s.Save("recovered", types.CategorySetting))
	require.NoError(t, s.Load("recovered", types.CategorySetting))
}

func TestLoadErrorsWrapSentinels(t *testing.T) {
	storage := newMemStorage()
	s := newStore(storage, defaultProvider())
	storage.files["settings/bad.xml"] = []byte("not xml at all")

	tests := []struct {
		name    string
		preset  string
		wantErr error
	}{
		{name: "missing file", preset: "absent", wantErr: types.ErrPresetNotFound},
		{name: "unparseable file", preset: "bad", wantErr: types.ErrMalformedPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Load(tt.preset, types.CategorySetting)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
