package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(map[string]string{"lang": "en"})

	v, ok := s.Get("lang")
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	require.NoError(t, s.Set("theme", "theme-cyan"))
	v, ok = s.Get("theme")
	assert.True(t, ok)
	assert.Equal(t, "theme-cyan", v)

	require.NoError(t, s.Remove("lang"))
	_, ok = s.Get("lang")
	assert.False(t, ok)
}

func TestMemoryStore_CopiesInitial(t *testing.T) {
	initial := map[string]string{"lang": "pt"}
	s := NewMemoryStore(initial)
	initial["lang"] = "en"

	v, _ := s.Get("lang")
	assert.Equal(t, "pt", v)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := s.Get("lang")
	assert.False(t, ok)
	assert.Equal(t, path, s.Path())
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("lang", "en"))
	require.NoError(t, s.Set("theme", "theme-green"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	v, ok := reopened.Get("lang")
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	v, ok = reopened.Get("theme")
	assert.True(t, ok)
	assert.Equal(t, "theme-green", v)

	require.NoError(t, reopened.Remove("theme"))
	again, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok = again.Get("theme")
	assert.False(t, ok)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0644))

	s, err := NewFileStore(path)
	assert.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "failed to parse state file")
}
