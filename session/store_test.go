package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "session.toml")
	store := NewFileStore(path)

	t.Run("load before save yields zero record", func(t *testing.T) {
		rec, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, Record{}, rec)
	})

	t.Run("save and load round-trip", func(t *testing.T) {
		want := Record{Token: "a.b.c", UserType: "admin", Username: "ann", UserID: 7}
		require.NoError(t, store.Save(want))

		got, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("session file is private", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file modes are not meaningful on windows")
		}
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("clear removes the file", func(t *testing.T) {
		require.NoError(t, store.Clear())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		// Clearing an already-empty store is fine
		require.NoError(t, store.Clear())

		rec, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, Record{}, rec)
	})

	t.Run("corrupt file is an error, not a silent reset", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{{{not toml"), 0o600))
		_, err := store.Load()
		assert.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Record{}, rec)

	want := Record{Token: "a.b.c", Username: "ann"}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear())
	got, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, Record{}, got)
}
