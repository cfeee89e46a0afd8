package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	storage := NewFileStorage(path)

	token, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file reads as no token")

	require.NoError(t, storage.Save("tok-abc"))
	token, err = storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, storage.Clear())
	token, err = storage.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine.
	require.NoError(t, storage.Clear())
}

func TestSessionKeepsMemoryAndStorageInSync(t *testing.T) {
	storage := &MemoryStorage{}
	sess := New(storage)

	require.NoError(t, sess.Activate("T1"))
	assert.Equal(t, "T1", sess.Token())
	stored, _ := storage.Load()
	assert.Equal(t, "T1", stored)

	require.NoError(t, sess.Invalidate())
	assert.Empty(t, sess.Token())
	stored, _ = storage.Load()
	assert.Empty(t, stored)
}

func TestSessionResume(t *testing.T) {
	storage := &MemoryStorage{}
	require.NoError(t, storage.Save("persisted"))

	sess := New(storage)
	assert.Empty(t, sess.Token(), "nothing in memory before resume")

	token, err := sess.Resume()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)
	assert.Equal(t, "persisted", sess.Token())
}

type failingStorage struct{ MemoryStorage }

func (f *failingStorage) Save(string) error { return assert.AnError }

func TestActivateRollsBackOnPersistFailure(t *testing.T) {
	sess := New(&failingStorage{})

	err := sess.Activate("T1")
	require.Error(t, err)
	assert.Empty(t, sess.Token(), "memory copy rolled back when persist fails")
}
