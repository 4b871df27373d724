package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV_MissingKeyNotFound(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	_, found, err := kv.Get("nothing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileKV_SetGetRoundtrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Set("slot", []byte(`{"a":1}`)))

	value, found, err := kv.Get("slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"a":1}`), value)
}

func TestFileKV_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Set("slot", []byte("x")))
	assert.FileExists(t, filepath.Join(dir, "slot.json"))
}

func TestFileKV_EmptyDirRejected(t *testing.T) {
	_, err := NewFileKV("")
	assert.Error(t, err)
}

func TestSQLiteKV_SetGetRoundtrip(t *testing.T) {
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()

	_, found, err := kv.Get("slot")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set("slot", []byte("one")))
	require.NoError(t, kv.Set("slot", []byte("two")))

	value, found, err := kv.Get("slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("two"), value)
}
