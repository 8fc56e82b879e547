package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenLoadInFreshStore(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, NewStore(dir, nil).Save(Config{LastOpenPath: "/tmp/pics"}))

	cfg := NewStore(dir, nil).Load()
	assert.Equal(t, "/tmp/pics", cfg.LastOpenPath)
}

func TestLoadMissingFileYieldsDefault(t *testing.T) {
	cfg := NewStore(t.TempDir(), nil).Load()

	assert.Equal(t, Config{}, cfg)
	assert.Equal(t, "", cfg.LastOpenPath)
}

func TestLoadCorruptFileYieldsDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644))

	assert.Equal(t, Config{}, NewStore(dir, nil).Load())
}

func TestLoadIgnoresUnknownKeysAndMissingField(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"window":"big"}`), 0o644))

	assert.Equal(t, Config{}, NewStore(dir, nil).Load())
}

func TestSaveWritesLastOpenPathKey(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)

	require.NoError(t, store.Save(Config{LastOpenPath: "/home/me/Pictures"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_open_path":"/home/me/Pictures"}`, string(data))
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing"), nil)

	assert.Error(t, store.Save(Config{LastOpenPath: "x"}))
}
