package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_WriteAndRead(t *testing.T) {
	var s fileStorage
	path := filepath.Join(t.TempDir(), "sub", "dir", "f.txt")

	assert.False(t, s.Exists(path))
	require.NoError(t, s.WriteAll(path, "a\nb"))
	assert.True(t, s.Exists(path))

	text, err := s.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", text)
}

func TestFileStorage_OverwriteKeepsMode(t *testing.T) {
	var s fileStorage
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	require.NoError(t, s.WriteAll(path, "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEditor_OpenAndSaveOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\ny\n"), 0644))
	e := NewEditor(Host{Display: newFakeDisplay(80, 24), Input: &scriptedInput{}}, DefaultSettings(), nil)

	e.Open(path)
	require.Equal(t, []string{"x", "y", ""}, e.doc.Lines())
	e.HandleKey('x')
	e.commands.Handle("w")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\ny\n", string(data))
}
