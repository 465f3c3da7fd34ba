package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trim/internal/adapters/fs"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestWalker_FindUnits(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "svc", "svc.unit.yaml"))
	touch(t, filepath.Join(root, "lib", "lib.unit.yaml"))
	touch(t, filepath.Join(root, "lib", "readme.md"))
	touch(t, filepath.Join(root, ".git", "ignored.unit.yaml"))

	units, err := fs.NewWalker().FindUnits(root, ".unit.yaml")

	require.NoError(t, err)
	require.Len(t, units, 2)
	// Sorted lexicographically.
	assert.Equal(t, filepath.Join(root, "lib", "lib.unit.yaml"), units[0])
	assert.Equal(t, filepath.Join(root, "svc", "svc.unit.yaml"), units[1])
}

func TestWalker_FindUnits_EmptyRoot(t *testing.T) {
	units, err := fs.NewWalker().FindUnits(t.TempDir(), ".unit.yaml")

	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestWalker_FindUnits_MissingRoot(t *testing.T) {
	_, err := fs.NewWalker().FindUnits(filepath.Join(t.TempDir(), "absent"), ".unit.yaml")
	require.Error(t, err)
}

func TestHasher_Hash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(a, []byte("content"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("content"), 0o600))

	hasher := fs.NewHasher()
	hashA, err := hasher.Hash(a)
	require.NoError(t, err)
	hashB, err := hasher.Hash(b)
	require.NoError(t, err)

	// Same content hashes the same regardless of path.
	assert.Equal(t, hashA, hashB)
	assert.Len(t, hashA, 16)

	require.NoError(t, os.WriteFile(b, []byte("changed"), 0o600))
	hashB, err = hasher.Hash(b)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestHasher_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().Hash(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
