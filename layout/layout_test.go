package layout

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, withBackend bool) (root, adapterDir string) {
	t.Helper()
	root = t.TempDir()
	adapterDir = filepath.Join(root, "api")
	require.NoError(t, os.MkdirAll(adapterDir, 0o755))
	if withBackend {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "backend"), 0o755))
	}
	return root, adapterDir
}

func TestResolve_Sibling(t *testing.T) {
	root, adapterDir := newTree(t, true)

	l, err := Resolve(adapterDir, "backend")
	require.NoError(t, err)
	assert.Equal(t, adapterDir, l.AdapterDir)
	assert.Equal(t, filepath.Join(root, "backend"), l.BackendDir)
}

func TestResolve_DefaultSibling(t *testing.T) {
	root, adapterDir := newTree(t, true)

	l, err := Resolve(adapterDir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "backend"), l.BackendDir)
}

func TestResolve_Missing(t *testing.T) {
	_, adapterDir := newTree(t, false)

	l, err := Resolve(adapterDir, "backend")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsResolution(err))
	assert.Equal(t, Layout{}, l)
}

func TestResolve_NotDirectory(t *testing.T) {
	root, adapterDir := newTree(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(root, "backend"), []byte("x"), 0o644))

	_, err := Resolve(adapterDir, "backend")
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestResolve_Unreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	root, adapterDir := newTree(t, true)
	backend := filepath.Join(root, "backend")
	require.NoError(t, os.Chmod(backend, 0o000))
	t.Cleanup(func() { _ = os.Chmod(backend, 0o755) })

	_, err := Resolve(adapterDir, "backend")
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestResolve_NoAdapterDir(t *testing.T) {
	_, err := Resolve("", "backend")
	assert.ErrorIs(t, err, ErrNoAdapterDir)
}

func TestAdapterDir(t *testing.T) {
	explicit := t.TempDir()
	dir, err := AdapterDir(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, dir)

	root, adapterDir := newTree(t, false)

	t.Chdir(adapterDir)
	dir, err = AdapterDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(adapterDir), filepath.Base(dir))

	t.Chdir(root)
	dir, err = AdapterDir("")
	require.NoError(t, err)
	assert.Equal(t, "api", filepath.Base(dir))
}

func TestIsResolution(t *testing.T) {
	assert.False(t, IsResolution(nil))
	assert.False(t, IsResolution(os.ErrClosed))
}
