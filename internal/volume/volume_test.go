package volume

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMountPointPath(t *testing.T) {
	dir := t.TempDir()

	root, err := Resolve(dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(root))

	_, err = Resolve(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestResolveRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Resolve(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestResolveDriveLetterSpellings(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("drive letters are a windows concept")
	}
	for _, id := range []string{"c", "C", "C:", `C:\`} {
		root, err := Resolve(id)
		require.NoError(t, err, "id %q", id)
		assert.Equal(t, `C:\`, root)
	}
}

func TestFreeBytes(t *testing.T) {
	free, err := FreeBytes(t.TempDir())
	require.NoError(t, err)
	assert.Positive(t, free)
}

func TestListReportsCapacity(t *testing.T) {
	infos, err := List()
	require.NoError(t, err)
	require.NotEmpty(t, infos)
	for _, v := range infos {
		assert.NotEmpty(t, v.Path)
		assert.GreaterOrEqual(t, v.TotalBytes, v.FreeBytes)
	}
}
