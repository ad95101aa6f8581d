//go:build !windows

package wipe

import (
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClassifyWrite(t *testing.T) {
	assert.Equal(t, writeOK, classifyWrite(nil))

	full := &os.PathError{Op: "write", Path: "/x", Err: unix.ENOSPC}
	assert.Equal(t, writeDeviceFull, classifyWrite(full))
	assert.Equal(t, writeDeviceFull, classifyWrite(errors.Wrap(full, "fill")))

	quota := &os.PathError{Op: "write", Path: "/x", Err: unix.EDQUOT}
	assert.Equal(t, writeDeviceFull, classifyWrite(quota))

	denied := &os.PathError{Op: "write", Path: "/x", Err: unix.EACCES}
	assert.Equal(t, writeFault, classifyWrite(denied))
	assert.Equal(t, writeFault, classifyWrite(errors.New("device vanished")))
}

func TestClearWriteProtection(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "ro.txt", 10)
	require.NoError(t, os.Chmod(path, 0o400))

	require.NoError(t, clearWriteProtection(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o200)
}

func TestClearWriteProtectionAlreadyWritable(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "rw.txt", 10)

	require.NoError(t, clearWriteProtection(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestCreateWipeTempUnlinksImmediately(t *testing.T) {
	root := t.TempDir()

	f, path, err := createWipeTemp(root)
	require.NoError(t, err)
	defer f.Close()

	// Entry already gone; data blocks live only as long as the handle.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	n, err := f.Write([]byte("still writable through the handle"))
	require.NoError(t, err)
	assert.Equal(t, 33, n)
}
