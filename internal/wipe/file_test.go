package wipe

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDeleteFileSinglePass(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "secret.db", 100_000)

	e := NewEraser(WithBlockSize(4096))
	res := e.DeleteFile(context.Background(), path, MethodSinglePass, nil)

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Equal(t, uint64(100_000), res.BytesWiped)
	assert.Equal(t, 1, res.PassesCompleted)
	assert.Equal(t, 1, res.FilesWiped)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no residue, scrambled or otherwise")
}

func TestDeleteFileDoD7WritesEveryPass(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "ledger.bin", 10_000)

	e := NewEraser(WithBlockSize(4096))
	res := e.DeleteFile(context.Background(), path, MethodDoD7, nil)

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Equal(t, uint64(10_000*7), res.BytesWiped)
	assert.Equal(t, 7, res.PassesCompleted)
}

func TestDeleteFileZeroLength(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "empty", 0)

	res := NewEraser().DeleteFile(context.Background(), path, MethodDoD3, nil)

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Zero(t, res.BytesWiped)
	assert.Equal(t, 3, res.PassesCompleted)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileReadOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "locked.txt", 2048)
	require.NoError(t, os.Chmod(path, 0o400))

	res := NewEraser(WithBlockSize(512)).DeleteFile(context.Background(), path, MethodSinglePass, nil)

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileMissing(t *testing.T) {
	res := NewEraser().DeleteFile(context.Background(), filepath.Join(t.TempDir(), "nope"), MethodSinglePass, nil)
	assert.False(t, res.Success)
	assert.Error(t, res.Err)
	assert.False(t, res.Cancelled)
}

func TestDeleteFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	res := NewEraser().DeleteFile(context.Background(), dir, MethodSinglePass, nil)
	assert.False(t, res.Success)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "not a regular file")
}

func TestDeleteFileRejectsUnknownMethod(t *testing.T) {
	res := NewEraser().DeleteFile(context.Background(), "whatever", Method("shredder9000"), nil)
	assert.False(t, res.Success)
	assert.Error(t, res.Err)
}

func TestDeleteFileCancelBetweenPasses(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "long.bin", 64<<10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := NewEraser(WithBlockSize(16 << 10))
	res := e.DeleteFile(ctx, path, MethodDoD3, func(p Progress) {
		if p.Pass == 1 && strings.HasSuffix(p.Status, "complete") {
			cancel()
		}
	})

	assert.True(t, res.Cancelled)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.PassesCompleted)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "cancelled")

	// The target survives a cancelled wipe, overwritten but present.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(64<<10), info.Size())
}

func TestDeleteFileProgressShape(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "p.bin", 20_000)

	var snaps []Progress
	e := NewEraser(WithBlockSize(8192))
	res := e.DeleteFile(context.Background(), path, MethodDoD3, func(p Progress) {
		snaps = append(snaps, p)
	})
	require.True(t, res.Success)
	require.NotEmpty(t, snaps)

	last := snaps[len(snaps)-1]
	assert.Equal(t, 3, last.Pass)
	assert.Equal(t, 3, last.TotalPasses)
	assert.InDelta(t, 1.0, last.Fraction, 1e-9)
	assert.Equal(t, uint64(20_000*3), last.BytesWritten)

	prev := -1.0
	for _, p := range snaps {
		assert.GreaterOrEqual(t, p.Fraction, prev, "fraction must not regress")
		assert.LessOrEqual(t, p.Fraction, 1.0)
		prev = p.Fraction
	}
}
