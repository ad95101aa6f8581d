package wipe

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempWriteFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestThrottledWriterUnlimited(t *testing.T) {
	w := newThrottledWriter(tempWriteFile(t), 0)

	start := time.Now()
	n, err := w.Write(make([]byte, 1<<20))
	require.NoError(t, err)
	assert.Equal(t, 1<<20, n)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestThrottledWriterPacesWrites(t *testing.T) {
	// 1 MB/s means a second 256 KiB block may not start until ~250 ms after
	// the first.
	w := newThrottledWriter(tempWriteFile(t), 1)
	block := make([]byte, 256<<10)

	_, err := w.Write(block)
	require.NoError(t, err)

	start := time.Now()
	_, err = w.Write(block)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}
