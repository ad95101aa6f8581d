package wipe

import (
	"os"
	"time"
)

// throttledWriter caps the sustained write rate to a file. Passes are
// strictly sequential, so no locking is needed. A zero or negative limit
// writes at full speed.
type throttledWriter struct {
	f              *os.File
	maxBytesPerSec float64
	lastWrite      time.Time
}

func newThrottledWriter(f *os.File, maxSpeedMBps float64) *throttledWriter {
	return &throttledWriter{
		f:              f,
		maxBytesPerSec: maxSpeedMBps * 1024 * 1024,
		lastWrite:      time.Now(),
	}
}

func (w *throttledWriter) Write(p []byte) (int, error) {
	if w.maxBytesPerSec > 0 && len(p) > 0 {
		expected := time.Duration(float64(len(p)) / w.maxBytesPerSec * float64(time.Second))
		if since := time.Since(w.lastWrite); since < expected {
			time.Sleep(expected - since)
		}
	}
	n, err := w.f.Write(p)
	w.lastWrite = time.Now()
	return n, err
}

func (w *throttledWriter) Sync() error { return w.f.Sync() }
