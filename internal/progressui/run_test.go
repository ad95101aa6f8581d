package progressui

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/winshred/internal/wipe"
)

func TestRunPlainReturnsWorkerResult(t *testing.T) {
	want := &wipe.Result{Success: true, BytesWiped: 42}
	var buf bytes.Buffer

	got := runPlain(context.Background(), &buf, "Wiping secret.db", func(ctx context.Context, onProgress wipe.ProgressFunc) *wipe.Result {
		onProgress(wipe.Progress{Pass: 1, TotalPasses: 1, Fraction: 0.5, BytesWritten: 21})
		return want
	})

	assert.Same(t, want, got)
	out := buf.String()
	assert.Contains(t, out, "Wiping secret.db")
	assert.Contains(t, out, "pass 1/1")
}

func TestRunPlainThrottlesReports(t *testing.T) {
	var buf bytes.Buffer

	runPlain(context.Background(), &buf, "t", func(ctx context.Context, onProgress wipe.ProgressFunc) *wipe.Result {
		// A burst of snapshots inside the report interval collapses to one
		// line.
		for i := 0; i < 50; i++ {
			onProgress(wipe.Progress{Pass: 1, TotalPasses: 3})
		}
		return &wipe.Result{Success: true}
	})

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")), "title line plus one report")
}

func TestRunPlainPassesContextThrough(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	runPlain(ctx, &bytes.Buffer{}, "t", func(inner context.Context, _ wipe.ProgressFunc) *wipe.Result {
		require.Equal(t, "v", inner.Value(key{}))
		return &wipe.Result{}
	})
}
