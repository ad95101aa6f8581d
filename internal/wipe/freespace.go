package wipe

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// WipeFreeSpace overwrites every free cluster on the volume containing
// root. There is no portable way to enumerate free clusters, so each pass
// manufactures a fill file and writes the pass pattern until the filesystem
// refuses to allocate another block; that refusal is the pass's success
// signal, not an error. The fill file is created delete-on-close, so
// completion, cancellation, and crashes all reclaim the space.
func (e *Eraser) WipeFreeSpace(ctx context.Context, root string, method Method, onProgress ProgressFunc) *Result {
	start := time.Now()
	res := &Result{}
	defer func() { res.Duration = time.Since(start) }()

	total := method.Passes()
	if total == 0 {
		res.Err = errors.Newf("unsupported wipe method %q", method)
		return res
	}

	info, err := os.Stat(root)
	if err != nil {
		res.Err = errors.Wrap(err, "stat volume root")
		return res
	}
	if !info.IsDir() {
		res.Err = errors.Newf("%s is not a directory", root)
		return res
	}

	buf := make([]byte, e.blockSize)
	for pass := 1; pass <= total; pass++ {
		if ctx.Err() != nil {
			return e.cancelled(res, ctx)
		}

		// Sized before the pass starts; only used for progress and ETA.
		free, err := e.freeBytes(root)
		if err != nil {
			res.Err = err
			return res
		}
		if err := FillPattern(method, pass, buf); err != nil {
			res.Err = err
			return res
		}

		e.log.Info("free-space pass starting",
			zap.String("volume", root),
			zap.Int("pass", pass),
			zap.Int("passes", total),
			zap.Uint64("free_bytes", free))

		written, err := e.fillPass(ctx, root, buf, free, pass, total, res.BytesWiped, onProgress)
		res.BytesWiped += written
		if err != nil {
			if errors.Is(err, errCancelled) {
				return e.cancelled(res, ctx)
			}
			res.Err = err
			return res
		}
		res.PassesCompleted = pass

		report(onProgress, Progress{
			Pass:         pass,
			TotalPasses:  total,
			BytesWritten: res.BytesWiped,
			Fraction:     float64(pass) / float64(total),
			Status:       fmt.Sprintf("Pass %d/%d complete", pass, total),
		})
		e.log.Info("free-space pass complete",
			zap.String("volume", root),
			zap.Int("pass", pass),
			zap.Uint64("bytes_written", written))
	}

	res.Success = true
	return res
}

// fillPass writes buf into a fresh fill file until the volume reports
// out-of-space (or the configured per-pass cap is reached). Returns the
// bytes written this pass. The fill file is gone by the time fillPass
// returns, so the next pass starts from a clean free-space state.
func (e *Eraser) fillPass(ctx context.Context, root string, buf []byte, free uint64, pass, total int, base uint64, onProgress ProgressFunc) (uint64, error) {
	f, path, err := createWipeTemp(root)
	if err != nil {
		if classifyWrite(err) == writeDeviceFull {
			// Nothing free to overwrite.
			return 0, nil
		}
		return 0, errors.Wrap(err, "create fill file")
	}
	defer f.Close() // removes the fill file on every exit path

	e.log.Debug("fill file created", zap.String("path", path))
	w := newThrottledWriter(f, e.maxSpeedMBps)
	passStart := time.Now()

	var written, lastReport uint64
	for {
		if ctx.Err() != nil {
			return written, errCancelled
		}
		if e.maxBytesPerPass > 0 && written >= e.maxBytesPerPass {
			// Capped pass (configured ceiling); flush and treat the pass as
			// complete.
			if err := w.Sync(); classifyWrite(err) == writeFault {
				return written, errors.Wrap(err, "sync fill file")
			}
			return written, nil
		}

		n, werr := w.Write(buf)
		written += uint64(n)
		switch classifyWrite(werr) {
		case writeDeviceFull:
			// Every free cluster has been touched. The data is already on
			// the medium (write-through), so there is nothing left to flush.
			return written, nil
		case writeFault:
			return written, errors.Wrap(werr, "write fill file")
		}

		if onProgress != nil && written-lastReport >= e.progressEvery {
			lastReport = written
			onProgress(e.fillProgress(written, free, base, pass, total, passStart))
		}
	}
}

// fillProgress builds the in-pass snapshot, including the write-rate ETA.
func (e *Eraser) fillProgress(written, free, base uint64, pass, total int, passStart time.Time) Progress {
	frac := 0.0
	if free > 0 {
		frac = float64(written) / float64(free)
		if frac > 1 {
			frac = 1
		}
	}
	var eta time.Duration
	if elapsed := time.Since(passStart).Seconds(); elapsed > 0 && written > 0 && free > written {
		rate := float64(written) / elapsed
		eta = time.Duration(float64(free-written) / rate * float64(time.Second))
	}
	return Progress{
		Pass:         pass,
		TotalPasses:  total,
		BytesWritten: base + written,
		TotalBytes:   free * uint64(total),
		Fraction:     (float64(pass-1) + frac) / float64(total),
		Status:       fmt.Sprintf("Pass %d/%d: filling free space", pass, total),
		ETA:          eta,
	}
}
