package wipe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeleteFile overwrites the file at path with the method's full pass
// sequence, truncates it to zero length, renames it to a random name, and
// removes it. The returned Result carries partial progress on cancellation
// or fault; a partially overwritten file is left in whatever state the last
// completed step produced.
func (e *Eraser) DeleteFile(ctx context.Context, path string, method Method, onProgress ProgressFunc) *Result {
	start := time.Now()
	res := &Result{}
	defer func() { res.Duration = time.Since(start) }()

	total := method.Passes()
	if total == 0 {
		res.Err = errors.Newf("unsupported wipe method %q", method)
		return res
	}

	info, err := os.Lstat(path)
	if err != nil {
		res.Err = errors.Wrap(err, "stat target")
		return res
	}
	if !info.Mode().IsRegular() {
		res.Err = errors.Newf("%s is not a regular file", path)
		return res
	}
	size := uint64(info.Size())

	if err := clearWriteProtection(path); err != nil {
		res.Err = errors.Wrap(err, "clear write protection")
		return res
	}

	e.log.Debug("wiping file",
		zap.String("path", path),
		zap.String("method", method.String()),
		zap.Int("passes", total),
		zap.Uint64("size", size))

	buf := make([]byte, e.blockSize)
	for pass := 1; pass <= total; pass++ {
		if ctx.Err() != nil {
			return e.cancelled(res, ctx)
		}
		if err := FillPattern(method, pass, buf); err != nil {
			res.Err = err
			return res
		}

		passBase := res.BytesWiped
		written, err := e.overwritePass(ctx, path, buf, size, func(done uint64) {
			frac := 0.0
			if size > 0 {
				frac = float64(done) / float64(size)
			}
			report(onProgress, Progress{
				Pass:         pass,
				TotalPasses:  total,
				BytesWritten: passBase + done,
				TotalBytes:   size * uint64(total),
				Fraction:     (float64(pass-1) + frac) / float64(total),
				Status:       fmt.Sprintf("Pass %d/%d", pass, total),
			})
		})
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
			TotalBytes:   size * uint64(total),
			Fraction:     float64(pass) / float64(total),
			Status:       fmt.Sprintf("Pass %d/%d complete", pass, total),
		})
	}

	if ctx.Err() != nil {
		return e.cancelled(res, ctx)
	}

	// Drop the length metadata before the entry disappears.
	if err := os.Truncate(path, 0); err != nil {
		res.Err = errors.Wrap(err, "truncate")
		return res
	}

	// A random name hides the original filename from directory-entry level
	// recovery once the entry is gone.
	scrambled := filepath.Join(filepath.Dir(path), uuid.NewString())
	if err := os.Rename(path, scrambled); err != nil {
		res.Err = errors.Wrap(err, "scramble name")
		return res
	}
	if err := os.Remove(scrambled); err != nil {
		res.Err = errors.Wrap(err, "remove")
		return res
	}

	res.Success = true
	res.FilesWiped = 1
	e.log.Debug("file wiped",
		zap.String("path", path),
		zap.Uint64("bytes", res.BytesWiped),
		zap.Int("passes", res.PassesCompleted))
	return res
}

// overwritePass writes buf repeatedly until size bytes are covered, with a
// short final chunk when size is not block-aligned. The file is opened
// write-through and flushed before close so the pass is durably on the
// medium. Cancellation is checked between blocks, never mid-write.
func (e *Eraser) overwritePass(ctx context.Context, path string, buf []byte, size uint64, onBlock func(done uint64)) (uint64, error) {
	f, err := openWriteThrough(path)
	if err != nil {
		return 0, errors.Wrap(err, "open for overwrite")
	}
	w := newThrottledWriter(f, e.maxSpeedMBps)

	var done uint64
	for done < size {
		if ctx.Err() != nil {
			f.Close()
			return done, errCancelled
		}
		chunk := buf
		if remaining := size - done; remaining < uint64(len(buf)) {
			chunk = buf[:remaining]
		}
		n, werr := w.Write(chunk)
		done += uint64(n)
		if werr != nil {
			f.Close()
			return done, errors.Wrap(werr, "overwrite")
		}
		if onBlock != nil {
			onBlock(done)
		}
	}

	if err := w.Sync(); err != nil {
		f.Close()
		return done, errors.Wrap(err, "sync")
	}
	return done, errors.Wrap(f.Close(), "close")
}
