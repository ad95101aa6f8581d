package wipe

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v4/disk"
	"go.uber.org/zap"
)

// errCancelled is the terminal error carried by results of operations that
// observed cancellation. Cancellation is a normal outcome, not a fault, but
// it is labeled so callers can tell a user-initiated stop from an I/O error.
var errCancelled = errors.New("operation cancelled")

// Eraser runs secure overwrite operations. The zero configuration (NewEraser
// with no options) wipes at full speed with 1 MiB blocks and a no-op logger.
//
// An Eraser is stateless across calls and safe for sequential reuse. Running
// two free-space wipes on the same volume concurrently is the caller's bug;
// the engine does not coordinate between operations.
type Eraser struct {
	log             *zap.Logger
	blockSize       int
	maxSpeedMBps    float64
	maxBytesPerPass uint64
	progressEvery   uint64
	freeBytes       func(path string) (uint64, error)
}

// Option configures an Eraser.
type Option func(*Eraser)

// WithLogger attaches a structured logger for operation audit events.
func WithLogger(log *zap.Logger) Option {
	return func(e *Eraser) {
		if log != nil {
			e.log = log
		}
	}
}

// WithBlockSize overrides the pattern buffer size.
func WithBlockSize(n int) Option {
	return func(e *Eraser) {
		if n > 0 {
			e.blockSize = n
		}
	}
}

// WithMaxSpeedMBps caps the sustained write rate so a background wipe does
// not starve the rest of the machine. Zero means unthrottled.
func WithMaxSpeedMBps(v float64) Option {
	return func(e *Eraser) { e.maxSpeedMBps = v }
}

// WithMaxBytesPerPass caps how much a single free-space pass may write
// before treating the pass as complete. Zero means write until the volume
// is full.
func WithMaxBytesPerPass(n uint64) Option {
	return func(e *Eraser) { e.maxBytesPerPass = n }
}

// WithProgressEvery sets how many bytes a free-space pass writes between
// progress reports.
func WithProgressEvery(n uint64) Option {
	return func(e *Eraser) {
		if n > 0 {
			e.progressEvery = n
		}
	}
}

// WithFreeSpaceFunc overrides how the free-space executor sizes a volume.
// Used by tests; the default queries the filesystem.
func WithFreeSpaceFunc(fn func(path string) (uint64, error)) Option {
	return func(e *Eraser) {
		if fn != nil {
			e.freeBytes = fn
		}
	}
}

// NewEraser builds an Eraser with the given options applied over defaults.
func NewEraser(opts ...Option) *Eraser {
	e := &Eraser{
		log:           zap.NewNop(),
		blockSize:     DefaultBlockSize,
		progressEvery: 64 << 20, // 64 MiB between free-space reports
		freeBytes:     volumeFreeBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// volumeFreeBytes reports the free capacity of the volume containing path.
func volumeFreeBytes(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, errors.Wrapf(err, "query free space for %s", path)
	}
	return usage.Free, nil
}

// cancelled marks a result as terminated by the context.
func (e *Eraser) cancelled(res *Result, ctx context.Context) *Result {
	res.Cancelled = true
	res.Err = errCancelled
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		res.Err = errors.WithSecondaryError(errCancelled, cause)
	}
	return res
}

// report invokes the sink if one is attached.
func report(onProgress ProgressFunc, p Progress) {
	if onProgress != nil {
		onProgress(p)
	}
}
