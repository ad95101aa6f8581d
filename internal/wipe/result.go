package wipe

import "time"

// Progress is a point-in-time snapshot of a running operation. It is purely
// observational: the engine never reads it back, and callers may marshal it
// onto whatever goroutine or UI loop they like. The engine invokes the sink
// synchronously from its worker, so sinks must not block for long.
type Progress struct {
	Pass        int
	TotalPasses int

	// BytesWritten accumulates across passes (and across files in a
	// directory wipe).
	BytesWritten uint64

	// TotalBytes is the expected total for the whole operation, or 0 when
	// it cannot be known up front.
	TotalBytes uint64

	// Fraction is overall completion in [0,1].
	Fraction float64

	// Status is a short human-readable description of the current step.
	Status string

	// ETA is the estimated time remaining, derived from the observed write
	// rate. Only the free-space executor computes it; zero elsewhere.
	ETA time.Duration
}

// ProgressFunc receives progress snapshots. A nil sink disables reporting.
type ProgressFunc func(Progress)

// Result is the outcome of a single top-level wipe call. Exactly one Result
// is produced per call, whether the operation completed, faulted, or was
// cancelled; partial progress is always carried in the counters rather than
// discarded.
type Result struct {
	// Success is true when every step of the operation completed. Directory
	// wipes stay successful even when best-effort directory removals fail,
	// because the content-destruction guarantee was already met.
	Success bool

	// BytesWiped is the sum of bytes actually written across completed
	// passes, not a nominal size-times-passes estimate.
	BytesWiped uint64

	// PassesCompleted never exceeds the method's pass count.
	PassesCompleted int

	// FilesWiped and FilesFailed are populated by directory wipes.
	FilesWiped  int
	FilesFailed int

	Duration  time.Duration
	Cancelled bool
	Err       error
}

// ErrorMessage returns the error text for presentation, or "" on a clean
// result.
func (r *Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
