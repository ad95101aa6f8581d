package wipe

// writeOutcome classifies the result of a write during a free-space pass.
// Volume exhaustion is a first-class outcome rather than an error: it is the
// only reliable signal that every free cluster has been touched.
type writeOutcome int

const (
	writeOK writeOutcome = iota

	// writeDeviceFull: the filesystem cannot allocate another block. The
	// expected terminal condition of a free-space pass.
	writeDeviceFull

	// writeFault: any other I/O failure (permissions, device removed, media
	// error). Always surfaced to the caller.
	writeFault
)

func classifyWrite(err error) writeOutcome {
	switch {
	case err == nil:
		return writeOK
	case isDiskFull(err):
		return writeDeviceFull
	default:
		return writeFault
	}
}
