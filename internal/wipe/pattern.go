package wipe

import (
	"crypto/rand"

	"github.com/cockroachdb/errors"
)

// DefaultBlockSize is the size of the pattern buffer each executor writes
// repeatedly during a pass.
const DefaultBlockSize = 1 << 20 // 1 MiB

// passFill describes the content of a single pass: either a repeated byte
// or cryptographically random data.
type passFill struct {
	random bool
	b      byte
}

// Fixed pass tables. These are immutable; FillPattern only reads them, so
// concurrent operations in the same process never interfere.
var (
	dod3Sequence = [3]passFill{{b: 0x00}, {b: 0xFF}, {random: true}}
	dod7Sequence = [7]passFill{
		{b: 0x00}, {b: 0xFF}, {random: true}, {b: 0x96},
		{b: 0x00}, {b: 0xFF}, {random: true},
	}
)

// FillPattern fills buf with the pattern for the given 1-based pass of the
// method. Random passes draw fresh randomness on every call; executors call
// this once per pass and reuse the buffer across writes, so a pass writes
// one random block repeatedly rather than regenerating per block.
func FillPattern(m Method, pass int, buf []byte) error {
	total := m.Passes()
	if total == 0 {
		return errors.Newf("unsupported wipe method %q", m)
	}
	if pass < 1 || pass > total {
		return errors.Newf("pass %d out of range for method %s (1..%d)", pass, m, total)
	}

	switch m {
	case MethodSinglePass:
		fillByte(buf, 0x00)
	case MethodDoD3:
		return applyFill(dod3Sequence[pass-1], buf)
	case MethodDoD7:
		return applyFill(dod7Sequence[pass-1], buf)
	case MethodGutmann:
		// Gutmann-inspired: random lead-in and lead-out passes, deterministic
		// derived bytes in between. Not the literal Gutmann table.
		if pass <= 4 || pass >= 32 {
			return fillRandom(buf)
		}
		fillByte(buf, byte((pass*17)%256))
	}
	return nil
}

func applyFill(f passFill, buf []byte) error {
	if f.random {
		return fillRandom(buf)
	}
	fillByte(buf, f.b)
	return nil
}

func fillByte(buf []byte, b byte) {
	for i := range buf {
		buf[i] = b
	}
}

func fillRandom(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return errors.Wrap(err, "draw random pattern")
	}
	return nil
}
