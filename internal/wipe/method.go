package wipe

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Method identifies a named overwrite policy: how many passes run and what
// byte pattern each pass writes. A method is fixed for the lifetime of an
// operation.
type Method string

const (
	// MethodSinglePass overwrites once with zeros.
	MethodSinglePass Method = "single"

	// MethodDoD3 is the DoD 5220.22-M 3-pass sequence: zeros, ones, random.
	MethodDoD3 Method = "dod3"

	// MethodDoD7 is the DoD 5220.22-M ECE 7-pass sequence:
	// zeros, ones, random, 0x96, zeros, ones, random.
	MethodDoD7 Method = "dod7"

	// MethodGutmann is a Gutmann-inspired 35-pass sequence. Passes 1-4 and
	// 32-35 are random; passes 5-31 use a byte derived from the pass index
	// instead of the literal Gutmann table. See FillPattern.
	MethodGutmann Method = "gutmann"
)

// Methods lists every supported method, in increasing pass count.
var Methods = []Method{MethodSinglePass, MethodDoD3, MethodDoD7, MethodGutmann}

// Passes returns the number of overwrite passes the method performs,
// or 0 for an unknown method.
func (m Method) Passes() int {
	switch m {
	case MethodSinglePass:
		return 1
	case MethodDoD3:
		return 3
	case MethodDoD7:
		return 7
	case MethodGutmann:
		return 35
	}
	return 0
}

func (m Method) String() string { return string(m) }

// ParseMethod converts a user-supplied method name (flag or config value)
// into a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if m.Passes() == 0 {
		return "", errors.Newf("unsupported wipe method %q (valid: single, dod3, dod7, gutmann)", s)
	}
	return m, nil
}
