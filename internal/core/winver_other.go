//go:build !windows

package core

import (
	"fmt"
	"runtime"
)

// OSVersionString identifies the host platform on non-Windows builds.
func OSVersionString() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
