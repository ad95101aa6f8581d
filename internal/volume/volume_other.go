//go:build !windows

package volume

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// annotate is a no-op off Windows; there is no WMI to consult.
func annotate([]Info) {}

// normalizeRoot resolves a mount point path to an absolute, cleaned form.
func normalizeRoot(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("empty volume identifier")
	}
	abs, err := filepath.Abs(id)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", id)
	}
	return abs, nil
}
