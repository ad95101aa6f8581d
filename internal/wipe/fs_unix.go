//go:build !windows

package wipe

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// openWriteThrough opens an existing file for writing with synchronous I/O,
// so every write reaches the medium before returning. Without this the OS
// page cache could coalesce passes and defeat the multi-pass overwrite.
func openWriteThrough(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|unix.O_SYNC, 0)
}

// clearWriteProtection makes the file writable by its owner, the Unix
// equivalent of clearing the Windows read-only attribute.
func clearWriteProtection(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0o200 != 0 {
		return nil
	}
	return os.Chmod(path, info.Mode().Perm()|0o200)
}

// createWipeTemp creates the free-space fill file on the volume containing
// root, opened for synchronous writing. The entry is unlinked immediately
// after creation, so the data blocks are reclaimed as soon as the handle is
// closed on any exit path, including a crash of this process.
func createWipeTemp(root string) (*os.File, string, error) {
	path := filepath.Join(root, ".winshred-"+uuid.NewString()+".fill")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL|unix.O_SYNC, 0o600)
	if err != nil {
		return nil, "", err
	}
	if err := os.Remove(path); err != nil {
		f.Close()
		return nil, "", errors.Wrap(err, "unlink fill file")
	}
	return f, path, nil
}

// isDiskFull reports whether err is the filesystem's out-of-space signal.
func isDiskFull(err error) bool {
	return errors.Is(err, unix.ENOSPC) || errors.Is(err, unix.EDQUOT)
}
