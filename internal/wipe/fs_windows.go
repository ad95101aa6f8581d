//go:build windows

package wipe

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sys/windows"
)

// openWriteThrough opens an existing file for exclusive writing with
// FILE_FLAG_WRITE_THROUGH, so every write reaches the medium before
// returning. Sharing is denied for the duration of the pass.
func openWriteThrough(path string) (*os.File, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	h, err := windows.CreateFile(p,
		windows.GENERIC_WRITE,
		0, // no sharing
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL|windows.FILE_FLAG_WRITE_THROUGH,
		0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(h), path), nil
}

// clearWriteProtection drops FILE_ATTRIBUTE_READONLY so the overwrite passes
// can open the file for writing.
func clearWriteProtection(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &os.PathError{Op: "clearreadonly", Path: path, Err: err}
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return &os.PathError{Op: "clearreadonly", Path: path, Err: err}
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY == 0 {
		return nil
	}
	if err := windows.SetFileAttributes(p, attrs&^windows.FILE_ATTRIBUTE_READONLY); err != nil {
		return &os.PathError{Op: "clearreadonly", Path: path, Err: err}
	}
	return nil
}

// createWipeTemp creates the free-space fill file on the volume containing
// root: hidden, write-through, delete-on-close. The kernel removes it when
// the handle closes, whatever the exit path.
func createWipeTemp(root string) (*os.File, string, error) {
	path := filepath.Join(root, ".winshred-"+uuid.NewString()+".fill")
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, "", &os.PathError{Op: "create", Path: path, Err: err}
	}
	h, err := windows.CreateFile(p,
		windows.GENERIC_WRITE,
		0,
		nil,
		windows.CREATE_NEW,
		windows.FILE_ATTRIBUTE_HIDDEN|windows.FILE_FLAG_WRITE_THROUGH|windows.FILE_FLAG_DELETE_ON_CLOSE,
		0)
	if err != nil {
		return nil, "", &os.PathError{Op: "create", Path: path, Err: err}
	}
	return os.NewFile(uintptr(h), path), path, nil
}

// isDiskFull reports whether err carries one of the Win32 volume-full error
// codes. Matching is by error code, never by message text.
func isDiskFull(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return errno == windows.ERROR_DISK_FULL || errno == windows.ERROR_HANDLE_DISK_FULL
}
