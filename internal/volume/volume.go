// Package volume enumerates mounted volumes and resolves user-supplied
// volume identifiers (drive letters, mount points) to filesystem roots.
package volume

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v4/disk"
)

// Info describes a mounted volume eligible for a free-space wipe.
type Info struct {
	// Path is the filesystem root, e.g. `C:\` or `/`.
	Path   string
	Device string
	Fstype string

	// Label and Kind are populated from WMI on Windows; empty elsewhere.
	Label string
	Kind  string

	TotalBytes uint64
	FreeBytes  uint64
}

// List enumerates mounted volumes with capacity figures. Volumes whose
// usage cannot be read (virtual or transient mounts) are skipped.
func List() ([]Info, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, errors.Wrap(err, "enumerate partitions")
	}

	var infos []Info
	for _, p := range parts {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Path:       p.Mountpoint,
			Device:     p.Device,
			Fstype:     p.Fstype,
			TotalBytes: usage.Total,
			FreeBytes:  usage.Free,
		})
	}
	annotate(infos)
	return infos, nil
}

// FreeBytes reports the free capacity of the volume containing path.
func FreeBytes(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, errors.Wrapf(err, "query free space for %s", path)
	}
	return usage.Free, nil
}

// Resolve normalizes a volume identifier (a drive letter in any spelling
// "d", "D:", `D:\` on Windows, or a mount point path elsewhere) to a
// filesystem root that exists and is a directory.
func Resolve(id string) (string, error) {
	root, err := normalizeRoot(id)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", errors.Wrapf(err, "volume %s", id)
	}
	if !info.IsDir() {
		return "", errors.Newf("volume %s: %s is not a directory", id, root)
	}
	return root, nil
}
