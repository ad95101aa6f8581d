//go:build windows

package volume

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/yusufpapurcu/wmi"
)

// win32LogicalDisk mirrors the WMI Win32_LogicalDisk fields we query.
type win32LogicalDisk struct {
	DeviceID   string
	VolumeName string
	DriveType  uint32
}

// annotate enriches the inventory with the volume label and drive kind from
// WMI. The inventory is still useful without WMI, so failures are ignored.
func annotate(infos []Info) {
	var disks []win32LogicalDisk
	if err := wmi.Query("SELECT DeviceID, VolumeName, DriveType FROM Win32_LogicalDisk", &disks); err != nil {
		return
	}
	byID := make(map[string]win32LogicalDisk, len(disks))
	for _, d := range disks {
		byID[strings.ToUpper(d.DeviceID)] = d
	}
	for i := range infos {
		id := strings.ToUpper(strings.TrimSuffix(infos[i].Path, `\`))
		if d, ok := byID[id]; ok {
			infos[i].Label = d.VolumeName
			infos[i].Kind = driveKind(d.DriveType)
		}
	}
}

// driveKind maps the Win32_LogicalDisk DriveType enumeration to a label.
func driveKind(t uint32) string {
	switch t {
	case 2:
		return "Removable"
	case 3:
		return "Fixed"
	case 4:
		return "Network"
	case 5:
		return "CD-ROM"
	case 6:
		return "RAM disk"
	}
	return "Unknown"
}

// normalizeRoot accepts "d", "D:", or `D:\` and returns `D:\`; anything
// longer is treated as a mount point path.
func normalizeRoot(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("empty volume identifier")
	}
	trimmed := strings.TrimSuffix(strings.TrimSuffix(id, `\`), ":")
	if len(trimmed) == 1 {
		c := trimmed[0]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return strings.ToUpper(trimmed) + `:\`, nil
		}
		return "", errors.Newf("invalid drive letter %q", id)
	}
	return filepath.Clean(id), nil
}
