//go:build windows

package volume

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"

	"github.com/kchaow/filemanager"
)

func init() {
	register("windows", func() filemanager.VolumePlatform {
		return windowsPlatform{}
	})
}

// windowsPlatform lists logical drives such as `C:\`
type windowsPlatform struct{}

func (windowsPlatform) Roots() ([]string, error) {
	n, err := windows.GetLogicalDriveStrings(0, nil)
	if err != nil {
		return nil, fmt.Errorf("GetLogicalDriveStrings: %w", filemanager.OSError(err))
	}
	buf := make([]uint16, n)
	n, err = windows.GetLogicalDriveStrings(n, &buf[0])
	if err != nil {
		return nil, fmt.Errorf("GetLogicalDriveStrings: %w", filemanager.OSError(err))
	}

	// NUL-separated list terminated by an empty string
	var roots []string
	for _, drive := range strings.Split(windows.UTF16ToString(nulToSep(buf[:n])), "|") {
		if drive != "" {
			roots = append(roots, drive)
		}
	}
	return roots, nil
}

// Label is "<volume name> (C:)", or just "C:" for an unnamed volume
func (windowsPlatform) Label(root string) string {
	drive := strings.TrimSuffix(root, `\`)
	name, _, err := volumeInformation(root)
	if err != nil || name == "" {
		return drive
	}
	return fmt.Sprintf("%s (%s)", name, drive)
}

func (windowsPlatform) FSType(root string) (string, error) {
	_, fsType, err := volumeInformation(root)
	return fsType, err
}

func (windowsPlatform) TotalBytes(root string) (uint64, error) {
	path, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", root, filemanager.ErrValidation)
	}
	var free, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(path, &free, &total, &totalFree); err != nil {
		return 0, fmt.Errorf("GetDiskFreeSpaceEx %s: %w", root, filemanager.OSError(err))
	}
	return total, nil
}

func volumeInformation(root string) (name, fsType string, err error) {
	path, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", root, filemanager.ErrValidation)
	}
	nameBuf := make([]uint16, windows.MAX_PATH+1)
	fsBuf := make([]uint16, windows.MAX_PATH+1)
	var serial, maxComponent, flags uint32
	err = windows.GetVolumeInformation(path, &nameBuf[0], uint32(len(nameBuf)),
		&serial, &maxComponent, &flags, &fsBuf[0], uint32(len(fsBuf)))
	if err != nil {
		return "", "", fmt.Errorf("GetVolumeInformation %s: %w", root, filemanager.OSError(err))
	}
	return windows.UTF16ToString(nameBuf), windows.UTF16ToString(fsBuf), nil
}

func nulToSep(buf []uint16) []uint16 {
	out := make([]uint16, len(buf))
	for i, c := range buf {
		if c == 0 {
			c = '|'
		}
		out[i] = c
	}
	return out
}
