//go:build linux

package volume

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/kchaow/filemanager"
)

const (
	mountsFile      = "/proc/self/mounts"
	filesystemsFile = "/proc/filesystems"
)

func init() {
	register("linux", func() filemanager.VolumePlatform {
		return newLinuxPlatform(mountsFile, filesystemsFile)
	})
}

// linuxPlatform lists mount points backed by a device. Roots refreshes the
// mount snapshot used by Label and FSType.
type linuxPlatform struct {
	mountsPath      string
	filesystemsPath string
	mounts          map[string]mountEntry
}

func newLinuxPlatform(mountsPath, filesystemsPath string) *linuxPlatform {
	return &linuxPlatform{
		mountsPath:      mountsPath,
		filesystemsPath: filesystemsPath,
		mounts:          make(map[string]mountEntry),
	}
}

func (p *linuxPlatform) Roots() ([]string, error) {
	nodev, err := p.pseudoFilesystems()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p.mountsPath)
	if err != nil {
		return nil, fmt.Errorf("open mount table: %w", filemanager.OSError(err))
	}
	defer f.Close()

	entries, err := parseMounts(f, nodev)
	if err != nil {
		return nil, err
	}

	p.mounts = make(map[string]mountEntry, len(entries))
	roots := make([]string, 0, len(entries))
	for _, e := range entries {
		p.mounts[e.MountPoint] = e
		roots = append(roots, e.MountPoint)
	}
	return roots, nil
}

// Label is the mounted device, or the mount point if unknown
func (p *linuxPlatform) Label(root string) string {
	if e, ok := p.mounts[root]; ok && e.Device != "" {
		return e.Device
	}
	return root
}

func (p *linuxPlatform) FSType(root string) (string, error) {
	e, ok := p.mounts[root]
	if !ok {
		return "", fmt.Errorf("mount point %s: %w", root, filemanager.ErrNotFound)
	}
	return e.FSType, nil
}

func (p *linuxPlatform) TotalBytes(root string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(root, &st); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", root, filemanager.OSError(err))
	}
	return uint64(st.Blocks) * uint64(st.Frsize), nil
}

// pseudoFilesystems reads the kernel's nodev list. Without it nothing is skipped.
func (p *linuxPlatform) pseudoFilesystems() (map[string]bool, error) {
	f, err := os.Open(p.filesystemsPath)
	if err != nil {
		return map[string]bool{}, nil
	}
	defer f.Close()
	return parseNodevFilesystems(f)
}
