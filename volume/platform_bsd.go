//go:build darwin || freebsd

package volume

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/kchaow/filemanager"
)

func init() {
	register(runtime.GOOS, func() filemanager.VolumePlatform {
		return &bsdPlatform{mounts: make(map[string]unix.Statfs_t)}
	})
}

// pseudo filesystem types not listed as volumes
var bsdPseudo = map[string]bool{
	"devfs":  true,
	"autofs": true,
	"fdesc":  true,
	"procfs": true,
	"nullfs": true,
}

// bsdPlatform lists mounted filesystems via getfsstat(2)
type bsdPlatform struct {
	mounts map[string]unix.Statfs_t
}

func (p *bsdPlatform) Roots() ([]string, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, fmt.Errorf("getfsstat: %w", filemanager.OSError(err))
	}
	buf := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil, fmt.Errorf("getfsstat: %w", filemanager.OSError(err))
	}

	p.mounts = make(map[string]unix.Statfs_t, n)
	roots := make([]string, 0, n)
	for _, st := range buf[:n] {
		if bsdPseudo[unix.ByteSliceToString(st.Fstypename[:])] {
			continue
		}
		root := unix.ByteSliceToString(st.Mntonname[:])
		if _, ok := p.mounts[root]; ok {
			continue
		}
		p.mounts[root] = st
		roots = append(roots, root)
	}
	return roots, nil
}

func (p *bsdPlatform) Label(root string) string {
	if st, ok := p.mounts[root]; ok {
		if dev := unix.ByteSliceToString(st.Mntfromname[:]); dev != "" {
			return dev
		}
	}
	return root
}

func (p *bsdPlatform) FSType(root string) (string, error) {
	st, ok := p.mounts[root]
	if !ok {
		return "", fmt.Errorf("mount point %s: %w", root, filemanager.ErrNotFound)
	}
	return unix.ByteSliceToString(st.Fstypename[:]), nil
}

func (p *bsdPlatform) TotalBytes(root string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(root, &st); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", root, filemanager.OSError(err))
	}
	return uint64(st.Blocks) * uint64(st.Bsize), nil
}
