package volume

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// mountEntry is one line of a Linux mount table
type mountEntry struct {
	Device     string
	MountPoint string
	FSType     string
}

// parseMounts reads a mount table in /proc/self/mounts format. Entries whose
// filesystem type is in skip are dropped unless mounted at "/", as are
// repeated mount points after the first.
func parseMounts(r io.Reader, skip map[string]bool) ([]mountEntry, error) {
	var entries []mountEntry
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		entry := mountEntry{
			Device:     unescapeMount(fields[0]),
			MountPoint: unescapeMount(fields[1]),
			FSType:     fields[2],
		}
		if (skip[entry.FSType] && entry.MountPoint != "/") || seen[entry.MountPoint] {
			continue
		}
		seen[entry.MountPoint] = true
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse mount table: %w", err)
	}
	return entries, nil
}

// parseNodevFilesystems returns the filesystem types flagged "nodev" in a
// /proc/filesystems listing. Those have no backing device.
func parseNodevFilesystems(r io.Reader) (map[string]bool, error) {
	nodev := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[0] == "nodev" {
			nodev[fields[1]] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse filesystems: %w", err)
	}
	return nodev, nil
}

// unescapeMount decodes the \ooo octal escapes the kernel uses for spaces,
// tabs, newlines and backslashes in mount table fields
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
