// Package filemanager contains core domain types and interfaces for the
// console file manager
package filemanager

import (
	"path/filepath"
	"time"
)

// PersonRecord is the three-field name record persisted by the codecs.
// It has no identity beyond structural equality.
type PersonRecord struct {
	FirstName  string `json:"firstName" xml:"firstName"`
	LastName   string `json:"lastName" xml:"lastName"`
	MiddleName string `json:"middleName" xml:"middleName"`
}

// FileTarget is a resolved path composed of a validated directory and a
// validated file name. Build it with pathcheck.Resolve.
type FileTarget struct {
	Dir  string
	Name string
}

// Path returns the joined path of the target
func (t FileTarget) Path() string {
	return filepath.Join(t.Dir, t.Name)
}

// Ext returns the lower-cased extension of the target name including the dot
func (t FileTarget) Ext() string {
	return lowerExt(t.Name)
}

// VolumeInfo is a read-only snapshot of one storage root. It is recomputed on
// every query and never persisted.
type VolumeInfo struct {
	RootIdentifier string
	DisplayLabel   string
	FilesystemType string
	TotalSizeMB    uint64
}

// FileDetails describes a file as reported by the file info operation
type FileDetails struct {
	Path     string
	Size     int64
	ModTime  time.Time
	MimeType string
	Charset  string // Empty when the content is not text
}

// VolumePlatform is the OS capability used to enumerate storage roots.
// Implementations exist per target OS; see the volume package.
type VolumePlatform interface {
	// Roots lists OS-visible filesystem roots (drives or mount points)
	Roots() ([]string, error)

	// Label returns a human-readable display name for root
	Label(root string) string

	// FSType returns the filesystem type of root or an error if the OS query fails
	FSType(root string) (string, error)

	// TotalBytes returns the total capacity of root in bytes
	TotalBytes(root string) (uint64, error)
}
