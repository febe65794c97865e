// Package volume enumerates the storage roots visible to the operating system.
//
// Each supported OS registers a filemanager.VolumePlatform at init; an OS
// without one reports no volumes.
package volume

import (
	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/internal/util"
)

const bytesPerMB = 1024 * 1024

// Inspector reports VolumeInfo snapshots through a VolumePlatform
type Inspector struct {
	platform filemanager.VolumePlatform
}

// NewInspector wraps platform. A nil platform lists nothing.
func NewInspector(platform filemanager.VolumePlatform) *Inspector {
	return &Inspector{platform: platform}
}

// NewSystemInspector builds an Inspector for the running OS
func NewSystemInspector() *Inspector {
	platform, err := SystemPlatform()
	if err != nil {
		logger := util.GetLogger("Volume.NewSystemInspector")
		logger.Info().Err(err).Msg("Volume listing unavailable")
	}
	return NewInspector(platform)
}

// List queries every root anew. A root whose filesystem type cannot be read
// has an empty FilesystemType; one whose capacity cannot be read has size 0.
func (i *Inspector) List() []filemanager.VolumeInfo {
	logger := util.GetLogger("Volume.List")
	if i.platform == nil {
		return []filemanager.VolumeInfo{}
	}

	roots, err := i.platform.Roots()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to list roots")
		return []filemanager.VolumeInfo{}
	}

	volumes := make([]filemanager.VolumeInfo, 0, len(roots))
	for _, root := range roots {
		info := filemanager.VolumeInfo{
			RootIdentifier: root,
			DisplayLabel:   i.platform.Label(root),
		}
		if fsType, err := i.platform.FSType(root); err != nil {
			logger.Debug().Err(err).Str("root", root).Msg("Failed to read filesystem type")
		} else {
			info.FilesystemType = fsType
		}
		if total, err := i.platform.TotalBytes(root); err != nil {
			logger.Debug().Err(err).Str("root", root).Msg("Failed to read capacity")
		} else {
			info.TotalSizeMB = total / bytesPerMB
		}
		volumes = append(volumes, info)
	}
	return volumes
}
