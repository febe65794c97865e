// Package archive compresses a single file into a new single-entry zip archive
package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/internal/util"
	"github.com/kchaow/filemanager/pathcheck"
)

// Ext is appended to the archive base name
const Ext = ".zip"

// Path returns where Archive places the archive for filePath
func Path(filePath, baseName string) string {
	return filepath.Join(filepath.Dir(filePath), baseName+Ext)
}

// Archive writes the content of filePath as the only entry of a new archive
// named baseName+".zip" in the same directory. The entry is named after the
// source base name and compressed with Deflate.
//
// An existing archive is never overwritten. When writing fails after the
// archive was created the partial file is removed.
func Archive(filePath, baseName string) (archivePath string, err error) {
	logger := util.GetLogger("Archive")

	if baseName == "" || !pathcheck.IsValidFileName(baseName+Ext) {
		return "", fmt.Errorf("archive name %q: %w", baseName, filemanager.ErrValidation)
	}

	src, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", filePath, filemanager.OSError(err))
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", filePath, filemanager.OSError(err))
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory: %w", filePath, filemanager.ErrValidation)
	}

	archivePath = Path(filePath, baseName)
	dst, err := os.OpenFile(archivePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", archivePath, filemanager.OSError(err))
	}
	defer func() {
		if err != nil {
			dst.Close()
			if rmErr := os.Remove(archivePath); rmErr != nil {
				logger.Warn().Err(rmErr).Str("archive", archivePath).Msg("Failed to remove partial archive")
			}
		}
	}()

	if err = writeEntry(dst, src, info); err != nil {
		return "", fmt.Errorf("write %s: %w", archivePath, err)
	}
	if err = dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", archivePath, filemanager.OSError(err))
	}

	logger.Info().Str("source", filePath).Str("archive", archivePath).Int64("bytes", info.Size()).Msg("Archived file")
	return archivePath, nil
}

func writeEntry(dst io.Writer, src io.Reader, info os.FileInfo) error {
	zw := zip.NewWriter(dst)

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return errors.Join(filemanager.ErrIO, err)
	}
	header.Name = info.Name()
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return errors.Join(filemanager.ErrIO, err)
	}
	if _, err := io.Copy(entry, src); err != nil {
		return filemanager.OSError(err)
	}
	if err := zw.Close(); err != nil {
		return filemanager.OSError(err)
	}
	return nil
}
