// Package codec reads and writes PersonRecord values as JSON and XML files.
//
// JSON files hold an array of records and are appended to; XML files hold a
// single Person document and are overwritten.
package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kchaow/filemanager"
)

// File extensions accepted by each format
const (
	JSONExt = ".json"
	XMLExt  = ".xml"
)

// CheckExt rejects path unless its extension equals ext (case-insensitive).
// It makes no filesystem call.
func CheckExt(path, ext string) error {
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return fmt.Errorf("%s is not a %s file: %w", filepath.Base(path), ext, filemanager.ErrValidation)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, filemanager.OSError(err))
	}
	return data, nil
}

// replaceFile writes data to a temp file next to path and renames it over
// path, so a failed write leaves the previous content in place. A symlink is
// followed and its target replaced.
func replaceFile(path string, data []byte) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, filemanager.OSError(err))
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath) // nolint:errcheck
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, filemanager.OSError(err))
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", path, filemanager.OSError(err))
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, filemanager.OSError(err))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, filemanager.OSError(err))
	}
	committed = true
	return nil
}
