// Package fileops implements the single-file operations offered by the
// console: create, read, write, append, delete and inspect.
//
// Every handle is opened and closed inside the call that needs it. Errors are
// classified with the filemanager sentinel errors.
package fileops

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/internal/util"
	"github.com/kchaow/filemanager/pathcheck"
)

// FilePerm is the mode given to files created by the console
const FilePerm = 0o644

// maxLineSize bounds a single printed line
const maxLineSize = 1024 * 1024

// Create makes a new empty file at target. It fails with ErrAlreadyExists
// without touching the existing entry when something is already there.
func Create(target filemanager.FileTarget) error {
	logger := util.GetLogger("FileOps.Create")

	if !pathcheck.IsValidFileName(target.Name) {
		return fmt.Errorf("file name %q: %w", target.Name, filemanager.ErrValidation)
	}
	path := target.Path()
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Failed to create file")
		return fmt.Errorf("create %s: %w", path, filemanager.OSError(err))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("create %s: %w", path, filemanager.OSError(err))
	}
	logger.Info().Str("path", path).Msg("Created file")
	return nil
}

// Read writes the file at path to w line by line. Line terminators are
// normalized to "\n" and invalid UTF-8 is replaced.
func Read(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, filemanager.OSError(err))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if _, err := fmt.Fprintln(w, strings.ToValidUTF8(line, "�")); err != nil {
			return fmt.Errorf("print %s: %w", path, filemanager.OSError(err))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, filemanager.OSError(err))
	}
	return nil
}

// Write replaces the entire content of the existing file at path
func Write(path, content string) error {
	return writeFlags(path, content, os.O_WRONLY|os.O_TRUNC)
}

// Append adds content to the end of the existing file at path
func Append(path, content string) error {
	return writeFlags(path, content, os.O_WRONLY|os.O_APPEND)
}

func writeFlags(path, content string, flag int) error {
	logger := util.GetLogger("FileOps.Write")

	f, err := os.OpenFile(path, flag, FilePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, filemanager.OSError(err))
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		logger.Error().Err(err).Str("path", path).Msg("Failed to write file")
		return fmt.Errorf("write %s: %w", path, filemanager.OSError(err))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, filemanager.OSError(err))
	}
	logger.Debug().Str("path", path).Int("bytes", len(content)).Bool("append", flag&os.O_APPEND != 0).Msg("Wrote file")
	return nil
}

// Delete removes the file at path
func Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, filemanager.OSError(err))
	}
	logger := util.GetLogger("FileOps.Delete")
	logger.Info().Str("path", path).Msg("Deleted file")
	return nil
}
