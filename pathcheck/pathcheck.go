// Package pathcheck validates user-supplied directories and file names before
// any filesystem call is made with them.
package pathcheck

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/kchaow/filemanager"
)

// MaxFileNameLen is the longest accepted file name, in characters
const MaxFileNameLen = 255

// illegalChars are rejected anywhere in a file name in addition to control
// characters 0x00-0x1F
const illegalChars = `<>:"/\|?*`

// IsValidDirectory reports whether path denotes an existing directory
func IsValidDirectory(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsValidFileName reports whether name is 1-255 characters long and contains
// none of < > : " / \ | ? * or a control character 0x00-0x1F.
func IsValidFileName(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > MaxFileNameLen {
		return false
	}
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(illegalChars, r) {
			return false
		}
	}
	return true
}

// ResolveDir maps the directory prompt input onto a directory path.
// The token "-" selects defaultDir; anything else is used as typed.
func ResolveDir(input, defaultDir, token string) string {
	input = strings.TrimSpace(input)
	if input == token {
		return defaultDir
	}
	return input
}

// Resolve validates dir and name and joins them into a FileTarget. The name
// is brought to Unicode NFC first so composed and decomposed input resolve to
// the same file. No existence check is made on the file itself.
func Resolve(dir, name string) (filemanager.FileTarget, error) {
	name = norm.NFC.String(name)
	if !IsValidDirectory(dir) {
		return filemanager.FileTarget{}, fmt.Errorf("directory %q: %w", dir, filemanager.ErrValidation)
	}
	if !IsValidFileName(name) {
		return filemanager.FileTarget{}, fmt.Errorf("file name %q: %w", name, filemanager.ErrValidation)
	}
	return filemanager.FileTarget{Dir: dir, Name: name}, nil
}

// Exists reports whether any filesystem entry exists at path
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
