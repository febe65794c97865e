package filemanager

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// Sentinel errors shared by all operations. Wrap them with fmt.Errorf("...: %w")
// and test with errors.Is.
var (
	// ErrValidation is returned for an invalid name, path or extension.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when the target must exist but does not.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when the target must not exist but does.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidFormat is returned for malformed JSON or XML content.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrIO is returned for any underlying read, write, create or delete failure.
	ErrIO = errors.New("i/o failure")
)

// ErrorKind names the category of an error for reporting
type ErrorKind string

const (
	KindNone          ErrorKind = ""
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindAlreadyExists ErrorKind = "already_exists"
	KindInvalidFormat ErrorKind = "invalid_format"
	KindIO            ErrorKind = "io"
)

// Kind maps err onto the error taxonomy. Errors outside the taxonomy are
// treated as I/O failures.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrInvalidFormat):
		return KindInvalidFormat
	default:
		return KindIO
	}
}

// OSError classifies an error returned by the os package into the taxonomy.
// The original error stays in the chain.
func OSError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.Join(ErrNotFound, err)
	case errors.Is(err, fs.ErrExist):
		return errors.Join(ErrAlreadyExists, err)
	default:
		return errors.Join(ErrIO, err)
	}
}

func lowerExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
