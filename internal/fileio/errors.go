package fileio

import (
	"errors"
	"fmt"
)

var (
	// ErrIsDirectory indicates the path names a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher closed")
)

// FileError records a failed file operation.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// IsFileError returns true if err is or wraps a FileError.
func IsFileError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe)
}
