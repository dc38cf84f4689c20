package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/tiny/internal/engine/buffer"
)

// DefaultPerm is the mode of files created by Save.
const DefaultPerm fs.FileMode = 0o644

// Content is a file split into rows.
type Content struct {
	Lines           []string
	LineEnding      buffer.LineEnding
	TrailingNewline bool

	// Exists is false when the file did not exist; the document is new.
	Exists bool
}

// Options returns the buffer options that reproduce the file's layout.
func (c *Content) Options() []buffer.Option {
	return []buffer.Option{
		buffer.WithLineEnding(c.LineEnding),
		buffer.WithTrailingNewline(c.TrailingNewline),
	}
}

// Load reads the file at path. A missing file is not an error: it loads
// as an empty new document.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Content{LineEnding: buffer.LineEndingLF, TrailingNewline: true}, nil
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			err = ErrIsDirectory
		}
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	c := Parse(data)
	c.Exists = true
	return c, nil
}

// Parse splits data into rows using its dominant line ending.
func Parse(data []byte) *Content {
	text := string(data)
	le := buffer.DetectLineEnding(text)
	c := &Content{LineEnding: le, TrailingNewline: true}
	if text == "" {
		return c
	}

	seq := le.Sequence()
	lines := strings.Split(text, seq)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		c.TrailingNewline = false
	}
	c.Lines = lines
	return c
}

// Save atomically replaces the file at path with data and returns the
// number of bytes written. An existing file keeps its permissions; a
// symbolic link is followed so the link itself survives.
func Save(path string, data []byte) (int, error) {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	perm := DefaultPerm
	info, err := os.Stat(target)
	switch {
	case err == nil:
		if info.IsDir() {
			return 0, &FileError{Op: "save", Path: path, Err: ErrIsDirectory}
		}
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return 0, &FileError{Op: "stat", Path: path, Err: err}
	}

	dir, base := filepath.Split(target)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	n, err := writeSynced(tmp, data, perm)
	if err != nil {
		_ = os.Remove(tmp)
		return 0, &FileError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return 0, &FileError{Op: "rename", Path: path, Err: err}
	}
	return n, nil
}

func writeSynced(name string, data []byte, perm fs.FileMode) (int, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return 0, err
	}
	n, err := f.Write(data)
	if err == nil {
		// The umask may have narrowed the mode given to OpenFile.
		err = f.Chmod(perm)
	}
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return n, err
}
