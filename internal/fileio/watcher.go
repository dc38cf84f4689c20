package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op describes what happened to the watched file.
type Op uint8

const (
	// OpModified means the file content changed.
	OpModified Op = iota + 1
	// OpRemoved means the file no longer exists.
	OpRemoved
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpModified:
		return "modified"
	case OpRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is a raw notification about the watched file.
type Change struct {
	Path string
	At   time.Time
}

// stamp identifies one version of the file on disk.
type stamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statStamp(path string) (stamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stamp{}, nil
		}
		return stamp{}, err
	}
	return stamp{exists: true, size: info.Size(), modTime: info.ModTime()}, nil
}

// Watcher watches one file for modifications by other programs.
//
// The file's directory is watched rather than the file, because Save
// replaces the file by renaming a new one over it. The event goroutine only
// forwards changes; Check compares the file against the version recorded
// by the last Record and must be called from the goroutine that saves.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string

	changes chan Change
	errors  chan error

	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup

	known stamp
}

// NewWatcher starts watching the file at path, which need not exist yet.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &FileError{Op: "watch", Path: path, Err: err}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &FileError{Op: "watch", Path: path, Err: err}
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, &FileError{Op: "watch", Path: path, Err: err}
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		changes: make(chan Change, 16),
		errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	if err := w.Record(); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes returns raw change notifications. They include the editor's own
// saves; pass each one to Check.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Errors returns errors reported by the underlying watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Record remembers the file as it is now, typically right after loading or
// saving it.
func (w *Watcher) Record() error {
	s, err := statStamp(w.path)
	if err != nil {
		return &FileError{Op: "stat", Path: w.path, Err: err}
	}
	w.known = s
	return nil
}

// Check reports whether the file differs from the recorded version and,
// if so, how. A difference is reported once: the new version becomes the
// recorded one.
func (w *Watcher) Check() (Op, bool) {
	s, err := statStamp(w.path)
	if err != nil || s == w.known {
		return 0, false
	}
	w.known = s
	if !s.exists {
		return OpRemoved, true
	}
	return OpModified, true
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !relevant(ev.Op) {
				continue
			}
			select {
			case w.changes <- Change{Path: w.path, At: time.Now()}:
			default:
				// A change is already pending; Check will see the latest state.
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}
