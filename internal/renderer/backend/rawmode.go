package backend

import (
	"sync"

	"golang.org/x/term"
)

// termOps is the slice of golang.org/x/term used by RawMode.
type termOps interface {
	IsTerminal(fd int) bool
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
}

type xterm struct{}

func (xterm) IsTerminal(fd int) bool                  { return term.IsTerminal(fd) }
func (xterm) MakeRaw(fd int) (*term.State, error)     { return term.MakeRaw(fd) }
func (xterm) Restore(fd int, state *term.State) error { return term.Restore(fd, state) }

// RawMode switches a terminal file descriptor between normal and raw mode.
// Each RawMode remembers the state it replaced; there is no process-wide
// terminal state.
type RawMode struct {
	mu    sync.Mutex
	fd    int
	ops   termOps
	saved *term.State
}

// NewRawMode creates a RawMode for fd.
func NewRawMode(fd int) *RawMode {
	return &RawMode{fd: fd, ops: xterm{}}
}

// Enable puts the terminal into raw mode. Enabling twice is a no-op.
func (r *RawMode) Enable() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saved != nil {
		return nil
	}
	if !r.ops.IsTerminal(r.fd) {
		return &TerminalError{Op: "enable raw mode", Err: ErrNotTerminal}
	}
	state, err := r.ops.MakeRaw(r.fd)
	if err != nil {
		return &TerminalError{Op: "enable raw mode", Err: err}
	}
	r.saved = state
	return nil
}

// Disable restores the mode saved by Enable. It is a no-op when raw mode
// is not active.
func (r *RawMode) Disable() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saved == nil {
		return nil
	}
	state := r.saved
	r.saved = nil
	if err := r.ops.Restore(r.fd, state); err != nil {
		return &TerminalError{Op: "restore mode", Err: err}
	}
	return nil
}

// Mode reports whether raw mode is active.
func (r *RawMode) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saved != nil {
		return ModeRaw
	}
	return ModeNormal
}
