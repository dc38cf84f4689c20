// Package backend provides terminal backend abstraction for the renderer.
//
// A Backend owns the terminal for the duration of an editor run: it
// switches the terminal into raw mode, reports the screen size, delivers
// decoded keys with a bounded wait and presents complete frames.
package backend

import (
	"fmt"
	"os"
	"time"

	"github.com/dshills/tiny/internal/input/key"
	"github.com/dshills/tiny/internal/renderer/core"
)

// Mode is the terminal input mode.
type Mode int

const (
	// ModeNormal is the cooked, line-buffered mode the shell expects.
	ModeNormal Mode = iota
	// ModeRaw delivers every keystroke immediately without echo.
	ModeRaw
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init acquires the terminal and enters raw mode.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal. Calling it more than once, or
	// without a successful Init, is a no-op.
	Shutdown() error

	// Size returns the terminal dimensions in cells.
	Size() (cols, rows int, err error)

	// PollKey waits up to timeout for one complete key. It returns
	// ok == false when the timeout elapses first.
	PollKey(timeout time.Duration) (ev key.Event, ok bool, err error)

	// Present draws a frame with a single flush.
	Present(f *core.Frame) error

	// Mode reports the current terminal mode.
	Mode() Mode
}

// Names of the available backends.
const (
	NameANSI  = "ansi"
	NameTcell = "tcell"
)

// New creates the backend called name on the given terminal files.
func New(name string, in, out *os.File) (Backend, error) {
	switch name {
	case "", NameANSI:
		return NewTerminal(in, out), nil
	case NameTcell:
		return NewTcellBackend()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
