package backend

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/dshills/tiny/internal/input/key"
	"github.com/dshills/tiny/internal/renderer/core"
)

// Terminal implements Backend with plain ANSI escape sequences: raw mode
// through golang.org/x/term, input through a key.Decoder and output as one
// write per frame.
type Terminal struct {
	mu sync.Mutex

	inFd  int
	outFd int
	out   io.Writer

	raw     *RawMode
	decoder *key.Decoder
	buf     bytes.Buffer

	initialized bool
	getSize     func(fd int) (int, int, error)
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithDecoderOptions passes options to the key decoder.
func WithDecoderOptions(opts ...key.DecoderOption) TerminalOption {
	return func(t *Terminal) {
		t.decoder = key.NewDecoder(NewFileSource(t.inFd), opts...)
	}
}

// NewTerminal creates an ANSI terminal backend reading in and writing out.
func NewTerminal(in, out *os.File, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		inFd:    int(in.Fd()),
		outFd:   int(out.Fd()),
		out:     out,
		getSize: term.GetSize,
	}
	t.raw = NewRawMode(t.inFd)
	t.decoder = key.NewDecoder(NewFileSource(t.inFd))
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init enters raw mode.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.raw.Enable(); err != nil {
		return err
	}
	t.initialized = true
	return nil
}

// Shutdown clears the screen and restores the terminal mode.
func (t *Terminal) Shutdown() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return t.raw.Disable()
	}
	t.initialized = false

	var werr error
	if _, err := io.WriteString(t.out, seqResetStyle+seqClearScreen+seqCursorHome+seqShowCursor); err != nil {
		werr = &TerminalError{Op: "clear screen", Err: err}
	}
	if err := t.raw.Disable(); err != nil {
		return err
	}
	return werr
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := t.getSize(t.outFd)
	if err != nil {
		return 0, 0, &TerminalError{Op: "get window size", Err: err}
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, &TerminalError{Op: "get window size", Err: ErrNotTerminal}
	}
	return cols, rows, nil
}

// PollKey waits up to timeout for one key.
func (t *Terminal) PollKey(timeout time.Duration) (key.Event, bool, error) {
	ev, ok, err := t.decoder.PollKey(timeout)
	if err != nil {
		return key.Event{}, false, &IOError{Op: "read", Err: err}
	}
	return ev, ok, nil
}

// Present encodes f and writes it with a single write call.
func (t *Terminal) Present(f *core.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return &TerminalError{Op: "present", Err: ErrNotInitialized}
	}

	t.buf.Reset()
	EncodeFrame(&t.buf, f)
	if _, err := t.out.Write(t.buf.Bytes()); err != nil {
		return &TerminalError{Op: "write frame", Err: err}
	}
	return nil
}

// Mode reports the terminal mode.
func (t *Terminal) Mode() Mode {
	return t.raw.Mode()
}
