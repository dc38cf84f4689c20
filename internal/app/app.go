// Package app wires the editor together and runs its main loop.
//
// An Editor owns one document, one terminal backend and the components
// between them. Run acquires the terminal, loops over
//
//	size -> resize viewport -> scroll -> render -> present -> poll -> dispatch
//
// and releases the terminal exactly once on the way out, whether the loop
// ended by quitting, by an I/O error, by a signal or by a panic.
package app

import (
	"sync/atomic"

	"github.com/dshills/tiny/internal/config"
	"github.com/dshills/tiny/internal/dispatcher"
	"github.com/dshills/tiny/internal/engine/buffer"
	"github.com/dshills/tiny/internal/fileio"
	"github.com/dshills/tiny/internal/logging"
	"github.com/dshills/tiny/internal/renderer"
	"github.com/dshills/tiny/internal/renderer/backend"
	"github.com/dshills/tiny/internal/renderer/statusline"
	"github.com/dshills/tiny/internal/renderer/viewport"
)

// HelpMessage is shown in the message bar at startup.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Editor is a single-document terminal editor.
type Editor struct {
	cfg     *config.Config
	log     *logging.Logger
	backend backend.Backend

	buf        *buffer.Buffer
	view       *viewport.Viewport
	msg        *statusline.Message
	renderer   *renderer.Renderer
	dispatcher *dispatcher.Dispatcher
	watcher    *fileio.Watcher

	running atomic.Bool
}

// Options configures an Editor.
type Options struct {
	// Path is the file to edit. It need not exist.
	Path string

	// Config holds the settings. Nil uses config.Default().
	Config *config.Config

	// Backend draws the screen and reads keys. Nil selects the backend
	// named by the terminal.backend setting on stdin and stdout.
	Backend backend.Backend

	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger

	// Saver writes the document. Nil uses fileio.Save.
	Saver dispatcher.Saver
}

// New creates an editor for opts.Path.
func New(opts Options) (*Editor, error) {
	return newBootstrapper(opts).bootstrap()
}

// Buffer returns the document buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Dispatcher returns the key dispatcher.
func (e *Editor) Dispatcher() *dispatcher.Dispatcher {
	return e.dispatcher
}

// Viewport returns the viewport.
func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// Message returns the status message.
func (e *Editor) Message() *statusline.Message {
	return e.msg
}

// Config returns the configuration in use.
func (e *Editor) Config() *config.Config {
	return e.cfg
}

// IsRunning returns true while Run is executing.
func (e *Editor) IsRunning() bool {
	return e.running.Load()
}

// Close releases resources held by an editor that was never run. Run
// releases them itself.
func (e *Editor) Close() error {
	if e.running.Load() {
		return ErrAlreadyRunning
	}
	e.closeWatcher()
	return nil
}
