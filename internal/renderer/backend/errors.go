package backend

import (
	"errors"
	"fmt"
)

// Sentinel errors for backend operations.
var (
	// ErrNotTerminal indicates the file is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrNotInitialized indicates the backend was used before Init.
	ErrNotInitialized = errors.New("backend not initialized")

	// ErrClosed indicates the input stream has ended.
	ErrClosed = errors.New("input closed")

	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown backend")
)

// TerminalError reports a failure to change the terminal mode or to write
// to the terminal. It is fatal for the editor run.
type TerminalError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TerminalError) Unwrap() error {
	return e.Err
}

// IOError reports a failure while polling or reading input.
type IOError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsTerminalError reports whether err contains a TerminalError.
func IsTerminalError(err error) bool {
	var te *TerminalError
	return errors.As(err, &te)
}

// IsIOError reports whether err contains an IOError.
func IsIOError(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}
