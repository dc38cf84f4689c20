package dispatcher

import (
	"errors"
	"fmt"
)

// Dispatcher errors.
var (
	// ErrUnknownAction indicates a keymap entry names no registered action.
	ErrUnknownAction = errors.New("dispatcher: unknown action")

	// ErrNoFilename indicates a save was requested for an unnamed buffer.
	ErrNoFilename = errors.New("dispatcher: no file name")
)

// BindingError reports a keymap entry that cannot be applied.
type BindingError struct {
	Spec   string
	Action string
	Err    error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("keymap %q -> %q: %v", e.Spec, e.Action, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}
