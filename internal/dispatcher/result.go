package dispatcher

// Status indicates the outcome of an action.
type Status uint8

const (
	// StatusOK indicates successful execution.
	StatusOK Status = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one dispatched event.
type Result struct {
	// Action is the action that ran, or "" for an unbound key.
	Action string
	Status Status
	Err    error
}

// Success returns a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp returns a result for an action that changed nothing.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Failure returns an error result.
func Failure(err error) Result {
	return Result{Status: StatusError, Err: err}
}

// OK returns true if the action succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
