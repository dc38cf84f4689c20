package dispatcher

import (
	"fmt"

	"github.com/dshills/tiny/internal/engine/buffer"
	"github.com/dshills/tiny/internal/fileio"
	"github.com/dshills/tiny/internal/input/key"
	"github.com/dshills/tiny/internal/logging"
	"github.com/dshills/tiny/internal/renderer/statusline"
	"github.com/dshills/tiny/internal/renderer/viewport"
)

// DefaultQuitTimes is the number of extra quit presses needed to discard
// unsaved changes.
const DefaultQuitTimes = 2

// State is the dispatcher's input state.
type State uint8

const (
	// StateRunning is normal editing.
	StateRunning State = iota
	// StateConfirmQuit follows a quit request on a dirty buffer.
	StateConfirmQuit
	// StatePrompt routes keys to the find prompt.
	StatePrompt
	// StateTerminated means the editor should exit.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateConfirmQuit:
		return "confirm-quit"
	case StatePrompt:
		return "prompt"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Saver writes a document to disk and returns the number of bytes written.
type Saver interface {
	Save(path string, data []byte) (int, error)
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(path string, data []byte) (int, error)

// Save implements Saver.
func (f SaverFunc) Save(path string, data []byte) (int, error) {
	return f(path, data)
}

// PostDispatchHook is called after every dispatched event.
type PostDispatchHook func(res Result)

// Options configures a Dispatcher.
type Options struct {
	// QuitTimes is the number of extra quit presses required when the
	// buffer is dirty. Negative uses DefaultQuitTimes.
	QuitTimes int

	// Keymap overrides the default bindings. An empty action unbinds.
	Keymap map[string]string

	// Saver writes the buffer. Nil uses fileio.Save.
	Saver Saver

	// Logger receives action logs. Nil discards them.
	Logger *logging.Logger
}

// Dispatcher routes key events to editor actions.
type Dispatcher struct {
	buf  *buffer.Buffer
	view *viewport.Viewport
	msg  *statusline.Message

	keymap   *Keymap
	registry *Registry
	saver    Saver
	log      *logging.Logger

	state     State
	quitTimes int
	quitLeft  int
	prompt    *findPrompt

	// Process-local row register for cut and paste.
	register    string
	hasRegister bool

	postHooks []PostDispatchHook
}

// New creates a dispatcher operating on buf and view and reporting to msg.
// It fails if a keymap override names an unknown action or cannot be
// parsed.
func New(buf *buffer.Buffer, view *viewport.Viewport, msg *statusline.Message, opts Options) (*Dispatcher, error) {
	if opts.QuitTimes < 0 {
		opts.QuitTimes = DefaultQuitTimes
	}
	if opts.Saver == nil {
		opts.Saver = SaverFunc(fileio.Save)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NullLogger()
	}

	d := &Dispatcher{
		buf:       buf,
		view:      view,
		msg:       msg,
		keymap:    DefaultKeymap(),
		registry:  NewRegistry(),
		saver:     opts.Saver,
		log:       opts.Logger.WithComponent("dispatcher"),
		quitTimes: opts.QuitTimes,
		quitLeft:  opts.QuitTimes,
	}
	registerBuiltins(d.registry)

	for spec, action := range opts.Keymap {
		if action != "" && !d.registry.Has(action) {
			return nil, &BindingError{Spec: spec, Action: action, Err: ErrUnknownAction}
		}
		if err := d.keymap.Bind(spec, action); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// State returns the current input state.
func (d *Dispatcher) State() State {
	return d.state
}

// Terminated reports whether the editor should exit.
func (d *Dispatcher) Terminated() bool {
	return d.state == StateTerminated
}

// Keymap returns the active keymap.
func (d *Dispatcher) Keymap() *Keymap {
	return d.keymap
}

// Registry returns the action registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Buffer returns the buffer being edited.
func (d *Dispatcher) Buffer() *buffer.Buffer {
	return d.buf
}

// AddPostHook registers a hook run after every dispatch.
func (d *Dispatcher) AddPostHook(h PostDispatchHook) {
	d.postHooks = append(d.postHooks, h)
}

// Current returns the text for the message bar. While the find prompt is
// open it shows the prompt, which does not expire.
func (d *Dispatcher) Current() (string, statusline.MessageType) {
	if d.state == StatePrompt && d.prompt != nil {
		return d.prompt.text(), statusline.MessageInfo
	}
	return d.msg.Current()
}

// Dispatch handles one key event.
func (d *Dispatcher) Dispatch(ev key.Event) Result {
	var res Result
	switch d.state {
	case StateTerminated:
		return NoOp()
	case StatePrompt:
		res = d.prompt.handle(d, ev)
		res.Action = ActionFind
	default:
		res = d.dispatchAction(ev)
	}

	if res.Err != nil {
		d.log.Warn("%s failed: %v", res.Action, res.Err)
	}
	for _, h := range d.postHooks {
		h(res)
	}
	return res
}

func (d *Dispatcher) dispatchAction(ev key.Event) Result {
	action, ok := d.keymap.Lookup(ev)
	if !ok && ev.IsChar() {
		action, ok = ActionInsertChar, true
	}
	if action != ActionQuit {
		d.resetQuit()
	}
	if !ok {
		d.msg.SetTyped(statusline.MessageWarning, "Unknown key: %s", ev.String())
		return NoOp()
	}

	h := d.registry.Get(action)
	if h == nil {
		err := fmt.Errorf("%w: %s", ErrUnknownAction, action)
		return Result{Action: action, Status: StatusError, Err: err}
	}

	d.log.Debug("action %s (%s)", action, ev.String())
	res := h(d, ev)
	res.Action = action
	return res
}

func (d *Dispatcher) resetQuit() {
	d.quitLeft = d.quitTimes
	if d.state == StateConfirmQuit {
		d.state = StateRunning
	}
}
