package backend

import (
	"sync"
	"time"

	"github.com/dshills/tiny/internal/input/key"
	"github.com/dshills/tiny/internal/renderer/core"
)

// NullBackend is a scripted backend for testing. Keys are delivered from a
// queue; frames are captured instead of drawn.
type NullBackend struct {
	mu sync.Mutex

	cols, rows int
	mode       Mode
	queue      []key.Event
	frames     []*core.Frame

	// idle counts polls that found the queue empty.
	idle      int
	idleLimit int

	initErr    error
	pollErr    error
	presentErr error
	shutdowns  int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(cols, rows int) *NullBackend {
	return &NullBackend{cols: cols, rows: rows}
}

// Queue appends key events to be returned by PollKey.
func (b *NullBackend) Queue(events ...key.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue = append(b.queue, events...)
}

// QueueSpecs parses and queues key specs such as "<C-s>" or "a".
func (b *NullBackend) QueueSpecs(specs ...string) error {
	events := make([]key.Event, 0, len(specs))
	for _, s := range specs {
		ev, err := key.Parse(s)
		if err != nil {
			return err
		}
		events = append(events, ev)
	}
	b.Queue(events...)
	return nil
}

// SetIdleLimit makes PollKey fail with ErrClosed after n consecutive
// empty polls. Zero disables the limit.
func (b *NullBackend) SetIdleLimit(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.idleLimit = n
}

// FailInit makes Init return err.
func (b *NullBackend) FailInit(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initErr = err
}

// FailPoll makes PollKey return err once the queue is drained.
func (b *NullBackend) FailPoll(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pollErr = err
}

// FailPresent makes Present return err.
func (b *NullBackend) FailPresent(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.presentErr = err
}

// Resize changes the reported size.
func (b *NullBackend) Resize(cols, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cols, b.rows = cols, rows
}

// Init enters the simulated raw mode.
func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initErr != nil {
		return b.initErr
	}
	b.mode = ModeRaw
	return nil
}

// Shutdown leaves the simulated raw mode.
func (b *NullBackend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mode == ModeRaw {
		b.shutdowns++
	}
	b.mode = ModeNormal
	return nil
}

// Size returns the configured size.
func (b *NullBackend) Size() (int, int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cols, b.rows, nil
}

// PollKey returns the next queued key without waiting.
func (b *NullBackend) PollKey(time.Duration) (key.Event, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.queue) > 0 {
		ev := b.queue[0]
		b.queue = b.queue[1:]
		b.idle = 0
		return ev, true, nil
	}
	if b.pollErr != nil {
		return key.Event{}, false, &IOError{Op: "poll", Err: b.pollErr}
	}
	b.idle++
	if b.idleLimit > 0 && b.idle >= b.idleLimit {
		return key.Event{}, false, &IOError{Op: "poll", Err: ErrClosed}
	}
	return key.Event{}, false, nil
}

// Present records a copy of the frame.
func (b *NullBackend) Present(f *core.Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.presentErr != nil {
		return &TerminalError{Op: "write frame", Err: b.presentErr}
	}
	b.frames = append(b.frames, f.Clone())
	return nil
}

// Mode reports the simulated mode.
func (b *NullBackend) Mode() Mode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// Frames returns the presented frames.
func (b *NullBackend) Frames() []*core.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*core.Frame(nil), b.frames...)
}

// LastFrame returns the most recent frame, or nil.
func (b *NullBackend) LastFrame() *core.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}

// Shutdowns returns how many times raw mode was actually released.
func (b *NullBackend) Shutdowns() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdowns
}
