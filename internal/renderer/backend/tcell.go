package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tiny/internal/input/key"
	"github.com/dshills/tiny/internal/renderer/core"
)

// TcellBackend implements Backend using tcell.
type TcellBackend struct {
	mu     sync.Mutex
	screen tcell.Screen

	// keys is fed by the event pump goroutine and drained by PollKey.
	keys chan key.Event
	done chan struct{}

	initialized bool
	closeOnce   sync.Once
}

// NewTcellBackend creates a tcell backend on the controlling terminal.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &TerminalError{Op: "open screen", Err: err}
	}
	return NewTcellBackendWithScreen(screen), nil
}

// NewTcellBackendWithScreen wraps an existing screen, such as a
// tcell simulation screen.
func NewTcellBackendWithScreen(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{
		screen: screen,
		keys:   make(chan key.Event, 64),
		done:   make(chan struct{}),
	}
}

// Init initializes the screen and starts the event pump.
func (t *TcellBackend) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return &TerminalError{Op: "enable raw mode", Err: err}
	}
	t.initialized = true
	go t.pump()
	return nil
}

// pump forwards key events until the screen is finalized.
func (t *TcellBackend) pump() {
	defer close(t.keys)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		select {
		case t.keys <- convertKey(kev):
		case <-t.done:
			return
		}
	}
}

// Shutdown finalizes the screen. It is safe to call more than once.
func (t *TcellBackend) Shutdown() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return nil
	}
	t.initialized = false
	t.closeOnce.Do(func() { close(t.done) })
	t.screen.Fini()
	return nil
}

// Size returns the screen size.
func (t *TcellBackend) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return 0, 0, &TerminalError{Op: "get window size", Err: ErrNotInitialized}
	}
	cols, rows := t.screen.Size()
	return cols, rows, nil
}

// PollKey waits up to timeout for a key from the event pump.
func (t *TcellBackend) PollKey(timeout time.Duration) (key.Event, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.keys:
		if !ok {
			return key.Event{}, false, &IOError{Op: "poll", Err: ErrClosed}
		}
		return ev, true, nil
	case <-timer.C:
		return key.Event{}, false, nil
	}
}

// Present copies the frame to the screen and shows it.
func (t *TcellBackend) Present(f *core.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return &TerminalError{Op: "present", Err: ErrNotInitialized}
	}

	for y := 0; y < f.Height; y++ {
		for x, c := range f.Row(y) {
			if c.IsContinuation() {
				continue
			}
			t.screen.SetContent(x, y, c.Rune, nil, convertStyle(c.Style))
		}
	}
	if f.CursorVisible {
		t.screen.ShowCursor(f.CursorCol, f.CursorRow)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

// Mode reports raw while the screen is active.
func (t *TcellBackend) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.initialized {
		return ModeRaw
	}
	return ModeNormal
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}
	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertKey converts a tcell key event to a key.Event.
func convertKey(ev *tcell.EventKey) key.Event {
	mods := convertMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods.HasAlt() {
			return key.NewRuneEvent(r, key.ModAlt)
		}
		return key.NewRuneEvent(r, key.ModNone)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods.Without(key.ModCtrl))
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods.Without(key.ModCtrl))
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods.Without(key.ModCtrl))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods.Without(key.ModCtrl))
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.Ctrl(rune('a' + (k - tcell.KeyCtrlA)))
		}
		if sk, ok := specialKeys[k]; ok {
			return key.NewSpecialEvent(sk, mods)
		}
		return key.NewSpecialEvent(key.KeyUnknown, mods)
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyDelete: key.KeyDelete,
	tcell.KeyInsert: key.KeyInsert,
	tcell.KeyHome:   key.KeyHome,
	tcell.KeyEnd:    key.KeyEnd,
	tcell.KeyPgUp:   key.KeyPageUp,
	tcell.KeyPgDn:   key.KeyPageDown,
	tcell.KeyUp:     key.KeyUp,
	tcell.KeyDown:   key.KeyDown,
	tcell.KeyLeft:   key.KeyLeft,
	tcell.KeyRight:  key.KeyRight,
	tcell.KeyF1:     key.KeyF1,
	tcell.KeyF2:     key.KeyF2,
	tcell.KeyF3:     key.KeyF3,
	tcell.KeyF4:     key.KeyF4,
	tcell.KeyF5:     key.KeyF5,
	tcell.KeyF6:     key.KeyF6,
	tcell.KeyF7:     key.KeyF7,
	tcell.KeyF8:     key.KeyF8,
	tcell.KeyF9:     key.KeyF9,
	tcell.KeyF10:    key.KeyF10,
	tcell.KeyF11:    key.KeyF11,
	tcell.KeyF12:    key.KeyF12,
}

// convertMod converts tcell modifiers to key modifiers. Meta folds into Alt.
func convertMod(m tcell.ModMask) key.Modifier {
	var mod key.Modifier
	if m&tcell.ModShift != 0 {
		mod = mod.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mod = mod.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod = mod.With(key.ModAlt)
	}
	return mod
}
