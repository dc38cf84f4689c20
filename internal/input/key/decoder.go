package key

import (
	"errors"
	"time"
	"unicode/utf8"
)

// ErrTimeout is returned by a ByteSource when no byte arrived in time.
var ErrTimeout = errors.New("read timeout")

// DefaultSeqTimeout bounds the wait between bytes of one escape sequence.
// Terminals emit a whole sequence in a single write, so a short bound is
// enough to tell a lone Escape press from the start of a sequence.
const DefaultSeqTimeout = 10 * time.Millisecond

// maxSeqLen caps the number of parameter bytes accepted in a CSI sequence.
const maxSeqLen = 32

// ByteSource delivers raw input bytes one at a time.
type ByteSource interface {
	// ReadByteTimeout waits at most timeout for a byte. It returns
	// ErrTimeout when the wait elapses with nothing to read.
	ReadByteTimeout(timeout time.Duration) (byte, error)
}

// Decoder turns raw terminal bytes into key events.
type Decoder struct {
	src        ByteSource
	seqTimeout time.Duration

	// A byte read past the end of a malformed sequence, returned by the
	// next read.
	pending    byte
	hasPending bool
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithSeqTimeout sets the inter-byte timeout used inside escape sequences.
func WithSeqTimeout(d time.Duration) DecoderOption {
	return func(dec *Decoder) {
		if d > 0 {
			dec.seqTimeout = d
		}
	}
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src ByteSource, opts ...DecoderOption) *Decoder {
	d := &Decoder{src: src, seqTimeout: DefaultSeqTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// PollKey waits at most timeout for one complete key press.
//
// It returns ok == false with a nil error when the timeout elapses, and also
// when an escape sequence was cut off mid-way; the consumed bytes of such a
// partial sequence are dropped rather than reported as separate keys.
func (d *Decoder) PollKey(timeout time.Duration) (Event, bool, error) {
	b, err := d.read(timeout)
	if errors.Is(err, ErrTimeout) {
		return Event{}, false, nil
	}
	if err != nil {
		return Event{}, false, err
	}

	switch {
	case b == 0x1b:
		return d.readEscape()
	case b >= utf8.RuneSelf:
		return d.readUTF8(b)
	default:
		return ctrlModify(b), true, nil
	}
}

func (d *Decoder) read(timeout time.Duration) (byte, error) {
	if d.hasPending {
		d.hasPending = false
		return d.pending, nil
	}
	return d.src.ReadByteTimeout(timeout)
}

// unread keeps b for the next read.
func (d *Decoder) unread(b byte) {
	d.pending, d.hasPending = b, true
}

// next reads one byte inside a sequence. ok is false on timeout.
func (d *Decoder) next() (byte, bool, error) {
	b, err := d.read(d.seqTimeout)
	if errors.Is(err, ErrTimeout) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

func (d *Decoder) readEscape() (Event, bool, error) {
	b, ok, err := d.next()
	if err != nil {
		return Event{}, false, err
	}
	if !ok {
		// Nothing follows. Taken as a lone Escape.
		return NewSpecialEvent(KeyEscape, ModNone), true, nil
	}

	switch b {
	case '[':
		return d.readCSI()
	case 'O':
		return d.readSS3()
	case 0x1b:
		return d.readAltEscape()
	}

	if b >= utf8.RuneSelf {
		ev, ok, err := d.readUTF8(b)
		if ok && ev.Key == KeyRune {
			ev.Modifiers = ev.Modifiers.With(ModAlt)
		}
		return ev, ok, err
	}
	ev := ctrlModify(b)
	ev.Modifiers = ev.Modifiers.With(ModAlt)
	return ev, true, nil
}

// readAltEscape decodes what follows "ESC ESC". Some terminals send Alt
// with a special key as ESC followed by the key's own sequence.
func (d *Decoder) readAltEscape() (Event, bool, error) {
	b, ok, err := d.next()
	if err != nil {
		return Event{}, false, err
	}
	if !ok {
		return NewSpecialEvent(KeyEscape, ModAlt), true, nil
	}

	var ev Event
	switch b {
	case '[':
		ev, ok, err = d.readCSI()
	case 'O':
		ev, ok, err = d.readSS3()
	default:
		d.unread(b)
		return NewSpecialEvent(KeyEscape, ModAlt), true, nil
	}
	if ok && ev.Key != KeyUnknown {
		ev.Modifiers = ev.Modifiers.With(ModAlt)
	}
	return ev, ok, err
}

// readCSI decodes the remainder of an "ESC [" sequence: numeric parameters
// separated by ';' followed by a single final byte.
func (d *Decoder) readCSI() (Event, bool, error) {
	nums := make([]int, 0, 2)
	for n := 0; ; n++ {
		b, ok, err := d.next()
		if err != nil {
			return Event{}, false, err
		}
		if !ok {
			return Event{}, false, nil
		}

		switch {
		case b == 0x1b:
			// A new sequence started before this one ended.
			d.unread(b)
			return NewSpecialEvent(KeyUnknown, ModNone), true, nil
		case b == ';':
			if len(nums) == 0 {
				nums = append(nums, 0)
			}
			nums = append(nums, 0)
		case '0' <= b && b <= '9':
			if len(nums) == 0 {
				nums = append(nums, 0)
			}
			cur := len(nums) - 1
			nums[cur] = nums[cur]*10 + int(b-'0')
		case b >= 0x40 && b <= 0x7e:
			return parseCSI(nums, b), true, nil
		default:
			// Private markers and intermediates are accepted but ignored.
		}

		if n >= maxSeqLen {
			return d.drainCSI()
		}
	}
}

// drainCSI consumes an over-long CSI sequence up to its final byte.
func (d *Decoder) drainCSI() (Event, bool, error) {
	for {
		b, ok, err := d.next()
		if err != nil {
			return Event{}, false, err
		}
		if !ok {
			return Event{}, false, nil
		}
		if b == 0x1b {
			d.unread(b)
			return NewSpecialEvent(KeyUnknown, ModNone), true, nil
		}
		if b >= 0x40 && b <= 0x7e {
			return NewSpecialEvent(KeyUnknown, ModNone), true, nil
		}
	}
}

// readSS3 decodes "ESC O x" sequences sent in application cursor mode.
func (d *Decoder) readSS3() (Event, bool, error) {
	b, ok, err := d.next()
	if err != nil {
		return Event{}, false, err
	}
	if !ok {
		// Nothing follows after 'O'. Taken as Alt+Shift+O.
		return NewRuneEvent('O', ModAlt), true, nil
	}
	if b == 0x1b {
		d.unread(b)
		return NewSpecialEvent(KeyUnknown, ModNone), true, nil
	}
	if k, found := ss3Seq[b]; found {
		return NewSpecialEvent(k, ModNone), true, nil
	}
	return NewSpecialEvent(KeyUnknown, ModNone), true, nil
}

// readUTF8 collects the continuation bytes of a multi-byte rune. A byte that
// is not a continuation byte ends the rune as unknown and is decoded by the
// next poll.
func (d *Decoder) readUTF8(lead byte) (Event, bool, error) {
	var need int
	switch {
	case lead&0xe0 == 0xc0:
		need = 1
	case lead&0xf0 == 0xe0:
		need = 2
	case lead&0xf8 == 0xf0:
		need = 3
	default:
		return NewSpecialEvent(KeyUnknown, ModNone), true, nil
	}

	buf := make([]byte, 1, 4)
	buf[0] = lead
	for range need {
		b, ok, err := d.next()
		if err != nil {
			return Event{}, false, err
		}
		if !ok {
			return Event{}, false, nil
		}
		if b&0xc0 != 0x80 {
			d.unread(b)
			return NewSpecialEvent(KeyUnknown, ModNone), true, nil
		}
		buf = append(buf, b)
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return NewSpecialEvent(KeyUnknown, ModNone), true, nil
	}
	return NewRuneEvent(r, ModNone), true, nil
}

// ctrlModify maps a single ASCII byte to its key event. Bytes below 0x20
// are Ctrl-modified letters except for the ones with dedicated keys.
func ctrlModify(b byte) Event {
	switch b {
	case '\r':
		return NewSpecialEvent(KeyEnter, ModNone)
	case '\t':
		return NewSpecialEvent(KeyTab, ModNone)
	case 0x7f:
		return NewSpecialEvent(KeyBackspace, ModNone)
	case 0x00:
		return NewRuneEvent(' ', ModCtrl)
	}
	if b >= 0x01 && b <= 0x1a {
		return NewRuneEvent(rune('a'+b-1), ModCtrl)
	}
	if b >= 0x1c && b <= 0x1f {
		return NewRuneEvent(rune(b+0x40), ModCtrl)
	}
	return NewRuneEvent(rune(b), ModNone)
}

// ss3Seq maps the byte after "ESC O" to a key.
var ss3Seq = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
}

// csiSeqByLast maps the final byte of a parameterless CSI sequence.
// When modified, two parameters are present, the first being 1:
// "\x1b[1;5A" is Ctrl-Up.
var csiSeqByLast = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
}

// csiSeqTilde maps the first parameter of a "\x1b[n~" sequence.
var csiSeqTilde = map[int]Key{
	1: KeyHome, 7: KeyHome,
	2: KeyInsert,
	3: KeyDelete,
	4: KeyEnd, 8: KeyEnd,
	5: KeyPageUp, 6: KeyPageDown,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4,
	15: KeyF5, 17: KeyF6, 18: KeyF7, 19: KeyF8,
	20: KeyF9, 21: KeyF10, 23: KeyF11, 24: KeyF12,
}

func parseCSI(nums []int, last byte) Event {
	if k, ok := csiSeqByLast[last]; ok {
		switch {
		case len(nums) == 0:
			return NewSpecialEvent(k, ModNone)
		case len(nums) == 2 && nums[0] == 1:
			if mod, ok := xtermModifier(nums[1]); ok {
				return NewSpecialEvent(k, mod)
			}
		}
		return NewSpecialEvent(KeyUnknown, ModNone)
	}

	if last == '~' && (len(nums) == 1 || len(nums) == 2) {
		if k, ok := csiSeqTilde[nums[0]]; ok {
			if len(nums) == 1 {
				return NewSpecialEvent(k, ModNone)
			}
			if mod, ok := xtermModifier(nums[1]); ok {
				return NewSpecialEvent(k, mod)
			}
		}
	}
	return NewSpecialEvent(KeyUnknown, ModNone)
}
