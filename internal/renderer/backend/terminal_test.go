package backend

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tiny/internal/input/key"
	"github.com/dshills/tiny/internal/renderer/core"
)

type byteScript struct {
	data []byte
	err  error
}

func (s *byteScript) ReadByteTimeout(time.Duration) (byte, error) {
	if len(s.data) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, key.ErrTimeout
	}
	b := s.data[0]
	s.data = s.data[1:]
	return b, nil
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func newTestTerminal(out *bytes.Buffer, src key.ByteSource) (*Terminal, *fakeTerm) {
	ft := &fakeTerm{terminal: true}
	return &Terminal{
		out:     out,
		raw:     &RawMode{ops: ft},
		decoder: key.NewDecoder(src),
		getSize: func(int) (int, int, error) { return 80, 24, nil },
	}, ft
}

func TestTerminalLifecycle(t *testing.T) {
	var out bytes.Buffer
	term, ft := newTestTerminal(&out, &byteScript{})

	require.NoError(t, term.Init())
	assert.Equal(t, ModeRaw, term.Mode())

	require.NoError(t, term.Shutdown())
	assert.Equal(t, ModeNormal, term.Mode())
	assert.Contains(t, out.String(), seqClearScreen)

	out.Reset()
	require.NoError(t, term.Shutdown())
	assert.Empty(t, out.String(), "second shutdown must not write")
	assert.Equal(t, 1, ft.restores)
}

func TestTerminalPresentSingleWrite(t *testing.T) {
	var out bytes.Buffer
	term, _ := newTestTerminal(&out, &byteScript{})
	require.NoError(t, term.Init())

	f := core.NewFrame(3, 2)
	f.SetString(0, 0, "hi", core.DefaultStyle())
	require.NoError(t, term.Present(f))

	assert.True(t, strings.HasPrefix(out.String(), seqHideCursor+seqCursorHome+"hi"))
}

func TestTerminalPresentBeforeInit(t *testing.T) {
	var out bytes.Buffer
	term, _ := newTestTerminal(&out, &byteScript{})

	err := term.Present(core.NewFrame(1, 1))
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestTerminalPresentWriteFailure(t *testing.T) {
	term := &Terminal{
		out:         failWriter{},
		raw:         &RawMode{ops: &fakeTerm{terminal: true}},
		initialized: true,
	}
	err := term.Present(core.NewFrame(1, 1))
	assert.True(t, IsTerminalError(err))
}

func TestTerminalPollKey(t *testing.T) {
	var out bytes.Buffer
	term, _ := newTestTerminal(&out, &byteScript{data: []byte{0x11, 'x', 0x1b, '[', 'A'}})

	ev, ok, err := term.PollKey(time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, key.Ctrl('q'), ev)

	ev, ok, err = term.PollKey(time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, key.NewRuneEvent('x', key.ModNone), ev)

	ev, ok, err = term.PollKey(time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, key.KeyUp, ev.Key)

	_, ok, err = term.PollKey(time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTerminalPollKeyError(t *testing.T) {
	var out bytes.Buffer
	term, _ := newTestTerminal(&out, &byteScript{err: errors.New("eof")})

	_, _, err := term.PollKey(time.Millisecond)
	assert.True(t, IsIOError(err))
}

func TestTerminalSize(t *testing.T) {
	var out bytes.Buffer
	term, _ := newTestTerminal(&out, &byteScript{})

	cols, rows, err := term.Size()
	require.NoError(t, err)
	assert.Equal(t, 80, cols)
	assert.Equal(t, 24, rows)

	term.getSize = func(int) (int, int, error) { return 0, 0, errors.New("enotty") }
	_, _, err = term.Size()
	assert.True(t, IsTerminalError(err))
}
