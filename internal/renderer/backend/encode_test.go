package backend

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/tiny/internal/renderer/core"
)

func TestEncodeFrameLayout(t *testing.T) {
	f := core.NewFrame(5, 2)
	f.SetString(0, 0, "ab", core.DefaultStyle())
	f.SetString(0, 1, "c", core.DefaultStyle())
	f.CursorCol, f.CursorRow = 1, 1
	f.CursorVisible = true

	var buf bytes.Buffer
	EncodeFrame(&buf, f)

	want := "\x1b[?25l\x1b[H" +
		"ab\x1b[m\x1b[K\r\n" +
		"c\x1b[m\x1b[K" +
		"\x1b[2;2H\x1b[?25h"
	assert.Equal(t, want, buf.String())
}

func TestEncodeFrameHiddenCursor(t *testing.T) {
	f := core.NewFrame(1, 1)
	var buf bytes.Buffer
	EncodeFrame(&buf, f)

	assert.True(t, strings.HasPrefix(buf.String(), seqHideCursor))
	assert.False(t, strings.HasSuffix(buf.String(), seqShowCursor))
}

func TestEncodeFrameStyles(t *testing.T) {
	f := core.NewFrame(4, 1)
	f.SetString(0, 0, "k", core.NewStyle(core.ColorYellow))
	f.SetString(1, 0, "x", core.DefaultStyle())
	f.SetString(2, 0, " ", core.DefaultStyle().Reverse())

	var buf bytes.Buffer
	EncodeFrame(&buf, f)

	assert.Contains(t, buf.String(), "\x1b[0;33mk\x1b[0mx\x1b[0;7m \x1b[m\x1b[K")
}

func TestEncodeFrameWideRune(t *testing.T) {
	f := core.NewFrame(3, 1)
	f.SetString(0, 0, "日x", core.DefaultStyle())

	var buf bytes.Buffer
	EncodeFrame(&buf, f)

	assert.Contains(t, buf.String(), "\x1b[H日x\x1b[m")
}

func TestWriteSGR(t *testing.T) {
	tests := []struct {
		name  string
		style core.Style
		want  string
	}{
		{"default", core.DefaultStyle(), "\x1b[0m"},
		{"bold red", core.NewStyle(core.ColorRed).Bold(), "\x1b[0;1;31m"},
		{"bright", core.NewStyle(core.ColorFromIndex(9)), "\x1b[0;91m"},
		{"256", core.NewStyle(core.ColorFromIndex(200)), "\x1b[0;38;5;200m"},
		{"rgb on blue", core.NewStyle(core.ColorFromRGB(1, 2, 3)).WithBackground(core.ColorBlue), "\x1b[0;38;2;1;2;3;44m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeSGR(&buf, tt.style)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
