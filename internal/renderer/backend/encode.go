package backend

import (
	"bytes"
	"strconv"

	"github.com/dshills/tiny/internal/renderer/core"
)

// ANSI control sequences.
const (
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
	seqCursorHome  = "\x1b[H"
	seqClearLine   = "\x1b[K"
	seqClearScreen = "\x1b[2J"
	seqResetStyle  = "\x1b[m"
)

// EncodeFrame appends the ANSI byte sequence that draws f to buf: hide the
// cursor, home, every row with SGR runs and an erase-to-end-of-line,
// position the cursor, then show it.
func EncodeFrame(buf *bytes.Buffer, f *core.Frame) {
	buf.WriteString(seqHideCursor)
	buf.WriteString(seqCursorHome)

	for y := 0; y < f.Height; y++ {
		encodeRow(buf, f.Row(y))
		buf.WriteString(seqResetStyle)
		buf.WriteString(seqClearLine)
		if y < f.Height-1 {
			buf.WriteString("\r\n")
		}
	}

	writeCursorPosition(buf, f.CursorRow, f.CursorCol)
	if f.CursorVisible {
		buf.WriteString(seqShowCursor)
	}
}

// encodeRow writes cells up to the last one that differs from a blank
// default cell; ESC[K clears the rest.
func encodeRow(buf *bytes.Buffer, cells []core.Cell) {
	last := len(cells) - 1
	for last >= 0 && isBlank(cells[last]) {
		last--
	}

	current := core.DefaultStyle()
	for _, c := range cells[:last+1] {
		if c.IsContinuation() {
			continue
		}
		if c.Style != current {
			writeSGR(buf, c.Style)
			current = c.Style
		}
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		buf.WriteRune(r)
	}
}

func isBlank(c core.Cell) bool {
	return (c.Rune == ' ' || c.Rune == 0) && c.Width <= 1 && c.Style.IsDefault()
}

func writeCursorPosition(buf *bytes.Buffer, row, col int) {
	buf.WriteString("\x1b[")
	buf.WriteString(strconv.Itoa(max(row, 0) + 1))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(max(col, 0) + 1))
	buf.WriteByte('H')
}

// writeSGR writes a Select Graphic Rendition sequence that sets exactly s,
// starting from a reset.
func writeSGR(buf *bytes.Buffer, s core.Style) {
	buf.WriteString("\x1b[0")
	if s.Attributes.Has(core.AttrBold) {
		buf.WriteString(";1")
	}
	if s.Attributes.Has(core.AttrDim) {
		buf.WriteString(";2")
	}
	if s.Attributes.Has(core.AttrUnderline) {
		buf.WriteString(";4")
	}
	if s.Attributes.Has(core.AttrReverse) {
		buf.WriteString(";7")
	}
	writeColor(buf, s.Foreground, 30, 90, 38)
	writeColor(buf, s.Background, 40, 100, 48)
	buf.WriteByte('m')
}

// writeColor emits a color parameter. base is the code of palette color 0,
// bright the code of palette color 8 and ext the extended color prefix.
func writeColor(buf *bytes.Buffer, c core.Color, base, bright, ext int) {
	switch {
	case c.IsDefault():
		return
	case c.Indexed && c.R < 8:
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(base + int(c.R)))
	case c.Indexed && c.R < 16:
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(bright + int(c.R) - 8))
	case c.Indexed:
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(ext))
		buf.WriteString(";5;")
		buf.WriteString(strconv.Itoa(int(c.R)))
	default:
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(ext))
		buf.WriteString(";2;")
		buf.WriteString(strconv.Itoa(int(c.R)))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(int(c.G)))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(int(c.B)))
	}
}
