// Package statusline provides the status bar and the message bar.
package statusline

import (
	"fmt"
	"strconv"

	"github.com/rivo/uniseg"

	"github.com/dshills/tiny/internal/renderer/core"
)

// maxFilenameWidth is how much of the filename the status bar shows.
const maxFilenameWidth = 20

// BarColorKey is the theme setting holding the status bar background.
const BarColorKey = "status_bar"

// Info is the document state shown in the status bar.
type Info struct {
	Filename string // empty for a new, unnamed buffer
	FileType string // empty when no classifier matched
	NumRows  int
	CursorY  int // 0-indexed
	Dirty    bool
}

// StatusLine renders the two bottom rows of the screen: the status bar and
// the message bar.
type StatusLine struct {
	barStyle core.Style

	// Message styles by type
	messageStyles [messageTypeCount]core.Style
}

// New creates a status line with the default styles.
func New() *StatusLine {
	s := &StatusLine{
		barStyle: core.DefaultStyle().Reverse(),
	}
	s.messageStyles[MessageInfo] = core.DefaultStyle()
	s.messageStyles[MessageWarning] = core.NewStyle(core.ColorYellow)
	s.messageStyles[MessageError] = core.NewStyle(core.ColorRed).Bold()
	return s
}

// SetBarStyle overrides the status bar style.
func (s *StatusLine) SetBarStyle(style core.Style) {
	s.barStyle = style
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	return 2
}

// RenderStatus draws the status bar on row of f.
func (s *StatusLine) RenderStatus(f *core.Frame, row int, info Info) {
	f.FillRow(0, row, s.barStyle)

	left := Left(info)
	right := Right(info)

	left = Truncate(left, f.Width)
	col := f.SetString(0, row, left, s.barStyle)

	rw := uniseg.StringWidth(right)
	if f.Width-col >= rw {
		f.SetString(f.Width-rw, row, right, s.barStyle)
	}
}

// RenderMessage draws msg on row of f, clipped to the frame width.
func (s *StatusLine) RenderMessage(f *core.Frame, row int, msg string, typ MessageType) {
	f.FillRow(0, row, core.DefaultStyle())
	if msg == "" {
		return
	}
	style := core.DefaultStyle()
	if typ >= 0 && typ < messageTypeCount {
		style = s.messageStyles[typ]
	}
	f.SetString(0, row, Truncate(msg, f.Width), style)
}

// Left formats the left side of the status bar:
// the filename (at most 20 cells), the line count and the modified marker.
func Left(info Info) string {
	name := info.Filename
	if name == "" {
		name = "[No Name]"
	}
	name = Truncate(name, maxFilenameWidth)

	modified := ""
	if info.Dirty {
		modified = "(modified)"
	}
	return fmt.Sprintf("%s - %d lines %s", name, info.NumRows, modified)
}

// Right formats the right side of the status bar: file type and the
// 1-indexed cursor row over the row count.
func Right(info Info) string {
	ft := info.FileType
	if ft == "" {
		ft = "no ft"
	}
	return ft + " | " + strconv.Itoa(info.CursorY+1) + "/" + strconv.Itoa(info.NumRows)
}

// Truncate shortens s so that it occupies at most width terminal cells,
// never splitting a grapheme cluster.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	used := 0
	end := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			break
		}
		used += w
		end += len(cluster)
	}
	return s[:end]
}
