package renderer

import (
	"github.com/dshills/tiny/internal/engine/buffer"
	"github.com/dshills/tiny/internal/renderer/core"
	"github.com/dshills/tiny/internal/renderer/highlight"
	"github.com/dshills/tiny/internal/renderer/statusline"
	"github.com/dshills/tiny/internal/renderer/viewport"
)

// Version is shown in the welcome banner.
const Version = "0.0.1"

// Document provides read access to the buffer being displayed.
type Document interface {
	NumRows() int
	Row(i int) (*buffer.Row, error)
	Cursor() (cx, cy int)
	RenderX() int
	Dirty() int
	Filename() string
	FileType() string
}

// MessageSource provides the current message bar text.
type MessageSource interface {
	Current() (string, statusline.MessageType)
}

// Options configures the renderer.
type Options struct {
	// Theme maps highlight tags to styles. Nil uses the default theme.
	Theme *highlight.Theme

	// Banner is shown on an empty document. Empty disables it.
	Banner string

	// Filler is drawn on rows past the end of the document.
	Filler rune
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		Theme:  highlight.DefaultTheme(),
		Banner: "TINY editor -- version " + Version,
		Filler: '~',
	}
}

// Renderer composes frames.
type Renderer struct {
	opts   Options
	status *statusline.StatusLine

	frame      *core.Frame
	frameCount uint64
}

// New creates a renderer with the given options.
func New(opts Options) *Renderer {
	if opts.Theme == nil {
		opts.Theme = highlight.DefaultTheme()
	}
	return &Renderer{
		opts:   opts,
		status: statusline.New(),
	}
}

// StatusLine returns the status line component.
func (r *Renderer) StatusLine() *statusline.StatusLine {
	return r.status
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Render composes one frame of vp.Cols() x vp.Rows()+2 cells. The viewport
// must already have been scrolled to the cursor. The returned frame is
// reused by the next call.
func (r *Renderer) Render(doc Document, vp *viewport.Viewport, msg MessageSource) *core.Frame {
	width := vp.Cols()
	height := vp.Rows() + r.status.Height()
	if r.frame == nil || r.frame.Width != width || r.frame.Height != height {
		r.frame = core.NewFrame(width, height)
	} else {
		r.frame.Clear()
	}
	f := r.frame
	f.CursorVisible = false

	r.drawRows(f, doc, vp)

	_, cy := doc.Cursor()
	r.status.RenderStatus(f, vp.Rows(), statusline.Info{
		Filename: doc.Filename(),
		FileType: doc.FileType(),
		NumRows:  doc.NumRows(),
		CursorY:  cy,
		Dirty:    doc.Dirty() > 0,
	})

	text, typ := "", statusline.MessageInfo
	if msg != nil {
		text, typ = msg.Current()
	}
	r.status.RenderMessage(f, vp.Rows()+1, text, typ)

	f.CursorRow, f.CursorCol = vp.ScreenPos(cy, doc.RenderX())
	f.CursorVisible = true

	r.frameCount++
	return f
}

func (r *Renderer) drawRows(f *core.Frame, doc Document, vp *viewport.Viewport) {
	numRows := doc.NumRows()
	for y := 0; y < vp.Rows(); y++ {
		fileRow := y + vp.RowOffset()
		if fileRow >= numRows {
			if numRows == 0 && y == vp.Rows()/3 && r.opts.Banner != "" {
				r.drawBanner(f, y)
			} else {
				f.Set(0, y, core.NewStyledCell(r.opts.Filler, core.DefaultStyle()))
			}
			continue
		}
		row, err := doc.Row(fileRow)
		if err != nil {
			continue
		}
		r.drawRow(f, y, row.Render(), row.Tags(), vp.ColOffset())
	}
}

func (r *Renderer) drawBanner(f *core.Frame, y int) {
	banner := statusline.Truncate(r.opts.Banner, f.Width)
	padding := (f.Width - len([]rune(banner))) / 2
	col := 0
	if padding > 0 {
		f.Set(0, y, core.NewStyledCell(r.opts.Filler, core.DefaultStyle()))
		col = padding
	}
	f.SetString(col, y, banner, core.DefaultStyle())
}

// drawRow copies render[coloff:coloff+width] into frame row y.
func (r *Renderer) drawRow(f *core.Frame, y int, render []rune, tags []highlight.Tag, coloff int) {
	if coloff >= len(render) {
		return
	}
	end := min(len(render), coloff+f.Width)
	for i := coloff; i < end; i++ {
		x := i - coloff
		c := render[i]
		style := core.DefaultStyle()
		if i < len(tags) {
			style = r.opts.Theme.Style(tags[i])
		}

		switch {
		case c == highlight.Continuation:
			if x == 0 {
				// Right half of a wide rune scrolled off the left edge.
				f.Set(x, y, core.NewStyledCell(' ', style))
			} else {
				f.Set(x, y, core.Cell{Style: style})
			}
		case core.RuneWidth(c) == 0:
			f.Set(x, y, core.NewStyledCell(controlSymbol(c), core.DefaultStyle().Reverse()))
		case core.RuneWidth(c) == 2 && x+1 >= f.Width:
			f.Set(x, y, core.NewStyledCell(' ', style))
		default:
			f.Set(x, y, core.Cell{Rune: c, Width: core.RuneWidth(c), Style: style})
		}
	}
}

// controlSymbol returns the visible stand-in for a control or zero-width
// rune: '@'+c for ^@..^Z, '?' otherwise.
func controlSymbol(c rune) rune {
	if c >= 0 && c <= 26 {
		return '@' + c
	}
	return '?'
}
