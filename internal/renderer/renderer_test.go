package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tiny/internal/engine/buffer"
	"github.com/dshills/tiny/internal/renderer/core"
	"github.com/dshills/tiny/internal/renderer/highlight"
	"github.com/dshills/tiny/internal/renderer/statusline"
	"github.com/dshills/tiny/internal/renderer/viewport"
)

type staticMessage struct {
	text string
	typ  statusline.MessageType
}

func (m staticMessage) Current() (string, statusline.MessageType) {
	return m.text, m.typ
}

func render(t *testing.T, buf *buffer.Buffer, cols, rows int, msg MessageSource) (*core.Frame, *viewport.Viewport) {
	t.Helper()
	vp := viewport.NewViewport(cols, rows)
	_, cy := buf.Cursor()
	vp.Scroll(cy, buf.RenderX())
	r := New(DefaultOptions())
	f := r.Render(buf, vp, msg)
	require.Equal(t, cols, f.Width)
	require.Equal(t, rows+2, f.Height)
	return f, vp
}

func TestRenderEmptyDocument(t *testing.T) {
	f, _ := render(t, buffer.New(), 40, 9, nil)

	for y := 0; y < 9; y++ {
		text := f.RowText(y)
		assert.True(t, strings.HasPrefix(text, "~"), "row %d = %q", y, text)
	}
	banner := f.RowText(3)
	assert.Contains(t, banner, "TINY editor -- version "+Version)

	assert.True(t, strings.HasPrefix(f.RowText(9), "[No Name] - 0 lines"))
	assert.Equal(t, strings.Repeat(" ", 40), f.RowText(10))
	assert.True(t, f.CursorVisible)
	assert.Equal(t, 0, f.CursorRow)
	assert.Equal(t, 0, f.CursorCol)
}

func TestRenderRows(t *testing.T) {
	buf := buffer.NewFromLines([]string{"hello", "\tx"}, buffer.WithFilename("a.txt"))
	f, _ := render(t, buf, 20, 4, staticMessage{text: "HELP"})

	assert.Equal(t, "hello               ", f.RowText(0))
	assert.Equal(t, "        x           ", f.RowText(1))
	assert.Equal(t, "~", strings.TrimRight(f.RowText(2), " "))
	assert.True(t, strings.HasPrefix(f.RowText(4), "a.txt - 2 lines"))
	assert.True(t, strings.HasPrefix(f.RowText(5), "HELP"))
}

func TestRenderNoBannerWithContent(t *testing.T) {
	buf := buffer.NewFromLines([]string{"x"})
	f, _ := render(t, buf, 40, 9, nil)

	for y := 0; y < 9; y++ {
		assert.NotContains(t, f.RowText(y), "TINY editor")
	}
}

func TestRenderHorizontalScroll(t *testing.T) {
	buf := buffer.NewFromLines([]string{"0123456789abcdef"})
	buf.SetCursor(14, 0)
	f, vp := render(t, buf, 10, 2, nil)

	assert.Equal(t, 5, vp.ColOffset())
	assert.Equal(t, "56789abcde", f.RowText(0))
	assert.Equal(t, 9, f.CursorCol)
	assert.Equal(t, 0, f.CursorRow)
}

func TestRenderVerticalScroll(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = strings.Repeat("x", i%7)
	}
	buf := buffer.NewFromLines(lines)
	buf.SetCursor(0, 30)
	f, vp := render(t, buf, 40, 5, nil)

	assert.Equal(t, 26, vp.RowOffset())
	assert.Equal(t, 4, f.CursorRow)
	assert.Contains(t, f.RowText(5), "31/50")
}

func TestRenderControlCharacters(t *testing.T) {
	buf := buffer.NewFromLines([]string{"a\x01b\x1bc"})
	f, _ := render(t, buf, 10, 2, nil)

	assert.Equal(t, "aAb?c", strings.TrimRight(f.RowText(0), " "))
	assert.True(t, f.Cell(1, 0).Style.Attributes.Has(core.AttrReverse))
	assert.False(t, f.Cell(0, 0).Style.Attributes.Has(core.AttrReverse))
}

func TestRenderWideRunes(t *testing.T) {
	buf := buffer.NewFromLines([]string{"a日本"})
	f, _ := render(t, buf, 4, 2, nil)

	assert.Equal(t, '日', f.Cell(1, 0).Rune)
	assert.True(t, f.Cell(2, 0).IsContinuation())
	// 本 would straddle the right edge.
	assert.Equal(t, ' ', f.Cell(3, 0).Rune)
}

func TestRenderHighlightStyles(t *testing.T) {
	buf := buffer.NewFromLines([]string{"int x = 1;"},
		buffer.WithClassifier(highlight.Select(highlight.EngineBuiltin, "main.c")))
	f, _ := render(t, buf, 40, 2, nil)

	theme := highlight.DefaultTheme()
	assert.Equal(t, theme.Style(highlight.TagKeyword2), f.Cell(0, 0).Style)
	assert.Equal(t, theme.Style(highlight.TagNumber), f.Cell(8, 0).Style)
	assert.Contains(t, f.RowText(2), "c | 1/1")
}

func TestRenderDirtyIndicator(t *testing.T) {
	buf := buffer.NewFromLines([]string{"x"})
	buf.InsertChar('y')
	f, _ := render(t, buf, 40, 2, nil)

	assert.Contains(t, f.RowText(2), "(modified)")
}

func TestRenderReusesFrame(t *testing.T) {
	r := New(DefaultOptions())
	vp := viewport.NewViewport(10, 3)
	buf := buffer.NewFromLines([]string{"abc"})

	f1 := r.Render(buf, vp, nil)
	f2 := r.Render(buf, vp, nil)
	assert.Same(t, f1, f2)
	assert.Equal(t, uint64(2), r.FrameCount())

	vp.Resize(12, 3)
	f3 := r.Render(buf, vp, nil)
	assert.Equal(t, 12, f3.Width)
}

func TestControlSymbol(t *testing.T) {
	assert.Equal(t, '@', controlSymbol(0))
	assert.Equal(t, 'A', controlSymbol(1))
	assert.Equal(t, 'Z', controlSymbol(26))
	assert.Equal(t, '?', controlSymbol(0x7f))
	assert.Equal(t, '?', controlSymbol('\u0301'))
}
