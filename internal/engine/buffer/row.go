package buffer

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/tiny/internal/renderer/highlight"
)

// Row is one line of the document.
type Row struct {
	chars  []rune
	render []rune
	tags   []highlight.Tag

	// openComment is true when the row ends inside a multi-line comment.
	openComment bool
	// prevOpen is the previous row's openComment at the last highlight.
	prevOpen    bool
	highlighted bool
}

func newRow(s string, tabStop int) *Row {
	r := &Row{chars: []rune(s)}
	r.update(tabStop)
	return r
}

// Len returns the number of raw characters.
func (r *Row) Len() int {
	return len(r.chars)
}

// String returns the raw content.
func (r *Row) String() string {
	return string(r.chars)
}

// Render returns the rendered cells. The slice must not be modified.
func (r *Row) Render() []rune {
	return r.render
}

// Tags returns the highlight tag of each rendered cell.
func (r *Row) Tags() []highlight.Tag {
	return r.tags
}

// cellWidth is the number of render cells a non-tab rune occupies. Control
// and zero-width runes get a single cell so they can be shown as a visible
// substitute.
func cellWidth(c rune) int {
	if runewidth.RuneWidth(c) == 2 {
		return 2
	}
	return 1
}

// update rebuilds the render form from chars. Highlighting is redone by the
// owning buffer.
func (r *Row) update(tabStop int) {
	render := r.render[:0]
	for _, c := range r.chars {
		switch {
		case c == '\t':
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		case cellWidth(c) == 2:
			render = append(render, c, highlight.Continuation)
		default:
			render = append(render, c)
		}
	}
	r.render = render
	r.highlighted = false
}

// highlight retags the render form. prevOpen is the previous row's
// multi-line comment state.
func (r *Row) highlight(c highlight.Classifier, prevOpen bool) {
	if c == nil {
		r.tags = make([]highlight.Tag, len(r.render))
		r.openComment = false
	} else {
		r.tags, r.openComment = c.Highlight(r.render, prevOpen)
	}
	for i := 1; i < len(r.render); i++ {
		if r.render[i] == highlight.Continuation {
			r.tags[i] = r.tags[i-1]
		}
	}
	r.prevOpen = prevOpen
	r.highlighted = true
}

// CxToRx converts a raw index into a render column.
func (r *Row) CxToRx(cx, tabStop int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
			rx++
			continue
		}
		rx += cellWidth(r.chars[j])
	}
	return rx
}

// RxToCx converts a render column into the raw index of the character
// covering it.
func (r *Row) RxToCx(rx, tabStop int) int {
	cur := 0
	for cx, c := range r.chars {
		if c == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
			cur++
		} else {
			cur += cellWidth(c)
		}
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}

func (r *Row) insertRune(at int, c rune) {
	at = clamp(at, 0, len(r.chars))
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
}

func (r *Row) deleteRune(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
}

func (r *Row) appendRunes(s []rune) {
	r.chars = append(r.chars, s...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
