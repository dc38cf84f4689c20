package dispatcher

import (
	"fmt"

	"github.com/dshills/tiny/internal/input/key"
)

// findPrompt is the state of an incremental search.
type findPrompt struct {
	query []rune

	// Row of the last match, or -1 to search from the top.
	last    int
	forward bool

	// Position to restore when the search is cancelled.
	savedCX, savedCY         int
	savedRowOff, savedColOff int
}

func find(d *Dispatcher, _ key.Event) Result {
	cx, cy := d.buf.Cursor()
	d.prompt = &findPrompt{
		last:        -1,
		forward:     true,
		savedCX:     cx,
		savedCY:     cy,
		savedRowOff: d.view.RowOffset(),
		savedColOff: d.view.ColOffset(),
	}
	d.state = StatePrompt
	return Success()
}

func (p *findPrompt) text() string {
	return fmt.Sprintf("Search: %s (Use ESC/Arrows/Enter)", string(p.query))
}

func (p *findPrompt) handle(d *Dispatcher, ev key.Event) Result {
	switch {
	case ev.Key == key.KeyEscape:
		d.buf.SetCursor(p.savedCX, p.savedCY)
		d.view.SetOffsets(p.savedRowOff, p.savedColOff)
		p.close(d)
		return Success()

	case ev.Key == key.KeyEnter:
		if len(p.query) == 0 {
			return NoOp()
		}
		p.close(d)
		return Success()

	case ev.Key == key.KeyRight || ev.Key == key.KeyDown:
		p.forward = true

	case ev.Key == key.KeyLeft || ev.Key == key.KeyUp:
		p.forward = false

	case ev.Key == key.KeyBackspace || ev.Key == key.KeyDelete || ev == key.Ctrl('h'):
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
		}
		p.restart()

	case ev.IsChar():
		p.query = append(p.query, ev.Rune)
		p.restart()

	default:
		p.restart()
	}

	return p.search(d)
}

func (p *findPrompt) restart() {
	p.last = -1
	p.forward = true
}

func (p *findPrompt) search(d *Dispatcher) Result {
	d.buf.ClearMatch()
	if len(p.query) == 0 {
		return NoOp()
	}

	row, col, ok := d.buf.Find(string(p.query), p.last, p.forward)
	if !ok {
		return NoOp()
	}
	p.last = row
	d.buf.SetCursor(col, row)
	d.view.RevealAtTop(row)
	d.buf.HighlightMatch(row, col, len(p.query))
	return Success()
}

func (p *findPrompt) close(d *Dispatcher) {
	d.buf.ClearMatch()
	d.msg.Clear()
	d.prompt = nil
	d.state = StateRunning
}
