package dispatcher

import (
	"github.com/dshills/tiny/internal/engine/buffer"
	"github.com/dshills/tiny/internal/input/key"
	"github.com/dshills/tiny/internal/renderer/statusline"
)

// Built-in action names.
const (
	ActionSave       = "file.save"
	ActionQuit       = "editor.quit"
	ActionFind       = "search.find"
	ActionInsertChar = "edit.insertChar"
	ActionInsertTab  = "edit.insertTab"
	ActionNewline    = "edit.newline"
	ActionBackspace  = "edit.backspace"
	ActionDelete     = "edit.delete"
	ActionCutRow     = "edit.cutRow"
	ActionPasteRow   = "edit.pasteRow"
	ActionMoveUp     = "cursor.up"
	ActionMoveDown   = "cursor.down"
	ActionMoveLeft   = "cursor.left"
	ActionMoveRight  = "cursor.right"
	ActionHome       = "cursor.home"
	ActionEnd        = "cursor.end"
	ActionPageUp     = "view.pageUp"
	ActionPageDown   = "view.pageDown"
	ActionRefresh    = "view.refresh"
)

func registerBuiltins(r *Registry) {
	r.Register(ActionSave, save)
	r.Register(ActionQuit, quit)
	r.Register(ActionFind, find)
	r.Register(ActionInsertChar, insertChar)
	r.Register(ActionInsertTab, func(d *Dispatcher, _ key.Event) Result {
		d.buf.InsertChar('\t')
		return Success()
	})
	r.Register(ActionNewline, func(d *Dispatcher, _ key.Event) Result {
		d.buf.InsertNewline()
		return Success()
	})
	r.Register(ActionBackspace, func(d *Dispatcher, _ key.Event) Result {
		return changed(d, d.buf.DeleteChar)
	})
	r.Register(ActionDelete, func(d *Dispatcher, _ key.Event) Result {
		d.buf.MoveCursor(buffer.Right)
		return changed(d, d.buf.DeleteChar)
	})
	r.Register(ActionCutRow, cutRow)
	r.Register(ActionPasteRow, pasteRow)
	r.Register(ActionMoveUp, mover(buffer.Up))
	r.Register(ActionMoveDown, mover(buffer.Down))
	r.Register(ActionMoveLeft, mover(buffer.Left))
	r.Register(ActionMoveRight, mover(buffer.Right))
	r.Register(ActionHome, func(d *Dispatcher, _ key.Event) Result {
		d.buf.MoveHome()
		return Success()
	})
	r.Register(ActionEnd, func(d *Dispatcher, _ key.Event) Result {
		d.buf.MoveEnd()
		return Success()
	})
	r.Register(ActionPageUp, pageUp)
	r.Register(ActionPageDown, pageDown)
	r.Register(ActionRefresh, func(*Dispatcher, key.Event) Result {
		return NoOp()
	})
}

// changed runs an edit and reports whether it modified the buffer.
func changed(d *Dispatcher, edit func() int) Result {
	before := d.buf.Dirty()
	if edit() == before {
		return NoOp()
	}
	return Success()
}

func mover(dir buffer.Direction) Handler {
	return func(d *Dispatcher, _ key.Event) Result {
		d.buf.MoveCursor(dir)
		return Success()
	}
}

func insertChar(d *Dispatcher, ev key.Event) Result {
	d.buf.InsertChar(ev.Rune)
	return Success()
}

func save(d *Dispatcher, _ key.Event) Result {
	name := d.buf.Filename()
	if name == "" {
		d.msg.SetTyped(statusline.MessageError, "Can't save! No file name")
		return Failure(ErrNoFilename)
	}

	n, err := d.saver.Save(name, d.buf.Bytes())
	if err != nil {
		d.msg.SetTyped(statusline.MessageError, "Can't save! I/O error: %v", err)
		return Failure(err)
	}
	d.buf.MarkClean()
	d.msg.Set("%d bytes written to disk", n)
	d.log.Info("saved %s (%d bytes)", name, n)
	return Success()
}

func quit(d *Dispatcher, ev key.Event) Result {
	if d.buf.Dirty() > 0 && d.quitLeft > 0 {
		d.msg.SetTyped(statusline.MessageWarning,
			"WARNING!!! File has unsaved changes. Press %s %d more times to quit.",
			ev.String(), d.quitLeft)
		d.quitLeft--
		d.state = StateConfirmQuit
		return NoOp()
	}
	d.state = StateTerminated
	return Success()
}

func cutRow(d *Dispatcher, _ key.Event) Result {
	s, ok := d.buf.CutRow()
	if !ok {
		return NoOp()
	}
	d.register, d.hasRegister = s, true
	return Success()
}

func pasteRow(d *Dispatcher, _ key.Event) Result {
	if !d.hasRegister {
		d.msg.Set("Nothing to paste")
		return NoOp()
	}
	d.buf.PasteRow(d.register)
	return Success()
}

// pageUp moves the cursor to the top of the screen and then one screen up.
func pageUp(d *Dispatcher, _ key.Event) Result {
	cx, _ := d.buf.Cursor()
	d.buf.SetCursor(cx, d.view.RowOffset())
	for range d.view.Rows() {
		d.buf.MoveCursor(buffer.Up)
	}
	return Success()
}

// pageDown moves the cursor to the bottom of the screen and then one screen
// down.
func pageDown(d *Dispatcher, _ key.Event) Result {
	cx, _ := d.buf.Cursor()
	target := min(d.view.RowOffset()+d.view.Rows()-1, d.buf.NumRows())
	d.buf.SetCursor(cx, target)
	for range d.view.Rows() {
		d.buf.MoveCursor(buffer.Down)
	}
	return Success()
}
