package buffer

// InsertRow inserts a row holding s before row at. at is clamped to
// [0, NumRows()]. It returns the new dirty count.
func (b *Buffer) InsertRow(at int, s string) int {
	b.insertRow(at, s)
	b.dirty++
	return b.dirty
}

func (b *Buffer) insertRow(at int, s string) {
	at = clamp(at, 0, len(b.rows))
	b.ClearMatch()
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = newRow(s, b.tabStop)
	b.highlightFrom(at)
}

// DeleteRow removes row at. Out of range indices are ignored. It returns
// the new dirty count.
func (b *Buffer) DeleteRow(at int) int {
	if at < 0 || at >= len(b.rows) {
		return b.dirty
	}
	b.ClearMatch()
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	if at < len(b.rows) {
		b.highlightFrom(at)
	}
	b.dirty++
	return b.dirty
}

// InsertChar inserts c at the cursor and advances the cursor. When the
// cursor is parked past the last row a new row is appended first, as part
// of the same modification.
func (b *Buffer) InsertChar(c rune) int {
	if b.cy == len(b.rows) {
		b.insertRow(len(b.rows), "")
	}
	b.rows[b.cy].insertRune(b.cx, c)
	b.updateRow(b.cy)
	b.cx++
	b.dirty++
	b.updateRX()
	return b.dirty
}

// InsertNewline splits the current row at the cursor and moves the cursor
// to the start of the new row.
func (b *Buffer) InsertNewline() int {
	if b.cx == 0 {
		b.InsertRow(b.cy, "")
	} else {
		row := b.rows[b.cy]
		tail := string(row.chars[b.cx:])
		row.chars = row.chars[:b.cx]
		b.updateRow(b.cy)
		b.InsertRow(b.cy+1, tail)
	}
	b.cy++
	b.cx = 0
	b.updateRX()
	return b.dirty
}

// DeleteChar deletes the character left of the cursor. At the start of a
// row it joins the row onto the end of the previous row and places the
// cursor at the join point. At (0,0) and past the last row it does nothing.
func (b *Buffer) DeleteChar() int {
	if b.cy == len(b.rows) {
		return b.dirty
	}
	if b.cx == 0 && b.cy == 0 {
		return b.dirty
	}

	row := b.rows[b.cy]
	if b.cx > 0 {
		row.deleteRune(b.cx - 1)
		b.updateRow(b.cy)
		b.cx--
		b.dirty++
	} else {
		prev := b.rows[b.cy-1]
		b.cx = prev.Len()
		prev.appendRunes(row.chars)
		b.updateRow(b.cy - 1)
		b.DeleteRow(b.cy)
		b.cy--
	}
	b.updateRX()
	return b.dirty
}

// CutRow removes the cursor's row and returns its content. It reports false
// when the cursor is past the last row.
func (b *Buffer) CutRow() (string, bool) {
	if b.cy >= len(b.rows) {
		return "", false
	}
	s := b.rows[b.cy].String()
	b.DeleteRow(b.cy)
	b.cx = 0
	b.updateRX()
	return s, true
}

// PasteRow inserts s as a new row above the cursor's row and moves the
// cursor to its start.
func (b *Buffer) PasteRow(s string) int {
	b.InsertRow(b.cy, s)
	b.cx = 0
	b.updateRX()
	return b.dirty
}
