package buffer

// Direction is a cursor movement direction.
type Direction uint8

// Cursor movement directions.
const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// MoveCursor moves the cursor one step. Left at column 0 wraps to the end
// of the previous row and Right at the end of a row wraps to the start of
// the next. Vertical moves stop at 0 and NumRows(); cx is then clamped to
// the length of the row it lands on. It returns the dirty count, which
// moving never changes.
func (b *Buffer) MoveCursor(dir Direction) int {
	var row *Row
	if b.cy < len(b.rows) {
		row = b.rows[b.cy]
	}

	switch dir {
	case Left:
		if b.cx > 0 {
			b.cx--
		} else if b.cy > 0 {
			b.cy--
			b.cx = b.rows[b.cy].Len()
		}
	case Right:
		if row != nil && b.cx < row.Len() {
			b.cx++
		} else if row != nil && b.cx == row.Len() {
			b.cy++
			b.cx = 0
		}
	case Up:
		if b.cy > 0 {
			b.cy--
		}
	case Down:
		if b.cy < len(b.rows) {
			b.cy++
		}
	}

	b.clampCX()
	b.updateRX()
	return b.dirty
}

// MoveHome moves the cursor to the start of its row.
func (b *Buffer) MoveHome() {
	b.cx = 0
	b.updateRX()
}

// MoveEnd moves the cursor to the end of its row.
func (b *Buffer) MoveEnd() {
	if b.cy < len(b.rows) {
		b.cx = b.rows[b.cy].Len()
	}
	b.updateRX()
}

// SetCursor places the cursor, clamping cy to [0, NumRows()] and cx to the
// length of the target row.
func (b *Buffer) SetCursor(cx, cy int) {
	b.cy = clamp(cy, 0, len(b.rows))
	b.cx = max(cx, 0)
	b.clampCX()
	b.updateRX()
}

func (b *Buffer) clampCX() {
	rowLen := 0
	if b.cy < len(b.rows) {
		rowLen = b.rows[b.cy].Len()
	}
	b.cx = clamp(b.cx, 0, rowLen)
}
