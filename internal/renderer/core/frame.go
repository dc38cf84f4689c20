package core

// Frame is one complete screen image: a grid of cells plus the cursor.
// Renderers fill a Frame and backends present it in a single flush.
type Frame struct {
	Width  int
	Height int
	cells  []Cell

	// CursorCol and CursorRow are the 0-indexed cursor position.
	CursorCol int
	CursorRow int
	// CursorVisible controls whether the cursor is shown after presenting.
	CursorVisible bool
}

// NewFrame creates a frame filled with empty cells.
func NewFrame(width, height int) *Frame {
	width = max(width, 0)
	height = max(height, 0)
	f := &Frame{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	f.Clear()
	return f
}

// Clear resets every cell to an empty cell.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = EmptyCell()
	}
}

// InBounds reports whether (col, row) is inside the frame.
func (f *Frame) InBounds(col, row int) bool {
	return col >= 0 && col < f.Width && row >= 0 && row < f.Height
}

// Set writes a cell. Writes outside the frame are ignored.
func (f *Frame) Set(col, row int, c Cell) {
	if !f.InBounds(col, row) {
		return
	}
	f.cells[row*f.Width+col] = c
}

// Cell returns the cell at (col, row), or an empty cell when out of bounds.
func (f *Frame) Cell(col, row int) Cell {
	if !f.InBounds(col, row) {
		return EmptyCell()
	}
	return f.cells[row*f.Width+col]
}

// Row returns the cells of one row. The slice aliases the frame.
func (f *Frame) Row(row int) []Cell {
	if row < 0 || row >= f.Height {
		return nil
	}
	return f.cells[row*f.Width : (row+1)*f.Width]
}

// SetString writes s starting at (col, row) and returns the column after the
// last cell written. Text past the right edge is clipped; a wide rune that
// would straddle the edge is replaced by a space.
func (f *Frame) SetString(col, row int, s string, style Style) int {
	for _, r := range s {
		if col >= f.Width {
			break
		}
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if w == 2 && col+1 >= f.Width {
			f.Set(col, row, Cell{Rune: ' ', Width: 1, Style: style})
			col++
			break
		}
		f.Set(col, row, Cell{Rune: r, Width: w, Style: style})
		if w == 2 {
			f.Set(col+1, row, Cell{Style: style})
		}
		col += w
	}
	return col
}

// FillRow sets every cell of row from col onwards to a space in style.
func (f *Frame) FillRow(col, row int, style Style) {
	for ; col < f.Width; col++ {
		f.Set(col, row, Cell{Rune: ' ', Width: 1, Style: style})
	}
}

// RowText returns the visible text of a row, skipping continuation cells.
func (f *Frame) RowText(row int) string {
	cells := f.Row(row)
	runes := make([]rune, 0, len(cells))
	for _, c := range cells {
		if c.IsContinuation() {
			continue
		}
		runes = append(runes, c.Rune)
	}
	return string(runes)
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := *f
	c.cells = append([]Cell(nil), f.cells...)
	return &c
}

// Crop returns a copy of the top height rows of the frame. The cursor is
// hidden when it falls below the cut.
func (f *Frame) Crop(height int) *Frame {
	height = min(max(height, 0), f.Height)
	c := *f
	c.Height = height
	c.cells = append([]Cell(nil), f.cells[:height*f.Width]...)
	if c.CursorRow >= height {
		c.CursorVisible = false
	}
	return &c
}
