// Package viewport tracks which part of the document is on screen.
package viewport

// Viewport represents the visible portion of the buffer.
//
// rowoff and coloff are the first visible row and render column. The
// drawing area is rows x cols cells and excludes the status and message
// bars.
type Viewport struct {
	rowoff int
	coloff int

	rows int
	cols int
}

// NewViewport creates a viewport with the given drawing area.
// Width and height are clamped to a minimum of 1.
func NewViewport(cols, rows int) *Viewport {
	v := &Viewport{}
	v.Resize(cols, rows)
	return v
}

// Rows returns the number of text rows on screen.
func (v *Viewport) Rows() int {
	return v.rows
}

// Cols returns the number of text columns on screen.
func (v *Viewport) Cols() int {
	return v.cols
}

// RowOffset returns the first visible row.
func (v *Viewport) RowOffset() int {
	return v.rowoff
}

// ColOffset returns the first visible render column.
func (v *Viewport) ColOffset() int {
	return v.coloff
}

// Resize updates the drawing area. Offsets are left alone; the next Scroll
// brings the cursor back into view.
func (v *Viewport) Resize(cols, rows int) {
	v.cols = max(cols, 1)
	v.rows = max(rows, 1)
}

// Scroll adjusts the offsets so that the cursor at row cy, render column
// rx is visible. Offsets only move as far as needed.
func (v *Viewport) Scroll(cy, rx int) {
	v.rowoff = min(v.rowoff, cy)
	v.rowoff = max(v.rowoff, cy-v.rows+1)
	v.coloff = min(v.coloff, rx)
	v.coloff = max(v.coloff, rx-v.cols+1)
}

// SetOffsets restores previously saved offsets.
func (v *Viewport) SetOffsets(rowoff, coloff int) {
	v.rowoff = max(rowoff, 0)
	v.coloff = max(coloff, 0)
}

// RevealAtTop makes row cy the first visible row. Used to show a search
// match at the top of the screen.
func (v *Viewport) RevealAtTop(cy int) {
	v.rowoff = max(cy, 0)
}

// ScreenPos converts a cursor position into screen coordinates relative to
// the drawing area.
func (v *Viewport) ScreenPos(cy, rx int) (row, col int) {
	return cy - v.rowoff, rx - v.coloff
}

// IsVisible reports whether (cy, rx) is inside the drawing area.
func (v *Viewport) IsVisible(cy, rx int) bool {
	return cy >= v.rowoff && cy < v.rowoff+v.rows &&
		rx >= v.coloff && rx < v.coloff+v.cols
}
