// Package buffer holds the document being edited: an ordered list of rows,
// the cursor, and a dirty counter.
//
// Each Row keeps its raw characters and a derived render form in which tabs
// are expanded to the next tab stop and every double-width rune is followed
// by a highlight.Continuation cell, so a render index is always a screen
// column. The render form and its highlight tags are rebuilt whenever the
// raw characters change; callers never edit them directly.
//
// Coordinates:
//
//   - cx, cy: rune index within the row and row index (raw coordinates)
//   - rx: column within the render form (screen coordinates)
//
// The cursor may sit at cy == NumRows(), one past the last row. That is a
// valid insertion point: inserting a character there appends a new row.
//
// A Buffer is owned by a single goroutine and is not safe for concurrent use.
package buffer
