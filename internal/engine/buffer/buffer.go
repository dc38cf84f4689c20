package buffer

import (
	"strings"

	"github.com/dshills/tiny/internal/renderer/highlight"
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "crlf"
	case LineEndingCR:
		return "cr"
	default:
		return "lf"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is the document model: rows, cursor and dirty counter.
type Buffer struct {
	rows []*Row

	cx, cy int
	rx     int
	dirty  int

	filename        string
	tabStop         int
	classifier      highlight.Classifier
	lineEnding      LineEnding
	trailingNewline bool

	// Saved tags of the row currently showing a search match.
	matchRow  int
	matchTags []highlight.Tag
}

// New creates an empty buffer with no rows.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		tabStop:         DefaultTabStop,
		lineEnding:      LineEndingLF,
		trailingNewline: true,
		matchRow:        -1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromLines creates a buffer holding lines, which must not contain line
// endings. The result is clean (dirty == 0).
func NewFromLines(lines []string, opts ...Option) *Buffer {
	b := New(opts...)
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, newRow(line, b.tabStop))
	}
	b.highlightFrom(0)
	return b
}

// NumRows returns the number of rows.
func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// Row returns row i.
func (b *Buffer) Row(i int) (*Row, error) {
	if i < 0 || i >= len(b.rows) {
		return nil, &BoundsError{Op: "row", Index: i, Len: len(b.rows)}
	}
	return b.rows[i], nil
}

// Cursor returns the raw cursor position.
func (b *Buffer) Cursor() (cx, cy int) {
	return b.cx, b.cy
}

// RenderX returns the cursor's render column.
func (b *Buffer) RenderX() int {
	return b.rx
}

// Dirty returns the number of modifications since the last save.
func (b *Buffer) Dirty() int {
	return b.dirty
}

// MarkClean resets the dirty counter, typically after a save.
func (b *Buffer) MarkClean() {
	b.dirty = 0
}

// Filename returns the file name, which may be empty.
func (b *Buffer) Filename() string {
	return b.filename
}

// SetFilename sets the file name.
func (b *Buffer) SetFilename(name string) {
	b.filename = name
}

// TabStop returns the tab expansion width.
func (b *Buffer) TabStop() int {
	return b.tabStop
}

// LineEnding returns the line ending used by Bytes.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// TrailingNewline reports whether Bytes ends with a line ending.
func (b *Buffer) TrailingNewline() bool {
	return b.trailingNewline
}

// FileType returns the classifier's file type, or "" when there is none.
func (b *Buffer) FileType() string {
	if b.classifier == nil {
		return ""
	}
	return b.classifier.FileType()
}

// SetClassifier replaces the classifier and retags every row.
func (b *Buffer) SetClassifier(c highlight.Classifier) {
	b.classifier = c
	b.matchRow, b.matchTags = -1, nil
	for _, row := range b.rows {
		row.highlighted = false
	}
	b.highlightFrom(0)
}

// Lines returns the raw content of every row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

// String joins the rows with the buffer's line ending.
func (b *Buffer) String() string {
	if len(b.rows) == 0 {
		return ""
	}
	var sb strings.Builder
	seq := b.lineEnding.Sequence()
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteString(seq)
		}
		sb.WriteString(row.String())
	}
	if b.trailingNewline {
		sb.WriteString(seq)
	}
	return sb.String()
}

// Bytes returns the serialized document.
func (b *Buffer) Bytes() []byte {
	return []byte(b.String())
}

// updateRow rebuilds row at's render form and retags from there on.
func (b *Buffer) updateRow(at int) {
	b.rows[at].update(b.tabStop)
	if at == b.matchRow {
		b.matchRow, b.matchTags = -1, nil
	}
	b.highlightFrom(at)
}

// highlightFrom retags row at and then following rows for as long as the
// multi-line comment state they were last tagged with has changed.
func (b *Buffer) highlightFrom(at int) {
	for i := at; i < len(b.rows); i++ {
		prev := i > 0 && b.rows[i-1].openComment
		row := b.rows[i]
		if i > at && row.highlighted && row.prevOpen == prev {
			return
		}
		row.highlight(b.classifier, prev)
	}
}

// updateRX recomputes the render column from the raw cursor.
func (b *Buffer) updateRX() {
	b.rx = 0
	if b.cy < len(b.rows) {
		b.rx = b.rows[b.cy].CxToRx(b.cx, b.tabStop)
	}
}
