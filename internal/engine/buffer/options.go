package buffer

import "github.com/dshills/tiny/internal/renderer/highlight"

// DefaultTabStop is the tab expansion width used when none is configured.
const DefaultTabStop = 8

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabStop sets the tab expansion width.
func WithTabStop(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabStop = width
		}
	}
}

// WithClassifier sets the syntax classifier used to tag rendered cells.
func WithClassifier(c highlight.Classifier) Option {
	return func(b *Buffer) {
		b.classifier = c
	}
}

// WithFilename sets the buffer's file name.
func WithFilename(name string) Option {
	return func(b *Buffer) {
		b.filename = name
	}
}

// WithLineEnding sets the line ending used when the rows are serialized.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithTrailingNewline sets whether serialized content ends with a line ending.
func WithTrailingNewline(v bool) Option {
	return func(b *Buffer) {
		b.trailingNewline = v
	}
}

// DetectLineEnding returns a LineEnding based on the most common line ending in the text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lfCount, crlfCount, crCount int

	i := 0
	for i < len(text) {
		if i+1 < len(text) && text[i] == '\r' && text[i+1] == '\n' {
			crlfCount++
			i += 2
		} else if text[i] == '\r' {
			crCount++
			i++
		} else if text[i] == '\n' {
			lfCount++
			i++
		} else {
			i++
		}
	}

	if crlfCount > 0 && crlfCount >= lfCount && crlfCount >= crCount {
		return LineEndingCRLF
	}
	if crCount > 0 && crCount > lfCount && crCount > crlfCount {
		return LineEndingCR
	}
	return LineEndingLF
}
