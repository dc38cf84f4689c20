package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/tiny/internal/renderer/highlight"
)

func TestNew(t *testing.T) {
	b := New()

	if b.NumRows() != 0 {
		t.Errorf("expected 0 rows, got %d", b.NumRows())
	}
	if cx, cy := b.Cursor(); cx != 0 || cy != 0 {
		t.Errorf("expected cursor (0,0), got (%d,%d)", cx, cy)
	}
	if b.Dirty() != 0 {
		t.Errorf("expected clean buffer, got dirty %d", b.Dirty())
	}
	if b.TabStop() != DefaultTabStop {
		t.Errorf("expected tab stop %d, got %d", DefaultTabStop, b.TabStop())
	}
}

func TestNewFromLines(t *testing.T) {
	b := NewFromLines([]string{"one", "two", "three"}, WithFilename("f.txt"))

	if b.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", b.NumRows())
	}
	if b.Dirty() != 0 {
		t.Errorf("loaded buffer should be clean, got dirty %d", b.Dirty())
	}
	if b.Filename() != "f.txt" {
		t.Errorf("expected filename f.txt, got %q", b.Filename())
	}
	if got := strings.Join(b.Lines(), "|"); got != "one|two|three" {
		t.Errorf("unexpected lines %q", got)
	}
}

func TestRowBounds(t *testing.T) {
	b := NewFromLines([]string{"a"})

	if _, err := b.Row(0); err != nil {
		t.Errorf("Row(0) error = %v", err)
	}
	_, err := b.Row(3)
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("Row(3) error = %v, want BoundsError", err)
	}
	if be.Index != 3 || be.Len != 1 {
		t.Errorf("unexpected BoundsError %+v", be)
	}
}

func TestInsertCharAppendsRowWhenParked(t *testing.T) {
	b := New()

	if d := b.InsertChar('x'); d == 0 {
		t.Error("InsertChar should increase dirty")
	}
	if b.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", b.NumRows())
	}
	if got := b.Lines()[0]; got != "x" {
		t.Errorf("expected %q, got %q", "x", got)
	}
	if cx, cy := b.Cursor(); cx != 1 || cy != 0 {
		t.Errorf("expected cursor (1,0), got (%d,%d)", cx, cy)
	}
}

func TestInsertCharMiddle(t *testing.T) {
	b := NewFromLines([]string{"ac"})
	b.SetCursor(1, 0)
	b.InsertChar('b')

	if got := b.Lines()[0]; got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
	if cx, _ := b.Cursor(); cx != 2 {
		t.Errorf("expected cx 2, got %d", cx)
	}
}

func TestDeleteCharJoinsRows(t *testing.T) {
	b := NewFromLines([]string{"ab", "cd"})
	b.SetCursor(0, 1)
	b.DeleteChar()

	if got := b.Lines(); len(got) != 1 || got[0] != "abcd" {
		t.Fatalf("expected [abcd], got %q", got)
	}
	if cx, cy := b.Cursor(); cx != 2 || cy != 0 {
		t.Errorf("expected cursor (2,0), got (%d,%d)", cx, cy)
	}
	if b.Dirty() == 0 {
		t.Error("join should mark the buffer dirty")
	}
}

func TestDeleteCharNoOps(t *testing.T) {
	b := NewFromLines([]string{"ab"})

	b.SetCursor(0, 0)
	if d := b.DeleteChar(); d != 0 {
		t.Errorf("delete at (0,0) changed dirty to %d", d)
	}

	b.SetCursor(0, 1)
	if d := b.DeleteChar(); d != 0 {
		t.Errorf("delete past last row changed dirty to %d", d)
	}
	if got := b.Lines()[0]; got != "ab" {
		t.Errorf("content changed to %q", got)
	}
}

func TestDeleteCharMiddle(t *testing.T) {
	b := NewFromLines([]string{"abc"})
	b.SetCursor(2, 0)
	b.DeleteChar()

	if got := b.Lines()[0]; got != "ac" {
		t.Errorf("expected ac, got %q", got)
	}
	if cx, _ := b.Cursor(); cx != 1 {
		t.Errorf("expected cx 1, got %d", cx)
	}
}

func TestInsertNewline(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		cx, cy int
		want   []string
	}{
		{"split", []string{"hello"}, 2, 0, []string{"he", "llo"}},
		{"at start", []string{"hello"}, 0, 0, []string{"", "hello"}},
		{"at end", []string{"hello"}, 5, 0, []string{"hello", ""}},
		{"parked", []string{"a"}, 0, 1, []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromLines(tt.lines)
			b.SetCursor(tt.cx, tt.cy)
			b.InsertNewline()

			if got := strings.Join(b.Lines(), "|"); got != strings.Join(tt.want, "|") {
				t.Errorf("expected %q, got %q", tt.want, b.Lines())
			}
			if cx, cy := b.Cursor(); cx != 0 || cy != tt.cy+1 {
				t.Errorf("expected cursor (0,%d), got (%d,%d)", tt.cy+1, cx, cy)
			}
		})
	}
}

func TestRenderExpandsTabs(t *testing.T) {
	b := NewFromLines([]string{"\tx", "ab\tc"}, WithTabStop(4))

	row, _ := b.Row(0)
	if got := string(row.Render()); got != "    x" {
		t.Errorf("expected %q, got %q", "    x", got)
	}
	row, _ = b.Row(1)
	if got := string(row.Render()); got != "ab  c" {
		t.Errorf("expected %q, got %q", "ab  c", got)
	}

	b.SetCursor(1, 0)
	if b.RenderX() != 4 {
		t.Errorf("expected rx 4 after tab, got %d", b.RenderX())
	}
}

func TestRenderWideRunes(t *testing.T) {
	b := NewFromLines([]string{"中a"})
	row, _ := b.Row(0)

	render := row.Render()
	if len(render) != 3 || render[1] != highlight.Continuation {
		t.Fatalf("unexpected render %q", render)
	}
	if len(row.Tags()) != len(render) {
		t.Errorf("expected %d tags, got %d", len(render), len(row.Tags()))
	}

	b.SetCursor(1, 0)
	if b.RenderX() != 2 {
		t.Errorf("expected rx 2 after wide rune, got %d", b.RenderX())
	}
}

func TestRenderRecomputedAfterEdit(t *testing.T) {
	b := NewFromLines([]string{"x"})
	b.SetCursor(0, 0)
	b.InsertChar('\t')

	row, _ := b.Row(0)
	if got := string(row.Render()); got != strings.Repeat(" ", DefaultTabStop)+"x" {
		t.Errorf("render not rebuilt: %q", got)
	}
	if b.RenderX() != DefaultTabStop {
		t.Errorf("expected rx %d, got %d", DefaultTabStop, b.RenderX())
	}
}

func TestCxRxConversion(t *testing.T) {
	row := newRow("a\tb中c", 8)

	tests := []struct{ cx, rx int }{
		{0, 0}, {1, 1}, {2, 8}, {3, 9}, {4, 11}, {5, 12},
	}
	for _, tt := range tests {
		if got := row.CxToRx(tt.cx, 8); got != tt.rx {
			t.Errorf("CxToRx(%d) = %d, want %d", tt.cx, got, tt.rx)
		}
		if got := row.RxToCx(tt.rx, 8); got != tt.cx {
			t.Errorf("RxToCx(%d) = %d, want %d", tt.rx, got, tt.cx)
		}
	}
	// A column inside a tab maps to the tab.
	if got := row.RxToCx(5, 8); got != 1 {
		t.Errorf("RxToCx(5) = %d, want 1", got)
	}
}

func TestInsertDeleteRow(t *testing.T) {
	b := NewFromLines([]string{"a", "c"})
	b.InsertRow(1, "b")
	b.InsertRow(99, "d")

	if got := strings.Join(b.Lines(), ""); got != "abcd" {
		t.Errorf("expected abcd, got %q", got)
	}

	b.DeleteRow(0)
	b.DeleteRow(-1)
	b.DeleteRow(10)
	if got := strings.Join(b.Lines(), ""); got != "bcd" {
		t.Errorf("expected bcd, got %q", got)
	}
	if b.Dirty() != 3 {
		t.Errorf("expected dirty 3, got %d", b.Dirty())
	}
}

func TestCutPasteRow(t *testing.T) {
	b := NewFromLines([]string{"one", "two", "three"})
	b.SetCursor(2, 1)

	s, ok := b.CutRow()
	if !ok || s != "two" {
		t.Fatalf("CutRow() = %q, %v", s, ok)
	}
	if got := strings.Join(b.Lines(), ","); got != "one,three" {
		t.Errorf("after cut: %q", got)
	}

	b.SetCursor(0, 0)
	b.PasteRow(s)
	if got := strings.Join(b.Lines(), ","); got != "two,one,three" {
		t.Errorf("after paste: %q", got)
	}
	if cx, cy := b.Cursor(); cx != 0 || cy != 0 {
		t.Errorf("expected cursor (0,0), got (%d,%d)", cx, cy)
	}

	b.SetCursor(0, 3)
	if _, ok := b.CutRow(); ok {
		t.Error("CutRow past last row should report false")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		le       LineEnding
		trailing bool
		want     string
	}{
		{"lf trailing", []string{"a", "b"}, LineEndingLF, true, "a\nb\n"},
		{"lf no trailing", []string{"a", "b"}, LineEndingLF, false, "a\nb"},
		{"crlf", []string{"a", "b"}, LineEndingCRLF, true, "a\r\nb\r\n"},
		{"empty", nil, LineEndingLF, true, ""},
		{"single blank", []string{""}, LineEndingLF, true, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromLines(tt.lines, WithLineEnding(tt.le), WithTrailingNewline(tt.trailing))
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"", LineEndingLF},
		{"a\nb\n", LineEndingLF},
		{"a\r\nb\r\n", LineEndingCRLF},
		{"a\rb\r", LineEndingCR},
		{"a\r\nb\nc\r\n", LineEndingCRLF},
	}

	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestHighlightPropagatesComments(t *testing.T) {
	b := NewFromLines([]string{"int a;", "b;", "c;"}, WithClassifier(highlight.SelectSyntax("x.c")))
	if b.FileType() != "c" {
		t.Errorf("FileType() = %q", b.FileType())
	}

	row, _ := b.Row(2)
	if row.Tags()[0] != highlight.TagNormal {
		t.Fatalf("row 2 should start normal, got %v", row.Tags()[0])
	}

	// Opening a comment on row 0 retags the rows below it.
	b.SetCursor(0, 0)
	b.InsertChar('*')
	b.SetCursor(0, 0)
	b.InsertChar('/')

	for i := 1; i < 3; i++ {
		row, _ := b.Row(i)
		if row.Tags()[0] != highlight.TagMLComment {
			t.Errorf("row %d tag = %v, want mlcomment", i, row.Tags()[0])
		}
	}

	// Removing it restores them.
	b.SetCursor(1, 0)
	b.DeleteChar()
	row, _ = b.Row(2)
	if row.Tags()[0] != highlight.TagNormal {
		t.Errorf("row 2 tag = %v after closing, want normal", row.Tags()[0])
	}
}

func TestSetClassifier(t *testing.T) {
	b := NewFromLines([]string{"return 1"})
	row, _ := b.Row(0)
	if row.Tags()[0] != highlight.TagNormal {
		t.Fatal("no classifier should leave text normal")
	}

	b.SetClassifier(highlight.SelectSyntax("x.go"))
	row, _ = b.Row(0)
	if row.Tags()[0] != highlight.TagKeyword1 {
		t.Errorf("expected keyword1, got %v", row.Tags()[0])
	}
}
