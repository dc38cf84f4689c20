package viewport

import (
	"testing"

	"pgregory.net/rapid"
)

func TestNewViewport(t *testing.T) {
	vp := NewViewport(80, 22)

	if vp.Cols() != 80 {
		t.Errorf("expected cols 80, got %d", vp.Cols())
	}
	if vp.Rows() != 22 {
		t.Errorf("expected rows 22, got %d", vp.Rows())
	}
	if vp.RowOffset() != 0 || vp.ColOffset() != 0 {
		t.Errorf("expected zero offsets, got %d,%d", vp.RowOffset(), vp.ColOffset())
	}
}

func TestNewViewportMinimumSize(t *testing.T) {
	vp := NewViewport(0, -3)

	if vp.Cols() != 1 || vp.Rows() != 1 {
		t.Errorf("expected 1x1, got %dx%d", vp.Cols(), vp.Rows())
	}
}

func TestScrollDown(t *testing.T) {
	vp := NewViewport(80, 10)

	vp.Scroll(9, 0)
	if vp.RowOffset() != 0 {
		t.Errorf("cursor on last visible row should not scroll, got rowoff %d", vp.RowOffset())
	}

	vp.Scroll(10, 0)
	if vp.RowOffset() != 1 {
		t.Errorf("expected rowoff 1, got %d", vp.RowOffset())
	}

	vp.Scroll(50, 0)
	if vp.RowOffset() != 41 {
		t.Errorf("expected rowoff 41, got %d", vp.RowOffset())
	}
}

func TestScrollUpClampsWithoutReset(t *testing.T) {
	vp := NewViewport(80, 10)
	vp.Scroll(50, 0)

	// Moving within the window keeps the offset.
	vp.Scroll(45, 0)
	if vp.RowOffset() != 41 {
		t.Errorf("expected rowoff 41, got %d", vp.RowOffset())
	}

	vp.Scroll(30, 0)
	if vp.RowOffset() != 30 {
		t.Errorf("expected rowoff 30, got %d", vp.RowOffset())
	}
}

func TestScrollHorizontal(t *testing.T) {
	vp := NewViewport(20, 10)

	vp.Scroll(0, 25)
	if vp.ColOffset() != 6 {
		t.Errorf("expected coloff 6, got %d", vp.ColOffset())
	}

	vp.Scroll(0, 3)
	if vp.ColOffset() != 3 {
		t.Errorf("expected coloff 3, got %d", vp.ColOffset())
	}
}

func TestResizeThenScroll(t *testing.T) {
	vp := NewViewport(80, 20)
	vp.Scroll(19, 0)

	vp.Resize(80, 5)
	vp.Scroll(19, 0)
	if vp.RowOffset() != 15 {
		t.Errorf("expected rowoff 15 after shrink, got %d", vp.RowOffset())
	}
}

func TestRevealAtTop(t *testing.T) {
	vp := NewViewport(80, 10)

	vp.RevealAtTop(42)
	vp.Scroll(42, 0)
	if vp.RowOffset() != 42 {
		t.Errorf("expected rowoff 42, got %d", vp.RowOffset())
	}
}

func TestScreenPos(t *testing.T) {
	vp := NewViewport(10, 5)
	vp.Scroll(12, 15)

	row, col := vp.ScreenPos(12, 15)
	if row != 4 || col != 9 {
		t.Errorf("expected (4,9), got (%d,%d)", row, col)
	}
	if !vp.IsVisible(12, 15) {
		t.Error("cursor should be visible after Scroll")
	}
	if vp.IsVisible(0, 0) {
		t.Error("origin should be scrolled out")
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := NewViewport(
			rapid.IntRange(1, 200).Draw(t, "cols"),
			rapid.IntRange(1, 100).Draw(t, "rows"),
		)
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for range steps {
			if rapid.Bool().Draw(t, "resize") {
				vp.Resize(rapid.IntRange(1, 200).Draw(t, "newCols"), rapid.IntRange(1, 100).Draw(t, "newRows"))
			}
			cy := rapid.IntRange(0, 5000).Draw(t, "cy")
			rx := rapid.IntRange(0, 5000).Draw(t, "rx")
			vp.Scroll(cy, rx)

			if vp.RowOffset() > cy || cy >= vp.RowOffset()+vp.Rows() {
				t.Fatalf("row %d outside [%d,%d)", cy, vp.RowOffset(), vp.RowOffset()+vp.Rows())
			}
			if vp.ColOffset() > rx || rx >= vp.ColOffset()+vp.Cols() {
				t.Fatalf("col %d outside [%d,%d)", rx, vp.ColOffset(), vp.ColOffset()+vp.Cols())
			}
		}
	})
}
