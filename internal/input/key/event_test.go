package key

import (
	"testing"
)

func TestEventPredicates(t *testing.T) {
	a := NewRuneEvent('a', ModNone)
	if !a.IsRune() || !a.IsChar() || a.IsModified() || a.IsSpecial() {
		t.Errorf("plain rune predicates wrong for %#v", a)
	}

	upper := NewRuneEvent('A', ModShift)
	if upper.IsModified() {
		t.Error("Shift alone should not mark a rune as modified")
	}

	ctrlS := Ctrl('S')
	if ctrlS.Rune != 's' || !ctrlS.Modifiers.HasCtrl() {
		t.Errorf("Ctrl('S') = %#v, want lowercase s with Ctrl", ctrlS)
	}
	if ctrlS.IsChar() {
		t.Error("Ctrl+S should not be an insertable character")
	}

	tab := NewRuneEvent('\t', ModNone)
	if !tab.IsChar() {
		t.Error("tab rune should be insertable")
	}

	if !NewSpecialEvent(KeyEscape, ModNone).IsEscape() {
		t.Error("IsEscape() = false for Escape")
	}
	if NewSpecialEvent(KeyEscape, ModAlt).IsEscape() {
		t.Error("IsEscape() = true for Alt+Escape")
	}
	if !NewSpecialEvent(KeyEnter, ModNone).IsEnter() {
		t.Error("IsEnter() = false for Enter")
	}
	if !NewSpecialEvent(KeyBackspace, ModNone).IsBackspace() {
		t.Error("IsBackspace() = false for Backspace")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{Ctrl('q'), "Ctrl+Q"},
		{NewRuneEvent('x', ModAlt), "Alt+x"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewSpecialEvent(KeyPageUp, ModNone), "PageUp"},
		{NewSpecialEvent(KeyUp, ModCtrl), "Ctrl+Up"},
		{NewSpecialEvent(KeyUnknown, ModNone), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEventSpec(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{Ctrl('s'), "<C-s>"},
		{NewRuneEvent('f', ModAlt), "<A-f>"},
		{NewSpecialEvent(KeyEnter, ModNone), "<CR>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyBackspace, ModNone), "<BS>"},
		{NewSpecialEvent(KeyDelete, ModNone), "<Del>"},
		{NewSpecialEvent(KeyPageDown, ModNone), "<PageDown>"},
		{NewSpecialEvent(KeyUp, ModShift), "<S-Up>"},
	}

	for _, tt := range tests {
		if got := tt.event.Spec(); got != tt.want {
			t.Errorf("%#v.Spec() = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestDecodedEventMatchesParsedSpec(t *testing.T) {
	// A decoded Ctrl-S byte and the configured "Ctrl+S" binding must agree.
	decoded := ctrlModify(0x13)
	parsed := MustParse("Ctrl+S")
	if decoded != parsed {
		t.Errorf("decoded %#v != parsed %#v", decoded, parsed)
	}
	if decoded.Spec() != parsed.Spec() {
		t.Errorf("Spec mismatch: %q vs %q", decoded.Spec(), parsed.Spec())
	}
}
