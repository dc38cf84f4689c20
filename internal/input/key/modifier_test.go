package key

import (
	"testing"
)

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	mod := ModNone.With(ModCtrl).With(ModAlt)
	if !mod.HasCtrl() || !mod.HasAlt() {
		t.Error("With should accumulate modifiers")
	}

	mod = mod.Without(ModAlt)
	if mod.HasAlt() || !mod.HasCtrl() {
		t.Error("Without(ModAlt) should remove only Alt")
	}
	if mod.IsEmpty() {
		t.Error("IsEmpty() = true with Ctrl set")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"Control", ModCtrl},
		{"C", ModCtrl},
		{"alt", ModAlt},
		{"meta", ModAlt},
		{"shift", ModShift},
		{"hyper", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestXtermModifier(t *testing.T) {
	tests := []struct {
		param  int
		want   Modifier
		wantOK bool
	}{
		{1, ModNone, true},
		{2, ModShift, true},
		{3, ModAlt, true},
		{5, ModCtrl, true},
		{8, ModShift | ModAlt | ModCtrl, true},
		{0, ModNone, false},
		{17, ModNone, false},
	}

	for _, tt := range tests {
		got, ok := xtermModifier(tt.param)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("xtermModifier(%d) = %v, %v; want %v, %v", tt.param, got, ok, tt.want, tt.wantOK)
		}
	}
}
