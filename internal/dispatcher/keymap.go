package dispatcher

import (
	"maps"
	"sort"

	"github.com/dshills/tiny/internal/input/key"
)

// Keymap maps key specifications to action names. Specs are stored in the
// canonical form produced by key.Event.Spec.
type Keymap struct {
	bindings map[string]string
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string]string)}
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	k := NewKeymap()
	for spec, action := range defaultBindings {
		if err := k.Bind(spec, action); err != nil {
			panic(err)
		}
	}
	return k
}

var defaultBindings = map[string]string{
	"<C-s>":      ActionSave,
	"<C-q>":      ActionQuit,
	"<C-f>":      ActionFind,
	"<CR>":       ActionNewline,
	"<Tab>":      ActionInsertTab,
	"<BS>":       ActionBackspace,
	"<C-h>":      ActionBackspace,
	"<Del>":      ActionDelete,
	"<Up>":       ActionMoveUp,
	"<Down>":     ActionMoveDown,
	"<Left>":     ActionMoveLeft,
	"<Right>":    ActionMoveRight,
	"<Home>":     ActionHome,
	"<End>":      ActionEnd,
	"<PageUp>":   ActionPageUp,
	"<PageDown>": ActionPageDown,
	"<C-k>":      ActionCutRow,
	"<C-u>":      ActionPasteRow,
	"<C-l>":      ActionRefresh,
	"<Esc>":      ActionRefresh,
}

// Bind maps spec to action. An empty action removes the binding.
func (k *Keymap) Bind(spec, action string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return &BindingError{Spec: spec, Action: action, Err: err}
	}
	if action == "" {
		delete(k.bindings, ev.Spec())
		return nil
	}
	k.bindings[ev.Spec()] = action
	return nil
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev key.Event) (string, bool) {
	action, ok := k.bindings[ev.Spec()]
	return action, ok
}

// KeysFor returns the sorted specs bound to action.
func (k *Keymap) KeysFor(action string) []string {
	var specs []string
	for spec, a := range k.bindings {
		if a == action {
			specs = append(specs, spec)
		}
	}
	sort.Strings(specs)
	return specs
}

// Bindings returns a copy of every binding.
func (k *Keymap) Bindings() map[string]string {
	return maps.Clone(k.bindings)
}
