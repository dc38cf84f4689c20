package dispatcher

import (
	"sort"

	"github.com/dshills/tiny/internal/input/key"
)

// Handler runs one action. ev is the event that triggered it.
type Handler func(d *Dispatcher, ev key.Event) Result

// Registry maps action names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register sets the handler for an action, replacing any previous one.
func (r *Registry) Register(action string, h Handler) {
	r.handlers[action] = h
}

// Get returns the handler for an action, or nil.
func (r *Registry) Get(action string) Handler {
	return r.handlers[action]
}

// Has returns true if a handler is registered for the action.
func (r *Registry) Has(action string) bool {
	_, ok := r.handlers[action]
	return ok
}

// Names returns all registered action names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
