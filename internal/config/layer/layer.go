// Package layer provides configuration layer management for tiny.
//
// Configuration comes from several sources with priority-based merging.
// Higher priority layers override values from lower priority layers.
package layer

import "sort"

// Source indicates where a configuration layer came from.
type Source uint8

const (
	// SourceBuiltin represents built-in default configuration.
	SourceBuiltin Source = iota
	// SourceUser represents the user config (~/.config/tiny/).
	SourceUser
	// SourceFile represents a file named with --config.
	SourceFile
	// SourceEnv represents TINY_* environment variables.
	SourceEnv
	// SourceArgs represents command-line flags.
	SourceArgs
)

// String returns the standard layer name for a source.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "defaults"
	case SourceUser:
		return "user"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "environment"
	case SourceArgs:
		return "arguments"
	default:
		return "unknown"
	}
}

// Priority returns the merge priority of a source.
func (s Source) Priority() int {
	return int(s) * 100
}

// Layer represents a single configuration layer.
type Layer struct {
	// Source indicates where the layer came from.
	Source Source

	// Path is the file path, if loaded from a file.
	Path string

	// Data holds the configuration values as a nested map.
	Data map[string]any
}

// Stack holds layers and merges them in priority order.
type Stack struct {
	layers []*Layer
}

// Add appends a layer. Layers with nil data are ignored.
func (s *Stack) Add(l *Layer) {
	if l == nil || l.Data == nil {
		return
	}
	s.layers = append(s.layers, l)
}

// Layers returns the layers in priority order, lowest first.
func (s *Stack) Layers() []*Layer {
	out := append([]*Layer(nil), s.layers...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Source.Priority() < out[j].Source.Priority()
	})
	return out
}

// Merged returns a new map holding every layer merged lowest priority
// first.
func (s *Stack) Merged() map[string]any {
	merged := make(map[string]any)
	for _, l := range s.Layers() {
		DeepMerge(merged, l.Data)
	}
	return merged
}

// Origin returns the highest priority layer that sets path.
func (s *Stack) Origin(path string) (*Layer, bool) {
	layers := s.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		if _, ok := GetByPath(layers[i].Data, path); ok {
			return layers[i], true
		}
	}
	return nil, false
}
