package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dshills/tiny/internal/config/layer"
	"github.com/dshills/tiny/internal/config/loader"
)

// Config holds every tiny setting.
type Config struct {
	Editor   EditorConfig
	Terminal TerminalConfig
	Syntax   SyntaxConfig
	Log      LogConfig

	// Theme maps highlight class names to colors.
	Theme map[string]string

	// Keymap maps key specs to action names. Entries override the
	// built-in bindings; an empty action unbinds the key.
	Keymap map[string]string

	stack *layer.Stack
}

// EditorConfig holds the [editor] section.
type EditorConfig struct {
	TabStop        int
	QuitTimes      int
	MessageTimeout time.Duration
	PollInterval   time.Duration
	WatchFile      bool
}

// TerminalConfig holds the [terminal] section.
type TerminalConfig struct {
	Backend string
}

// SyntaxConfig holds the [syntax] section.
type SyntaxConfig struct {
	Engine string
}

// LogConfig holds the [log] section.
type LogConfig struct {
	Level string
	File  string
}

// Options controls where Load looks for settings.
type Options struct {
	// UserDir holds the user config.toml or config.yaml. Empty uses
	// $XDG_CONFIG_HOME/tiny; "-" skips the user layer.
	UserDir string

	// File is an explicit configuration file. It must exist.
	File string

	// Environ replaces the process environment when non-nil.
	Environ []string

	// Overrides are dot-path settings from command-line flags.
	Overrides map[string]any

	// FS is the file system to read from. Nil uses the OS.
	FS loader.FileSystem
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := decode(defaultsMap())
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	cfg.stack = &layer.Stack{}
	cfg.stack.Add(&layer.Layer{Source: layer.SourceBuiltin, Data: defaultsMap()})
	return cfg
}

func defaultsMap() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tab_stop":        8,
			"quit_times":      2,
			"message_timeout": "5s",
			"poll_interval":   "100ms",
			"watch_file":      true,
		},
		"terminal": map[string]any{
			"backend": "ansi",
		},
		"syntax": map[string]any{
			"engine": "builtin",
		},
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"theme":  map[string]any{},
		"keymap": map[string]any{},
	}
}

// Load builds the configuration from defaults, the user file, the
// explicit file, the environment and flag overrides, then validates it.
func Load(opts Options) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	stack := &layer.Stack{}
	stack.Add(&layer.Layer{Source: layer.SourceBuiltin, Data: defaultsMap()})

	if opts.UserDir != "-" {
		l, err := loadUserLayer(fsys, opts.UserDir)
		if err != nil {
			return nil, err
		}
		stack.Add(l)
	}

	if opts.File != "" {
		if _, err := fsys.Stat(opts.File); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, opts.File)
		}
		data, err := loadFile(fsys, opts.File)
		if err != nil {
			return nil, err
		}
		stack.Add(&layer.Layer{Source: layer.SourceFile, Path: opts.File, Data: data})
	}

	env := loader.NewEnvLoader(loader.EnvPrefix)
	if opts.Environ != nil {
		env = loader.NewEnvLoaderWithEnviron(loader.EnvPrefix, opts.Environ)
	}
	envData, err := env.Load()
	if err != nil {
		return nil, err
	}
	stack.Add(&layer.Layer{Source: layer.SourceEnv, Data: envData})

	if len(opts.Overrides) > 0 {
		args := make(map[string]any)
		for path, v := range opts.Overrides {
			layer.SetByPath(args, path, v)
		}
		stack.Add(&layer.Layer{Source: layer.SourceArgs, Data: args})
	}

	cfg, err := decode(stack.Merged())
	if err != nil {
		return nil, err
	}
	cfg.stack = stack
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadUserLayer(fsys loader.FileSystem, dir string) (*layer.Layer, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, nil
		}
		dir = filepath.Join(base, "tiny")
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		data, err := loadFile(fsys, path)
		if err != nil {
			return nil, err
		}
		if data != nil {
			return &layer.Layer{Source: layer.SourceUser, Path: path, Data: data}, nil
		}
	}
	return nil, nil
}

func loadFile(fsys loader.FileSystem, path string) (map[string]any, error) {
	l, err := loader.ForPath(fsys, path)
	if err != nil {
		return nil, err
	}
	return l.Load()
}

// Origin names the layer that supplied the value at path.
func (c *Config) Origin(path string) string {
	if c.stack == nil {
		return layer.SourceBuiltin.String()
	}
	l, ok := c.stack.Origin(path)
	if !ok {
		return "unset"
	}
	if l.Path != "" {
		return l.Source.String() + " (" + l.Path + ")"
	}
	return l.Source.String()
}

// decode converts a merged settings map into a Config.
func decode(m map[string]any) (*Config, error) {
	var p problems
	d := decoder{data: m, p: &p}

	cfg := &Config{
		Editor: EditorConfig{
			TabStop:        d.int("editor.tab_stop"),
			QuitTimes:      d.int("editor.quit_times"),
			MessageTimeout: d.duration("editor.message_timeout"),
			PollInterval:   d.duration("editor.poll_interval"),
			WatchFile:      d.bool("editor.watch_file"),
		},
		Terminal: TerminalConfig{Backend: d.string("terminal.backend")},
		Syntax:   SyntaxConfig{Engine: d.string("syntax.engine")},
		Log: LogConfig{
			Level: d.string("log.level"),
			File:  d.string("log.file"),
		},
		Theme:  d.stringMap("theme"),
		Keymap: d.stringMap("keymap"),
	}
	if err := p.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type decoder struct {
	data map[string]any
	p    *problems
}

func (d decoder) get(path string) (any, bool) {
	return layer.GetByPath(d.data, path)
}

func (d decoder) mismatch(path, want string, v any) {
	d.p.add(path, ErrCodeTypeMismatch, v, "expected %s, got %T", want, v)
}

func (d decoder) int(path string) int {
	v, ok := d.get(path)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		if n == math.Trunc(n) {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	d.mismatch(path, "integer", v)
	return 0
}

func (d decoder) bool(path string) bool {
	v, ok := d.get(path)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	d.mismatch(path, "boolean", v)
	return false
}

func (d decoder) string(path string) string {
	v, ok := d.get(path)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.mismatch(path, "string", v)
	}
	return s
}

// duration accepts a duration string ("150ms"), a time.Duration, or a
// number of milliseconds.
func (d decoder) duration(path string) time.Duration {
	v, ok := d.get(path)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case time.Duration:
		return t
	case int:
		return time.Duration(t) * time.Millisecond
	case int64:
		return time.Duration(t) * time.Millisecond
	case string:
		parsed, err := time.ParseDuration(t)
		if err == nil {
			return parsed
		}
		d.p.add(path, ErrCodeInvalidValue, v, "invalid duration: %v", err)
		return 0
	}
	d.mismatch(path, "duration", v)
	return 0
}

func (d decoder) stringMap(path string) map[string]string {
	out := make(map[string]string)
	v, ok := d.get(path)
	if !ok {
		return out
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.mismatch(path, "table", v)
		return out
	}
	for k, e := range m {
		s, ok := e.(string)
		if !ok {
			d.mismatch(path+"."+k, "string", e)
			continue
		}
		out[k] = s
	}
	return out
}
