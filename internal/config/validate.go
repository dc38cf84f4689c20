package config

import (
	"slices"
	"time"

	"github.com/dshills/tiny/internal/input/key"
	"github.com/dshills/tiny/internal/renderer/core"
	"github.com/dshills/tiny/internal/renderer/highlight"
	"github.com/dshills/tiny/internal/renderer/statusline"
)

// Accepted ranges.
const (
	MinTabStop      = 1
	MaxTabStop      = 32
	MaxQuitTimes    = 10
	MinPollInterval = time.Millisecond
	MaxPollInterval = 10 * time.Second
)

var (
	backends  = []string{"ansi", "tcell"}
	engines   = []string{highlight.EngineBuiltin, highlight.EngineChroma, highlight.EngineNone}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var p problems

	if c.Editor.TabStop < MinTabStop || c.Editor.TabStop > MaxTabStop {
		p.add("editor.tab_stop", ErrCodeOutOfRange, c.Editor.TabStop,
			"must be between %d and %d", MinTabStop, MaxTabStop)
	}
	if c.Editor.QuitTimes < 0 || c.Editor.QuitTimes > MaxQuitTimes {
		p.add("editor.quit_times", ErrCodeOutOfRange, c.Editor.QuitTimes,
			"must be between 0 and %d", MaxQuitTimes)
	}
	if c.Editor.MessageTimeout < 0 {
		p.add("editor.message_timeout", ErrCodeOutOfRange, c.Editor.MessageTimeout,
			"must not be negative")
	}
	if c.Editor.PollInterval < MinPollInterval || c.Editor.PollInterval > MaxPollInterval {
		p.add("editor.poll_interval", ErrCodeOutOfRange, c.Editor.PollInterval,
			"must be between %s and %s", MinPollInterval, MaxPollInterval)
	}

	checkEnum(&p, "terminal.backend", c.Terminal.Backend, backends)
	checkEnum(&p, "syntax.engine", c.Syntax.Engine, engines)
	checkEnum(&p, "log.level", c.Log.Level, logLevels)

	for name, color := range c.Theme {
		path := "theme." + name
		if _, ok := highlight.TagFromName(name); !ok && name != statusline.BarColorKey {
			p.add(path, ErrCodeInvalidEnum, name, "unknown highlight class")
			continue
		}
		if _, err := core.ParseColor(color); err != nil {
			p.add(path, ErrCodeInvalidValue, color, "%v", err)
		}
	}

	for spec := range c.Keymap {
		if _, err := key.Parse(spec); err != nil {
			p.add("keymap."+spec, ErrCodeInvalidValue, spec, "%v", err)
		}
	}

	return p.err()
}

func checkEnum(p *problems, path, value string, allowed []string) {
	if slices.Contains(allowed, value) {
		return
	}
	p.add(path, ErrCodeInvalidEnum, value, "must be one of %v", allowed)
}
