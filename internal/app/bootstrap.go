package app

import (
	"maps"
	"os"

	"github.com/dshills/tiny/internal/config"
	"github.com/dshills/tiny/internal/dispatcher"
	"github.com/dshills/tiny/internal/engine/buffer"
	"github.com/dshills/tiny/internal/fileio"
	"github.com/dshills/tiny/internal/logging"
	"github.com/dshills/tiny/internal/renderer"
	"github.com/dshills/tiny/internal/renderer/backend"
	"github.com/dshills/tiny/internal/renderer/core"
	"github.com/dshills/tiny/internal/renderer/highlight"
	"github.com/dshills/tiny/internal/renderer/statusline"
	"github.com/dshills/tiny/internal/renderer/viewport"
)

// Size used until the first iteration reads the terminal size.
const (
	initialCols = 80
	initialRows = 24
)

// bootstrapper builds an Editor, closing what it opened if a later step
// fails.
type bootstrapper struct {
	opts Options
	ed   *Editor
}

func newBootstrapper(opts Options) *bootstrapper {
	return &bootstrapper{opts: opts, ed: &Editor{}}
}

func (b *bootstrapper) bootstrap() (*Editor, error) {
	steps := []func() error{
		b.initConfig,
		b.initDocument,
		b.initRenderer,
		b.initDispatcher,
		b.initBackend,
		b.initWatcher,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return nil, err
		}
	}
	return b.ed, nil
}

func (b *bootstrapper) initConfig() error {
	if b.opts.Path == "" {
		return NewComponentError("document", "open", ErrNoPath)
	}
	b.ed.cfg = b.opts.Config
	if b.ed.cfg == nil {
		b.ed.cfg = config.Default()
	}
	b.ed.log = b.opts.Logger
	if b.ed.log == nil {
		b.ed.log = logging.NullLogger()
	}
	b.ed.log = b.ed.log.WithComponent("editor")
	return nil
}

func (b *bootstrapper) initDocument() error {
	cfg := b.ed.cfg
	content, err := fileio.Load(b.opts.Path)
	if err != nil {
		return NewComponentError("document", "open", err)
	}

	classifier := highlight.Select(cfg.Syntax.Engine, b.opts.Path)
	opts := append([]buffer.Option{
		buffer.WithFilename(b.opts.Path),
		buffer.WithTabStop(cfg.Editor.TabStop),
		buffer.WithClassifier(classifier),
	}, content.Options()...)
	b.ed.buf = buffer.NewFromLines(content.Lines, opts...)

	if content.Exists {
		b.ed.log.Info("opened %s (%d rows, %s)", b.opts.Path, len(content.Lines), content.LineEnding)
	} else {
		b.ed.log.Info("new file %s", b.opts.Path)
	}
	return nil
}

func (b *bootstrapper) initRenderer() error {
	colors := maps.Clone(b.ed.cfg.Theme)
	bar, hasBar := colors[statusline.BarColorKey]
	delete(colors, statusline.BarColorKey)

	theme, err := highlight.ThemeFromColors(colors)
	if err != nil {
		return NewComponentError("renderer", "theme", err)
	}
	opts := renderer.DefaultOptions()
	opts.Theme = theme
	b.ed.renderer = renderer.New(opts)
	if hasBar {
		c, err := core.ParseColor(bar)
		if err != nil {
			return NewComponentError("renderer", "theme", err)
		}
		b.ed.renderer.StatusLine().SetBarStyle(core.DefaultStyle().WithBackground(c))
	}
	b.ed.view = viewport.NewViewport(initialCols, initialRows-b.ed.renderer.StatusLine().Height())
	b.ed.msg = statusline.NewMessage(b.ed.cfg.Editor.MessageTimeout)
	return nil
}

func (b *bootstrapper) initDispatcher() error {
	d, err := dispatcher.New(b.ed.buf, b.ed.view, b.ed.msg, dispatcher.Options{
		QuitTimes: b.ed.cfg.Editor.QuitTimes,
		Keymap:    b.ed.cfg.Keymap,
		Saver:     b.opts.Saver,
		Logger:    b.ed.log,
	})
	if err != nil {
		return NewComponentError("dispatcher", "keymap", err)
	}
	b.ed.dispatcher = d
	return nil
}

func (b *bootstrapper) initBackend() error {
	if b.opts.Backend != nil {
		b.ed.backend = b.opts.Backend
		return nil
	}
	be, err := backend.New(b.ed.cfg.Terminal.Backend, os.Stdin, os.Stdout)
	if err != nil {
		return NewComponentError("backend", "create", err)
	}
	b.ed.backend = be
	return nil
}

// initWatcher starts the file watcher. A watcher that cannot start only
// disables the external change notice.
func (b *bootstrapper) initWatcher() error {
	if !b.ed.cfg.Editor.WatchFile {
		return nil
	}
	w, err := fileio.NewWatcher(b.opts.Path)
	if err != nil {
		b.ed.log.Warn("file watcher disabled: %v", err)
		return nil
	}
	b.ed.watcher = w
	b.ed.dispatcher.AddPostHook(func(res dispatcher.Result) {
		if res.Action == dispatcher.ActionSave && res.OK() {
			if err := w.Record(); err != nil {
				b.ed.log.Warn("watcher: %v", err)
			}
		}
	})
	return nil
}

func (b *bootstrapper) cleanup() {
	if b.ed.watcher != nil {
		_ = b.ed.watcher.Close()
		b.ed.watcher = nil
	}
}
