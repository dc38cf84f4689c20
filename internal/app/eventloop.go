package app

import (
	"context"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/dshills/tiny/internal/fileio"
	"github.com/dshills/tiny/internal/renderer/statusline"
)

// Run acquires the terminal and edits until the user quits, ctx is
// cancelled, SIGTERM or SIGHUP arrives, or an I/O error occurs. The
// terminal is restored before Run returns, also after a panic, which is
// returned as a RecoveredPanicError.
func (e *Editor) Run(ctx context.Context) (err error) {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := e.backend.Init(); err != nil {
		e.closeWatcher()
		return NewComponentError("backend", "init", err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
		if serr := e.backend.Shutdown(); serr != nil && err == nil {
			err = NewComponentError("backend", "shutdown", serr)
		}
		e.closeWatcher()
		if err != nil {
			e.log.Error("run ended: %v", err)
		}
	}()

	e.log.Info("editor started (%s backend)", e.cfg.Terminal.Backend)
	e.msg.Set(HelpMessage)

	for !e.dispatcher.Terminated() {
		if ctx.Err() != nil {
			e.log.Info("interrupted: %v", context.Cause(ctx))
			return nil
		}
		e.checkWatcher()
		if err := e.refreshScreen(); err != nil {
			return err
		}
		if err := e.processKey(); err != nil {
			return err
		}
	}
	e.log.Info("editor quit after %d frames", e.renderer.FrameCount())
	return nil
}

// refreshScreen sizes the viewport to the terminal, scrolls it to the
// cursor and presents a new frame. On a terminal too short for the text
// area and both bars, the bottom rows of the frame are cut off.
func (e *Editor) refreshScreen() error {
	cols, rows, err := e.backend.Size()
	if err != nil {
		return NewComponentError("backend", "size", err)
	}
	e.view.Resize(cols, rows-e.renderer.StatusLine().Height())

	_, cy := e.buf.Cursor()
	e.view.Scroll(cy, e.buf.RenderX())

	frame := e.renderer.Render(e.buf, e.view, e.dispatcher)
	if frame.Height > rows {
		frame = frame.Crop(rows)
	}
	if err := e.backend.Present(frame); err != nil {
		return NewComponentError("backend", "present", err)
	}
	return nil
}

// processKey waits up to the poll interval for one key and dispatches it.
func (e *Editor) processKey() error {
	ev, ok, err := e.backend.PollKey(e.cfg.Editor.PollInterval)
	if err != nil {
		return NewComponentError("backend", "poll", err)
	}
	if !ok {
		return nil
	}
	e.dispatcher.Dispatch(ev)
	return nil
}

// checkWatcher drains pending watcher notifications without blocking.
func (e *Editor) checkWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case <-e.watcher.Changes():
			op, changed := e.watcher.Check()
			if !changed {
				continue
			}
			e.log.Warn("%s %s on disk", e.buf.Filename(), op)
			switch op {
			case fileio.OpRemoved:
				e.msg.SetTyped(statusline.MessageWarning, "File was removed from disk")
			default:
				e.msg.SetTyped(statusline.MessageWarning, "File changed on disk; saving will overwrite it")
			}
		case err := <-e.watcher.Errors():
			e.log.Warn("watcher: %v", err)
		default:
			return
		}
	}
}

func (e *Editor) closeWatcher() {
	if e.watcher == nil {
		return
	}
	if err := e.watcher.Close(); err != nil {
		e.log.Warn("close watcher: %v", err)
	}
	e.watcher = nil
}
