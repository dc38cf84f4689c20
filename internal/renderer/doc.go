// Package renderer turns the document and viewport into screen frames.
//
// The renderer follows a layered design:
//
//	┌─────────────────────────────────────────┐
//	│        Renderer (frame composer)        │
//	├─────────────────────────────────────────┤
//	│  Viewport │ StatusLine │ Highlight Theme│
//	├─────────────────────────────────────────┤
//	│          core.Frame (cell grid)         │
//	├─────────────────────────────────────────┤
//	│  Backend: ANSI terminal │ tcell │ null  │
//	└─────────────────────────────────────────┘
//
// A frame holds the visible text rows followed by the status bar and the
// message bar. Backends present a frame with a single flush.
//
// Usage:
//
//	r := renderer.New(renderer.DefaultOptions())
//	vp.Scroll(buf.Cursor()...)
//	frame := r.Render(buf, vp, msg)
//	backend.Present(frame)
package renderer
