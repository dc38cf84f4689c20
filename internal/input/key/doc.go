// Package key provides key event types, key specification parsing, and the
// decoder that turns raw terminal bytes into key events.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press with modifiers
//   - Decoder: Reads bytes from a ByteSource and yields complete Events
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+x", "Ctrl+Shift+Up"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>"
//
// # Decoding
//
// The decoder understands single bytes (including Ctrl-letter control
// bytes), multi-byte UTF-8 runes, Alt-prefixed keys, and the CSI and SS3
// escape sequences emitted by xterm-compatible terminals. A sequence that
// is complete but unrecognized decodes to KeyUnknown; a sequence cut off by
// the inter-byte timeout is discarded.
package key
