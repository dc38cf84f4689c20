// Package config provides the configuration system for tiny.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  5. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  4. Environment (TINY_*)    │
//	├─────────────────────────────┤
//	│  3. --config file           │
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/tiny/config.toml or config.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//   - layer: Layer stacking and merging
//
// # Configuration Files
//
//	# ~/.config/tiny/config.toml
//	[editor]
//	tab_stop = 4
//	quit_times = 3
//	message_timeout = "5s"
//
//	[terminal]
//	backend = "ansi"
//
//	[theme]
//	comment = "#808080"
//
//	[keymap]
//	"<C-x>" = "save"
//
// # Error Handling
//
// Load reports every invalid setting at once in a ValidationError, which
// matches ErrValidationFailed with errors.Is.
package config
