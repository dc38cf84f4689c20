package highlight

import (
	"fmt"

	"github.com/dshills/tiny/internal/renderer/core"
)

// Theme maps highlight tags to terminal styles.
type Theme struct {
	styles [tagCount]core.Style
}

// DefaultTheme uses the eight-color ANSI palette.
func DefaultTheme() *Theme {
	t := &Theme{}
	for i := range t.styles {
		t.styles[i] = core.DefaultStyle()
	}
	t.styles[TagComment] = core.NewStyle(core.ColorCyan)
	t.styles[TagMLComment] = core.NewStyle(core.ColorCyan)
	t.styles[TagKeyword1] = core.NewStyle(core.ColorYellow)
	t.styles[TagKeyword2] = core.NewStyle(core.ColorGreen)
	t.styles[TagString] = core.NewStyle(core.ColorMagenta)
	t.styles[TagNumber] = core.NewStyle(core.ColorRed)
	t.styles[TagMatch] = core.NewStyle(core.ColorBlue)
	return t
}

// ThemeFromColors starts from the default theme and overrides the
// foreground of each named tag. Colors are palette names or hex values.
func ThemeFromColors(colors map[string]string) (*Theme, error) {
	t := DefaultTheme()
	for name, value := range colors {
		tag, ok := TagFromName(name)
		if !ok {
			return nil, fmt.Errorf("theme: unknown highlight class %q", name)
		}
		c, err := core.ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("theme: %s: %w", name, err)
		}
		t.styles[tag].Foreground = c
	}
	return t, nil
}

// Style returns the style for tag.
func (t *Theme) Style(tag Tag) core.Style {
	if tag >= tagCount {
		return core.DefaultStyle()
	}
	return t.styles[tag]
}
