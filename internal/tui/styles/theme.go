package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme selects the window palette.
type Theme int

const (
	ThemeAuto Theme = iota
	ThemeDark
	ThemeLight
)

// Themes lists the theme names accepted in configuration.
var Themes = []string{"auto", "dark", "light"}

// ParseTheme converts a config value into a Theme.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "", "auto":
		return ThemeAuto, nil
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeAuto, fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", name)
	}
}

// Resolve replaces ThemeAuto with the theme matching the terminal background.
func (t Theme) Resolve() Theme {
	switch t {
	case ThemeDark, ThemeLight:
		return t
	case ThemeAuto:
		if lipgloss.HasDarkBackground() {
			return ThemeDark
		}
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	switch t {
	case ThemeAuto:
		return "auto"
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}
