// Package styles defines the color palettes and lipgloss styles of the
// conflictpane TUI.
package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeNord),
	}
}

// IsValidTheme checks if a theme name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	Primary lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color

	// Conflict file statuses
	StatusAdded    lipgloss.Color
	StatusModified lipgloss.Color
	StatusDeleted  lipgloss.Color
	StatusIgnored  lipgloss.Color

	// Selection highlight background
	Selected lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Warning: lipgloss.Color("#F59E0B"), // Amber
		Error:   lipgloss.Color("#F87171"), // Red (red-400)
		Muted:   lipgloss.Color("#9CA3AF"), // Gray
		Surface: lipgloss.Color("#1F2937"), // Dark surface
		Text:    lipgloss.Color("#F9FAFB"), // Light text
		Border:  lipgloss.Color("#6B7280"), // Gray-500

		StatusAdded:    lipgloss.Color("#22C55E"),
		StatusModified: lipgloss.Color("#F59E0B"),
		StatusDeleted:  lipgloss.Color("#F87171"),
		StatusIgnored:  lipgloss.Color("#6B7280"),

		Selected: lipgloss.Color("#4C1D95"),
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#AE81FF"),
		Warning: lipgloss.Color("#E6DB74"),
		Error:   lipgloss.Color("#F92672"),
		Muted:   lipgloss.Color("#A59F85"),
		Surface: lipgloss.Color("#272822"),
		Text:    lipgloss.Color("#F8F8F2"),
		Border:  lipgloss.Color("#75715E"),

		StatusAdded:    lipgloss.Color("#A6E22E"),
		StatusModified: lipgloss.Color("#E6DB74"),
		StatusDeleted:  lipgloss.Color("#F92672"),
		StatusIgnored:  lipgloss.Color("#75715E"),

		Selected: lipgloss.Color("#49483E"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#88C0D0"),
		Warning: lipgloss.Color("#EBCB8B"),
		Error:   lipgloss.Color("#BF616A"),
		Muted:   lipgloss.Color("#D8DEE9"),
		Surface: lipgloss.Color("#3B4252"),
		Text:    lipgloss.Color("#ECEFF4"),
		Border:  lipgloss.Color("#4C566A"),

		StatusAdded:    lipgloss.Color("#A3BE8C"),
		StatusModified: lipgloss.Color("#EBCB8B"),
		StatusDeleted:  lipgloss.Color("#BF616A"),
		StatusIgnored:  lipgloss.Color("#4C566A"),

		Selected: lipgloss.Color("#434C5E"),
	}
}

// GetPalette returns the palette for a theme name, falling back to the
// default palette for unknown names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeNord:
		return NordPalette()
	default:
		return DefaultPalette()
	}
}
