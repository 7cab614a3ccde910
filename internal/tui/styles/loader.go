package styles

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary string `yaml:"primary"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	Muted   string `yaml:"muted"`
	Surface string `yaml:"surface"`
	Text    string `yaml:"text"`
	Border  string `yaml:"border"`

	// Status colors (optional - default to base colors if not specified)
	Status ThemeStatusColors `yaml:"status,omitempty"`

	// Selected is the selection background (optional, defaults to surface)
	Selected string `yaml:"selected,omitempty"`
}

// ThemeStatusColors defines colors for conflict file statuses.
type ThemeStatusColors struct {
	Added    string `yaml:"added,omitempty"`
	Modified string `yaml:"modified,omitempty"`
	Deleted  string `yaml:"deleted,omitempty"`
	Ignored  string `yaml:"ignored,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %q (supported: 1)", t.Version)
	}

	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.color == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !isValidHexColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	optional := []struct{ name, color string }{
		{"status.added", t.Colors.Status.Added},
		{"status.modified", t.Colors.Status.Modified},
		{"status.deleted", t.Colors.Status.Deleted},
		{"status.ignored", t.Colors.Status.Ignored},
		{"selected", t.Colors.Selected},
	}
	for _, c := range optional {
		if c.color != "" && !isValidHexColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	c := t.Colors
	return &ColorPalette{
		Primary: lipgloss.Color(c.Primary),
		Warning: lipgloss.Color(c.Warning),
		Error:   lipgloss.Color(c.Error),
		Muted:   lipgloss.Color(c.Muted),
		Surface: lipgloss.Color(c.Surface),
		Text:    lipgloss.Color(c.Text),
		Border:  lipgloss.Color(c.Border),

		StatusAdded:    colorOrDefault(c.Status.Added, c.Primary),
		StatusModified: colorOrDefault(c.Status.Modified, c.Warning),
		StatusDeleted:  colorOrDefault(c.Status.Deleted, c.Error),
		StatusIgnored:  colorOrDefault(c.Status.Ignored, c.Muted),

		Selected: colorOrDefault(c.Selected, c.Surface),
	}
}

// colorOrDefault returns the color if non-empty, otherwise returns the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// ExportTheme renders a built-in palette as a theme file in YAML.
func ExportTheme(name ThemeName) ([]byte, error) {
	p := GetPalette(name)
	tf := &ThemeFile{
		Name:    string(name),
		Version: "1",
		Colors: ThemeColors{
			Primary: string(p.Primary),
			Warning: string(p.Warning),
			Error:   string(p.Error),
			Muted:   string(p.Muted),
			Surface: string(p.Surface),
			Text:    string(p.Text),
			Border:  string(p.Border),
			Status: ThemeStatusColors{
				Added:    string(p.StatusAdded),
				Modified: string(p.StatusModified),
				Deleted:  string(p.StatusDeleted),
				Ignored:  string(p.StatusIgnored),
			},
			Selected: string(p.Selected),
		},
	}
	return yaml.Marshal(tf)
}
