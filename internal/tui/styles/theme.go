package styles

import "github.com/charmbracelet/lipgloss"

// Theme implements panel.Theme over a color palette and adds the styles the
// conflict list needs.
//
// The panel.Theme interface is defined in internal/tui/panel to avoid
// circular imports between styles and panel packages.
type Theme struct {
	palette *ColorPalette
}

// NewTheme creates a Theme for the given palette. A nil palette selects the
// default palette.
func NewTheme(p *ColorPalette) *Theme {
	if p == nil {
		p = DefaultPalette()
	}
	return &Theme{palette: p}
}

// Palette returns the colors behind the theme.
func (t *Theme) Palette() *ColorPalette { return t.palette }

func (t *Theme) Primary() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.palette.Primary) }
func (t *Theme) Muted() lipgloss.Style   { return lipgloss.NewStyle().Foreground(t.palette.Muted) }
func (t *Theme) Error() lipgloss.Style   { return lipgloss.NewStyle().Foreground(t.palette.Error) }
func (t *Theme) Warning() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.palette.Warning) }
func (t *Theme) Text() lipgloss.Style    { return lipgloss.NewStyle().Foreground(t.palette.Text) }

func (t *Theme) Border() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Border)
}

// Title styles pane titles.
func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.palette.Primary)
}

// Box styles the frame around a pane.
func (t *Theme) Box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.palette.Border).
		Padding(0, 1)
}

// Selected styles the highlighted row.
func (t *Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Background(t.palette.Selected)
}

// Status returns the style for a displayed file status (added, modified,
// deleted, ignored). Unknown statuses render as plain text.
func (t *Theme) Status(status string) lipgloss.Style {
	switch status {
	case "added":
		return lipgloss.NewStyle().Foreground(t.palette.StatusAdded)
	case "modified":
		return lipgloss.NewStyle().Foreground(t.palette.StatusModified)
	case "deleted":
		return lipgloss.NewStyle().Foreground(t.palette.StatusDeleted)
	case "ignored":
		return lipgloss.NewStyle().Foreground(t.palette.StatusIgnored)
	default:
		return t.Text()
	}
}

// StatusIcon returns the glyph drawn for a displayed file status.
func (t *Theme) StatusIcon(status string) string { return StatusIcon(status) }

// StatusIcon returns the glyph drawn for a displayed file status.
func StatusIcon(status string) string {
	switch status {
	case "added":
		return "+"
	case "modified":
		return "●"
	case "deleted":
		return "-"
	case "ignored":
		return "="
	default:
		return "?"
	}
}
