// Package panel provides interfaces and types for TUI panel rendering.
// Each pane in the TUI (conflict list, help overlay) implements the
// PanelRenderer interface for consistent rendering behavior.
package panel

import (
	"errors"

	"github.com/Iron-Ham/conflictpane/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
)

// Common errors returned by RenderState validation.
var (
	ErrInvalidWidth  = errors.New("width must be positive")
	ErrInvalidHeight = errors.New("height must be positive")
	ErrNilTheme      = errors.New("theme cannot be nil")
)

// PanelRenderer defines the interface for rendering UI panels.
type PanelRenderer interface {
	// Render produces the visual output for this panel given the current state.
	// The returned string contains the rendered content, potentially with
	// ANSI escape codes for styling.
	Render(state *RenderState) string

	// Height returns the rendered height of the panel in terminal rows.
	Height() int
}

// Theme provides styling configuration for panel rendering.
// This interface abstracts the styling system, allowing panels to
// request styles without depending on concrete style implementations.
type Theme interface {
	view.RowTheme

	// Primary returns the primary style for emphasis.
	Primary() lipgloss.Style
	// Warning returns the style for warning states.
	Warning() lipgloss.Style
	// Error returns the style for error states.
	Error() lipgloss.Style
	// Border returns the style for borders.
	Border() lipgloss.Style
	// Title returns the style for pane titles.
	Title() lipgloss.Style
}

// HelpSection represents a section of help content with keybindings.
type HelpSection struct {
	// Title is the section name (e.g., "Navigation").
	Title string
	// Items contains the keybindings in this section.
	Items []HelpItem
}

// HelpItem represents a single keybinding in the help panel.
type HelpItem struct {
	// Key is the keybinding (e.g., "j/k", "Enter").
	Key string
	// Description explains what the keybinding does.
	Description string
}

// RenderState holds the state needed for rendering a panel.
type RenderState struct {
	// Width is the available width in terminal columns.
	Width int

	// Height is the available height in terminal rows.
	Height int

	// Theme provides styling for the panel.
	Theme Theme

	// ScrollOffset is the current scroll position for scrollable panels.
	ScrollOffset int

	// Focused indicates whether this panel currently has focus.
	Focused bool

	// HelpSections contains help text organized by section.
	HelpSections []HelpSection
}

// Validate checks that the RenderState has valid values for rendering.
func (rs *RenderState) Validate() error {
	if err := rs.ValidateBasic(); err != nil {
		return err
	}
	if rs.Theme == nil {
		return ErrNilTheme
	}
	return nil
}

// ValidateBasic performs minimal validation checking only dimensions.
func (rs *RenderState) ValidateBasic() error {
	if rs.Width <= 0 {
		return ErrInvalidWidth
	}
	if rs.Height <= 0 {
		return ErrInvalidHeight
	}
	return nil
}

// VisibleRange returns the window [start, end) of count items that keeps
// index selected on screen given the available slots and the current
// scroll offset.
func VisibleRange(count, selected, offset, slots int) (start, end int) {
	if count == 0 || slots <= 0 {
		return 0, 0
	}

	start = max(offset, 0)
	if selected >= 0 {
		if selected < start {
			start = selected
		}
		if selected >= start+slots {
			start = selected - slots + 1
		}
	}
	start = min(start, max(count-slots, 0))
	end = min(start+slots, count)

	return start, end
}

// NewRenderState creates a RenderState with the given dimensions and theme.
func NewRenderState(width, height int, theme Theme) *RenderState {
	return &RenderState{
		Width:  width,
		Height: height,
		Theme:  theme,
	}
}
