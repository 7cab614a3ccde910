package panel

import (
	"fmt"
	"strings"
)

// HelpPanel renders the help overlay with keybindings and scrolling support.
type HelpPanel struct {
	height int
}

// NewHelpPanel creates a new HelpPanel.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{}
}

// Render produces the help panel output.
func (p *HelpPanel) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[help panel: render error]"
	}

	sections := state.HelpSections
	if len(sections) == 0 {
		sections = DefaultHelpSections()
	}

	var lines []string

	title := "conflictpane help"
	subtitle := "Use j/k to scroll, ? or esc to close."
	if state.Theme != nil {
		title = state.Theme.Title().Render(title)
		subtitle = state.Theme.Muted().Render(subtitle)
	}
	lines = append(lines, title, subtitle, "")

	for _, section := range sections {
		sectionTitle := "▸ " + section.Title
		if state.Theme != nil {
			sectionTitle = state.Theme.Primary().Bold(true).Render(sectionTitle)
		}
		lines = append(lines, sectionTitle)

		for _, item := range section.Items {
			keyStr := item.Key
			descStr := item.Description
			if state.Theme != nil {
				keyStr = state.Theme.Warning().Render(keyStr)
				descStr = state.Theme.Muted().Render(descStr)
			}
			lines = append(lines, fmt.Sprintf("    %s  %s", keyStr, descStr))
		}
		lines = append(lines, "")
	}

	// Leave room for the frame and scroll indicator
	maxLines := max(state.Height-4, 5)

	maxScroll := max(len(lines)-maxLines, 0)
	scroll := min(max(state.ScrollOffset, 0), maxScroll)
	endLine := min(scroll+maxLines, len(lines))
	visibleLines := lines[scroll:endLine]

	content := strings.Join(visibleLines, "\n")
	if maxScroll > 0 {
		scrollInfo := fmt.Sprintf(" [%d/%d] ", scroll+1, maxScroll+1)
		if state.Theme != nil {
			scrollInfo = state.Theme.Muted().Render(scrollInfo)
		}
		if scroll > 0 {
			scrollInfo = "▲ " + scrollInfo
		}
		if scroll < maxScroll {
			scrollInfo += " ▼"
		}
		content += "\n" + scrollInfo
		p.height = len(visibleLines) + 1
	} else {
		p.height = len(visibleLines)
	}

	return content
}

// Height returns the rendered height of the panel.
func (p *HelpPanel) Height() int {
	return p.height
}

// DefaultHelpSections returns the default help sections.
func DefaultHelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Items: []HelpItem{
				{Key: "j/↓  k/↑", Description: "Select next / previous conflict"},
				{Key: "g  G", Description: "Jump to first / last conflict"},
			},
		},
		{
			Title: "Filter",
			Items: []HelpItem{
				{Key: "/", Description: "Filter conflicts by path"},
				{Key: "Enter", Description: "Apply filter"},
				{Key: "Esc", Description: "Clear filter"},
			},
		},
		{
			Title: "Session",
			Items: []HelpItem{
				{Key: "r", Description: "Reload conflicts from git"},
				{Key: "?", Description: "Toggle this help panel"},
				{Key: "q  Ctrl+C", Description: "Quit"},
			},
		},
	}
}
