package tui

import (
	"strings"

	"github.com/Iron-Ham/conflictpane/internal/tui/keymap"
	"github.com/Iron-Ham/conflictpane/internal/tui/panel"
	"github.com/charmbracelet/lipgloss"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// View renders the model.
func (m Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	// Box border takes two rows and two columns, padding two more columns
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer)-2, 1)
	state := panel.NewRenderState(max(width-4, 1), bodyHeight, m.theme)

	var body string
	if m.mode == keymap.ModeHelp {
		state.ScrollOffset = m.helpScroll
		state.HelpSections = HelpSections(m.keymap)
		body = m.help.Render(state)
	} else {
		body = m.renderPane(state)
	}

	box := m.theme.Box().Width(max(width-2, 1)).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, box, footer)
}

// renderPane draws the merge-conflicts pane through its stub handle. The
// attached list renders itself; before that the stub placeholder shows.
func (m Model) renderPane(state *panel.RenderState) string {
	if out, ok := m.handle.Call("Render", state); ok && len(out) == 1 {
		if s, ok := out[0].(string); ok {
			return s
		}
	}
	return m.renderPlaceholder(state)
}

func (m Model) renderPlaceholder(state *panel.RenderState) string {
	lines := []string{m.theme.Title().Render(m.handle.GetTitle())}
	switch {
	case m.err != nil:
		lines = append(lines, m.theme.Error().Render("error: "+m.err.Error()))
	case m.loading:
		lines = append(lines, m.theme.Muted().Render("Loading merge conflicts…"))
	default:
		lines = append(lines, m.theme.Muted().Render("No repository loaded"))
	}
	return lipgloss.NewStyle().MaxWidth(state.Width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHeader() string {
	title := m.theme.Primary().Bold(true).Render("conflictpane")
	pane := m.theme.Text().Render(m.handle.GetTitle())
	header := title + "  " + pane
	if m.loading && m.loaded {
		header += "  " + m.theme.Muted().Render("(reloading)")
	}
	return header
}

func (m Model) renderFooter() string {
	if m.mode == keymap.ModeFilter {
		return m.filter.View()
	}
	if m.err != nil && m.loaded {
		return m.theme.Error().Render("reload failed: " + m.err.Error())
	}
	return m.theme.Muted().Render("j/k move  / filter  r reload  ? help  q quit")
}

// HelpSections builds help content from the normal mode bindings of km,
// one section per category.
func HelpSections(km *keymap.Keymap) []panel.HelpSection {
	byCategory := km.GetBindingsByCategory(keymap.ModeNormal)

	var sections []panel.HelpSection
	for _, category := range km.GetCategories(keymap.ModeNormal) {
		section := panel.HelpSection{Title: category}
		index := make(map[keymap.Command]int)
		for _, b := range byCategory[category] {
			if i, ok := index[b.Command]; ok {
				section.Items[i].Key += "/" + b.String()
				continue
			}
			index[b.Command] = len(section.Items)
			section.Items = append(section.Items, panel.HelpItem{
				Key:         b.String(),
				Description: b.Description,
			})
		}
		sections = append(sections, section)
	}
	return sections
}
