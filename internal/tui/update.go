package tui

import (
	"github.com/Iron-Ham/conflictpane/internal/tui/keymap"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filter.Width = max(msg.Width-4, 10)
		return m, nil

	case conflictsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.logger.Error("loading conflicts failed", "error", msg.err)
			return m.pendingReload()
		}
		m.err = nil
		m.logger.Debug("conflicts loaded", "count", len(msg.conflicts))
		return m.attach(msg.conflicts).pendingReload()

	case ConflictsChangedMsg:
		return m.reload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == keymap.ModeFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case keymap.ModeFilter:
		return m.handleFilterKey(msg)
	case keymap.ModeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(msg, keymap.ModeNormal)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdSelectNext:
		m.list.SelectNext()
	case keymap.CmdSelectPrev:
		m.list.SelectPrev()
	case keymap.CmdSelectFirst:
		m.list.SelectFirst()
	case keymap.CmdSelectLast:
		m.list.SelectLast()
	case keymap.CmdEnterFilter:
		m.mode = keymap.ModeFilter
		m.prevFilter = m.list.Filter()
		m.filter.SetValue(m.prevFilter)
		m.filter.CursorEnd()
		return m, m.filter.Focus()
	case keymap.CmdClearFilter:
		m.list.SetFilter("")
		m.filter.SetValue("")
	case keymap.CmdReload:
		return m.reload()
	case keymap.CmdToggleHelp:
		m.mode = keymap.ModeHelp
		m.helpScroll = 0
		return m, nil
	case keymap.CmdQuit:
		return m, tea.Quit
	}

	m.syncElement()
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keymap.GetBinding(msg, keymap.ModeFilter); ok {
		switch cmd {
		case keymap.CmdApplyFilter:
			m.list.SetFilter(m.filter.Value())
			m.mode = keymap.ModeNormal
			m.filter.Blur()
			m.syncElement()
			return m, nil
		case keymap.CmdCancelFilter:
			m.list.SetFilter(m.prevFilter)
			m.filter.SetValue(m.prevFilter)
			m.mode = keymap.ModeNormal
			m.filter.Blur()
			m.syncElement()
			return m, nil
		case keymap.CmdQuit:
			return m, tea.Quit
		}
	}

	// Filter as the user types
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.list.SetFilter(m.filter.Value())
	m.syncElement()
	return m, cmd
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(msg, keymap.ModeHelp)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdScrollDown:
		m.helpScroll++
	case keymap.CmdScrollUp:
		m.helpScroll = max(m.helpScroll-1, 0)
	case keymap.CmdCloseHelp:
		m.mode = keymap.ModeNormal
	case keymap.CmdQuit:
		return m, tea.Quit
	}
	return m, nil
}
