package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the built-in key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default conflictpane key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeFilter: defaultFilterBindings(),
			ModeHelp:   defaultHelpBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdSelectNext, Description: "Select next conflict", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdSelectNext, Description: "Select next conflict", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdSelectPrev, Description: "Select previous conflict", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdSelectPrev, Description: "Select previous conflict", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdSelectFirst, Description: "Jump to first conflict", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdSelectLast, Description: "Jump to last conflict", Category: "Navigation"},

			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdEnterFilter, Description: "Filter conflicts by path", Category: "Filter"},
			{KeyType: tea.KeyEsc, Command: CmdClearFilter, Description: "Clear filter", Category: "Filter"},

			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdReload, Description: "Reload conflicts from git", Category: "Session"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Session"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Session"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Session"},
		},
	}
}

func defaultFilterBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeFilter,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdApplyFilter, Description: "Apply filter", Category: "Filter"},
			{KeyType: tea.KeyEsc, Command: CmdCancelFilter, Description: "Cancel filter", Category: "Filter"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Session"},
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdScrollDown, Description: "Scroll down", Category: "Help"},
			{KeyType: tea.KeyDown, Command: CmdScrollDown, Description: "Scroll down", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdScrollUp, Description: "Scroll up", Category: "Help"},
			{KeyType: tea.KeyUp, Command: CmdScrollUp, Description: "Scroll up", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdCloseHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyEsc, Command: CmdCloseHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Session"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Session"},
		},
	}
}
