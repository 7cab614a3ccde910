package keymap

import (
	"fmt"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// KeymapConfig represents a serializable keymap configuration loaded from
// a YAML file. Bindings listed for a command replace that command's default
// bindings in the same mode; commands not listed keep their defaults.
type KeymapConfig struct {
	Name        string                      `yaml:"name"`
	Description string                      `yaml:"description"`
	Modes       map[string][]KeyBindingSpec `yaml:"modes"`
}

// KeyBindingSpec is a serializable key binding specification.
type KeyBindingSpec struct {
	Key         string `yaml:"key"`     // e.g., "ctrl+r", "j", "enter"
	Command     string `yaml:"command"` // Command name
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`
}

// LoadFile reads a keymap configuration from a YAML file and applies it on
// top of the default keymap.
func LoadFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	var cfg KeymapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing keymap file: %w", err)
	}

	return Build(&cfg)
}

// Build applies cfg on top of the default keymap.
func Build(cfg *KeymapConfig) (*Keymap, error) {
	km := DefaultKeymap()
	if cfg == nil {
		return km, nil
	}
	if cfg.Name != "" {
		km.Name = cfg.Name
	}
	if cfg.Description != "" {
		km.Description = cfg.Description
	}

	for modeName, specs := range cfg.Modes {
		mb, ok := km.Modes[Mode(modeName)]
		if !ok {
			return nil, fmt.Errorf("unknown keymap mode: %s", modeName)
		}

		known := commandsOf(mb)
		replaced := make(map[Command]bool)
		var added []KeyBinding

		for _, spec := range specs {
			cmd := Command(spec.Command)
			if !slices.Contains(known, cmd) {
				return nil, fmt.Errorf("mode %s: unknown command %q", modeName, spec.Command)
			}
			keyType, r, mods, err := ParseKeySpec(spec.Key)
			if err != nil {
				return nil, fmt.Errorf("mode %s: %w", modeName, err)
			}

			desc, category := spec.Description, spec.Category
			if defaults := km.GetBindingsForCommand(cmd, mb.Mode); len(defaults) > 0 {
				desc = cmpOr(desc, defaults[0].Description)
				category = cmpOr(category, defaults[0].Category)
			}

			replaced[cmd] = true
			added = append(added, KeyBinding{
				KeyType:     keyType,
				Rune:        r,
				Modifiers:   mods,
				Command:     cmd,
				Description: desc,
				Category:    category,
			})
		}

		// Custom bindings take precedence over the remaining defaults
		kept := slices.DeleteFunc(slices.Clone(mb.Bindings), func(b KeyBinding) bool {
			return replaced[b.Command]
		})
		mb.Bindings = append(added, kept...)
	}

	return km, nil
}

func commandsOf(mb *ModeBindings) []Command {
	var cmds []Command
	for _, b := range mb.Bindings {
		if !slices.Contains(cmds, b.Command) {
			cmds = append(cmds, b.Command)
		}
	}
	return cmds
}

func cmpOr(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// ParseKeySpec parses a key specification string into KeyType, Rune, and Modifiers.
// Examples: "ctrl+r", "shift+tab", "j", "enter", "alt+left"
func ParseKeySpec(spec string) (keyType tea.KeyType, r rune, mods Modifier, err error) {
	remaining := spec
	for {
		var ok bool
		switch {
		case len(remaining) > 5 && strings.HasPrefix(remaining, "ctrl+"):
			mods |= ModCtrl
			remaining, ok = remaining[5:], true
		case len(remaining) > 4 && strings.HasPrefix(remaining, "alt+"):
			mods |= ModAlt
			remaining, ok = remaining[4:], true
		case len(remaining) > 6 && strings.HasPrefix(remaining, "shift+"):
			mods |= ModShift
			remaining, ok = remaining[6:], true
		}
		if !ok {
			break
		}
	}

	switch remaining {
	case "enter":
		return tea.KeyEnter, 0, mods, nil
	case "tab":
		if mods&ModShift != 0 {
			return tea.KeyShiftTab, 0, mods &^ ModShift, nil
		}
		return tea.KeyTab, 0, mods, nil
	case "esc", "escape":
		return tea.KeyEsc, 0, mods, nil
	case "space":
		return tea.KeySpace, 0, mods, nil
	case "backspace":
		return tea.KeyBackspace, 0, mods, nil
	case "up":
		return tea.KeyUp, 0, mods, nil
	case "down":
		return tea.KeyDown, 0, mods, nil
	case "left":
		return tea.KeyLeft, 0, mods, nil
	case "right":
		return tea.KeyRight, 0, mods, nil
	case "home":
		return tea.KeyHome, 0, mods, nil
	case "end":
		return tea.KeyEnd, 0, mods, nil
	case "pgup", "pageup":
		return tea.KeyPgUp, 0, mods, nil
	case "pgdown", "pagedown":
		return tea.KeyPgDown, 0, mods, nil
	}

	// Map ctrl+letter to tea.KeyCtrlA through tea.KeyCtrlZ
	if mods&ModCtrl != 0 && len(remaining) == 1 {
		ch := remaining[0]
		if ch >= 'a' && ch <= 'z' {
			return tea.KeyCtrlA + tea.KeyType(ch-'a'), 0, mods &^ ModCtrl, nil
		}
	}

	if len(remaining) == 1 {
		return tea.KeyRunes, rune(remaining[0]), mods, nil
	}

	return 0, 0, 0, fmt.Errorf("unrecognized key spec: %s", spec)
}
