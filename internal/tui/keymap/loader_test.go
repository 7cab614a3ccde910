package keymap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParseKeySpec(t *testing.T) {
	tests := []struct {
		spec        string
		wantKeyType tea.KeyType
		wantRune    rune
		wantMods    Modifier
		wantErr     bool
	}{
		{"enter", tea.KeyEnter, 0, ModNone, false},
		{"esc", tea.KeyEsc, 0, ModNone, false},
		{"escape", tea.KeyEsc, 0, ModNone, false},
		{"tab", tea.KeyTab, 0, ModNone, false},
		{"shift+tab", tea.KeyShiftTab, 0, ModNone, false},
		{"j", tea.KeyRunes, 'j', ModNone, false},
		{"ctrl+r", tea.KeyCtrlR, 0, ModNone, false},
		{"ctrl+a", tea.KeyCtrlA, 0, ModNone, false},
		{"alt+x", tea.KeyRunes, 'x', ModAlt, false},
		{"pgdown", tea.KeyPgDown, 0, ModNone, false},
		{"bogus", 0, 0, ModNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			keyType, r, mods, err := ParseKeySpec(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKeySpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if keyType != tt.wantKeyType {
				t.Errorf("ParseKeySpec(%q) keyType = %v, want %v", tt.spec, keyType, tt.wantKeyType)
			}
			if r != tt.wantRune {
				t.Errorf("ParseKeySpec(%q) rune = %q, want %q", tt.spec, r, tt.wantRune)
			}
			if mods != tt.wantMods {
				t.Errorf("ParseKeySpec(%q) mods = %v, want %v", tt.spec, mods, tt.wantMods)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	t.Run("nil config is default", func(t *testing.T) {
		km, err := Build(nil)
		if err != nil {
			t.Fatalf("Build(nil) error: %v", err)
		}
		if km.Name != "default" {
			t.Errorf("Name = %q", km.Name)
		}
	})

	t.Run("override replaces command bindings", func(t *testing.T) {
		km, err := Build(&KeymapConfig{
			Name: "custom",
			Modes: map[string][]KeyBindingSpec{
				"normal": {{Key: "n", Command: "select_next"}},
			},
		})
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}

		if cmd, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, ModeNormal); !ok || cmd != CmdSelectNext {
			t.Errorf("n should select next, got %q %v", cmd, ok)
		}
		if _, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, ModeNormal); ok {
			t.Error("default j binding should be replaced")
		}
		if cmd, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, ModeNormal); cmd != CmdSelectPrev {
			t.Error("unrelated defaults should be kept")
		}

		b := km.GetBindingsForCommand(CmdSelectNext, ModeNormal)
		if len(b) != 1 || b[0].Description != "Select next conflict" || b[0].Category != "Navigation" {
			t.Errorf("override should inherit description and category: %+v", b)
		}
	})

	errTests := []struct {
		name string
		cfg  *KeymapConfig
		want string
	}{
		{"unknown mode", &KeymapConfig{Modes: map[string][]KeyBindingSpec{"visual": nil}}, "unknown keymap mode"},
		{"unknown command", &KeymapConfig{Modes: map[string][]KeyBindingSpec{"normal": {{Key: "x", Command: "explode"}}}}, "unknown command"},
		{"command from other mode", &KeymapConfig{Modes: map[string][]KeyBindingSpec{"filter": {{Key: "x", Command: "reload"}}}}, "unknown command"},
		{"bad key", &KeymapConfig{Modes: map[string][]KeyBindingSpec{"normal": {{Key: "hyper+x", Command: "reload"}}}}, "unrecognized key spec"},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Build() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yaml")
	content := `name: mine
modes:
  normal:
    - key: ctrl+r
      command: reload
      description: Refresh
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	km, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if km.Name != "mine" {
		t.Errorf("Name = %q", km.Name)
	}
	cmd, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyCtrlR}, ModeNormal)
	if !ok || cmd != CmdReload {
		t.Errorf("ctrl+r = %q %v", cmd, ok)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("modes: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected parse error")
	}
}
