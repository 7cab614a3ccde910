package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHelpPanel_Render(t *testing.T) {
	tests := []struct {
		name     string
		state    *RenderState
		contains []string
	}{
		{
			name:  "default sections",
			state: &RenderState{Width: 80, Height: 60},
			contains: []string{
				"conflictpane help",
				"Navigation",
				"Filter",
				"Session",
				"Reload conflicts from git",
			},
		},
		{
			name: "custom sections",
			state: &RenderState{
				Width:  80,
				Height: 30,
				HelpSections: []HelpSection{
					{Title: "Custom", Items: []HelpItem{{Key: "x", Description: "Do x"}}},
				},
			},
			contains: []string{"Custom", "Do x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewHelpPanel()
			out := ansi.Strip(p.Render(tt.state))
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			if p.Height() == 0 {
				t.Error("height should be set after render")
			}
		})
	}
}

func TestHelpPanel_InvalidState(t *testing.T) {
	p := NewHelpPanel()
	if got := p.Render(&RenderState{}); got != "[help panel: render error]" {
		t.Errorf("got %q", got)
	}
}

func TestHelpPanel_Scrolling(t *testing.T) {
	p := NewHelpPanel()

	top := ansi.Strip(p.Render(&RenderState{Width: 80, Height: 9}))
	if !strings.Contains(top, "▼") || strings.Contains(top, "▲") {
		t.Errorf("top of help should only offer scrolling down:\n%s", top)
	}

	bottom := ansi.Strip(p.Render(&RenderState{Width: 80, Height: 9, ScrollOffset: 1000}))
	if !strings.Contains(bottom, "▲") || strings.Contains(bottom, "▼") {
		t.Errorf("clamped scroll should only offer scrolling up:\n%s", bottom)
	}
	if !strings.Contains(bottom, "Quit") {
		t.Errorf("bottom of help should show the last item:\n%s", bottom)
	}
}
