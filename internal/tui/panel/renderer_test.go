package panel

import (
	"errors"
	"testing"

	"github.com/Iron-Ham/conflictpane/internal/tui/styles"
)

var _ Theme = (*styles.Theme)(nil)

func TestRenderState_Validate(t *testing.T) {
	theme := styles.NewTheme(nil)

	tests := []struct {
		name    string
		state   *RenderState
		wantErr error
	}{
		{"valid", NewRenderState(80, 24, theme), nil},
		{"zero width", &RenderState{Width: 0, Height: 24, Theme: theme}, ErrInvalidWidth},
		{"negative height", &RenderState{Width: 80, Height: -1, Theme: theme}, ErrInvalidHeight},
		{"nil theme", &RenderState{Width: 80, Height: 24}, ErrNilTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.state.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderState_ValidateBasic(t *testing.T) {
	if err := (&RenderState{Width: 10, Height: 10}).ValidateBasic(); err != nil {
		t.Errorf("theme should be optional: %v", err)
	}
	if err := (&RenderState{Width: 10}).ValidateBasic(); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("got %v, want ErrInvalidHeight", err)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                          string
		count, selected, offset, slot int
		wantStart, wantEnd            int
	}{
		{"empty", 0, 0, 0, 5, 0, 0},
		{"no slots", 10, 0, 0, 0, 0, 0},
		{"all fit", 3, 2, 0, 5, 0, 3},
		{"selection below window", 10, 7, 0, 5, 3, 8},
		{"selection above window", 10, 1, 4, 5, 1, 6},
		{"selection inside window", 10, 5, 3, 5, 3, 8},
		{"offset past end", 10, 9, 20, 5, 5, 10},
		{"negative offset", 10, 0, -3, 5, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleRange(tt.count, tt.selected, tt.offset, tt.slot)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
