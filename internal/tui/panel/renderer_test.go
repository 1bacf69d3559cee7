package panel

import (
	"testing"

	"github.com/Iron-Ham/spyglass/internal/event"
	"github.com/Iron-Ham/spyglass/internal/monitor"
)

func TestRenderState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		state   RenderState
		wantErr error
	}{
		{"zero width", RenderState{Width: 0, Height: 24}, ErrInvalidWidth},
		{"negative width", RenderState{Width: -1, Height: 24}, ErrInvalidWidth},
		{"zero height", RenderState{Width: 80, Height: 0}, ErrInvalidHeight},
		{"nil theme", RenderState{Width: 80, Height: 24}, ErrNilTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.state.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderState_ValidateBasic(t *testing.T) {
	state := RenderState{Width: 80, Height: 24}
	if err := state.ValidateBasic(); err != nil {
		t.Errorf("ValidateBasic should pass without a theme: %v", err)
	}
}

func TestRenderState_GetEvent(t *testing.T) {
	state := NewRenderState(80, 24)
	state.Events = []monitor.Captured{
		{Seq: 1, Event: event.NewRecord("panel:toggle", "host", nil)},
	}

	if _, ok := state.GetEvent(0); !ok {
		t.Error("GetEvent(0) should succeed")
	}
	if _, ok := state.GetEvent(1); ok {
		t.Error("GetEvent(1) should be out of bounds")
	}
	if _, ok := state.GetEvent(-1); ok {
		t.Error("GetEvent(-1) should be out of bounds")
	}
}

func TestRenderState_VisibleRange(t *testing.T) {
	state := NewRenderState(80, 24)
	for i := 0; i < 10; i++ {
		state.Events = append(state.Events, monitor.Captured{Seq: uint64(i + 1)})
	}

	tests := []struct {
		name           string
		scroll         int
		slots          int
		wantStart, end int
	}{
		{"all fit", 0, 20, 0, 10},
		{"window at top", 0, 4, 0, 4},
		{"window in middle", 3, 4, 3, 7},
		{"scroll past end clamps", 15, 4, 9, 10},
		{"negative scroll clamps", -2, 4, 0, 4},
		{"zero slots", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state.ScrollOffset = tt.scroll
			start, end := state.VisibleRange(tt.slots)
			if start != tt.wantStart || end != tt.end {
				t.Errorf("VisibleRange(%d) = (%d, %d), want (%d, %d)",
					tt.slots, start, end, tt.wantStart, tt.end)
			}
		})
	}
}

func TestRenderState_VisibleRange_Empty(t *testing.T) {
	state := NewRenderState(80, 24)
	if start, end := state.VisibleRange(10); start != 0 || end != 0 {
		t.Errorf("Empty state VisibleRange = (%d, %d), want (0, 0)", start, end)
	}
}

func TestNewRenderState(t *testing.T) {
	state := NewRenderState(100, 40)
	if state.Width != 100 || state.Height != 40 {
		t.Errorf("Dimensions = (%d, %d), want (100, 40)", state.Width, state.Height)
	}
	if state.Events == nil {
		t.Error("Events should be initialized")
	}
	if state.Selected != -1 {
		t.Errorf("Selected = %d, want -1", state.Selected)
	}
}
