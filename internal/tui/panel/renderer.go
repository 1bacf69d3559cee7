// Package panel provides interfaces and types for TUI panel rendering.
// Each panel in the TUI (event stream, agent viewer, help overlay) implements
// the Renderer interface for consistent rendering behavior.
package panel

import (
	"errors"

	"github.com/Iron-Ham/spyglass/internal/agent"
	"github.com/Iron-Ham/spyglass/internal/monitor"
	"github.com/charmbracelet/lipgloss"
)

// Common errors returned by RenderState validation.
var (
	ErrInvalidWidth  = errors.New("width must be positive")
	ErrInvalidHeight = errors.New("height must be positive")
	ErrNilTheme      = errors.New("theme cannot be nil")
)

// Renderer defines the interface for rendering UI panels.
// Each panel type implements this interface to provide consistent
// rendering behavior across the TUI.
type Renderer interface {
	// Render produces the visual output for this panel given the current state.
	// The returned string contains the rendered content, potentially with
	// ANSI escape codes for styling.
	Render(state *RenderState) string

	// Height returns the rendered height of the panel in terminal rows.
	// This is useful for layout calculations and ensuring panels fit
	// within available space.
	Height() int
}

// Theme provides styling configuration for panel rendering.
// This interface abstracts the styling system, allowing panels to
// request styles without depending on concrete style implementations.
type Theme interface {
	// Primary returns the primary style for emphasis.
	Primary() lipgloss.Style
	// Secondary returns the secondary style for less prominent elements.
	Secondary() lipgloss.Style
	// Muted returns the muted style for de-emphasized elements.
	Muted() lipgloss.Style
	// Error returns the style for error states.
	Error() lipgloss.Style
	// Warning returns the style for warning states.
	Warning() lipgloss.Style
	// Surface returns the style for surface/background areas.
	Surface() lipgloss.Style
	// Border returns the style for borders.
	Border() lipgloss.Style
}

// HelpSection represents a section of help content with keybindings.
type HelpSection struct {
	// Title is the section name (e.g., "Navigation", "Capture").
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

// RenderState holds the complete state needed for rendering a panel.
// It provides a snapshot of the TUI state at render time, decoupling
// panel renderers from the full application model.
type RenderState struct {
	// Width is the available width in terminal columns.
	Width int

	// Height is the available height in terminal rows.
	Height int

	// Theme provides styling for the panel.
	// Required for rendering styled output.
	Theme Theme

	// Events holds the captured events to display, already filtered.
	// May be empty but should not be nil.
	Events []monitor.Captured

	// TotalEvents is the number of events in the buffer before filtering.
	// Used to show "N of M" when a filter hides rows.
	TotalEvents int

	// Paused indicates whether capture is currently suspended.
	Paused bool

	// TypeQuery and SourceQuery are the active filter queries.
	TypeQuery   string
	SourceQuery string

	// FilterActive indicates whether any filter query is non-empty.
	FilterActive bool

	// Selected is the index of the selected row in Events.
	// Set to -1 when nothing is selected.
	Selected int

	// ScrollOffset is the current scroll position for scrollable panels.
	// Interpretation varies by panel type.
	ScrollOffset int

	// TimestampFormat is the time layout used for event rows.
	// Falls back to a default when empty.
	TimestampFormat string

	// PayloadLines caps the number of payload lines shown for an
	// expanded row. Zero means no cap.
	PayloadLines int

	// Manifest is the loaded agent manifest, or nil when no agent
	// has been loaded.
	Manifest *agent.Manifest

	// ManifestErr holds the most recent manifest load failure, if any.
	ManifestErr error

	// HelpSections contains help text organized by section.
	// Used by the help panel to display categorized keybindings.
	HelpSections []HelpSection

	// Focused indicates whether this panel currently has focus.
	// Used to adjust border styling and visual emphasis.
	Focused bool
}

// Validate checks that the RenderState has valid values for rendering.
// Returns an error if any required fields are invalid.
func (rs *RenderState) Validate() error {
	if rs.Width <= 0 {
		return ErrInvalidWidth
	}
	if rs.Height <= 0 {
		return ErrInvalidHeight
	}
	if rs.Theme == nil {
		return ErrNilTheme
	}
	return nil
}

// ValidateBasic performs minimal validation checking only dimensions.
// Use this when theme may be optional (e.g., for tests with mock output).
func (rs *RenderState) ValidateBasic() error {
	if rs.Width <= 0 {
		return ErrInvalidWidth
	}
	if rs.Height <= 0 {
		return ErrInvalidHeight
	}
	return nil
}

// EventCount returns the number of events in the state.
func (rs *RenderState) EventCount() int {
	return len(rs.Events)
}

// GetEvent returns the event at the given index, or false if out of bounds.
func (rs *RenderState) GetEvent(index int) (monitor.Captured, bool) {
	if index < 0 || index >= len(rs.Events) {
		return monitor.Captured{}, false
	}
	return rs.Events[index], true
}

// HasEvents returns true if there is at least one event to display.
func (rs *RenderState) HasEvents() bool {
	return len(rs.Events) > 0
}

// VisibleRange calculates the range of events visible given the scroll offset
// and available slots. Returns start (inclusive) and end (exclusive) indices.
func (rs *RenderState) VisibleRange(availableSlots int) (start, end int) {
	count := rs.EventCount()
	if count == 0 || availableSlots <= 0 {
		return 0, 0
	}

	start = max(rs.ScrollOffset, 0)
	start = min(start, count-1)

	end = min(start+availableSlots, count)

	return start, end
}

// NewRenderState creates a RenderState with the given dimensions.
// Events slice is initialized to empty, Selected to -1.
func NewRenderState(width, height int) *RenderState {
	return &RenderState{
		Width:    width,
		Height:   height,
		Events:   make([]monitor.Captured, 0),
		Selected: -1,
	}
}
