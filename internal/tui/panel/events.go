package panel

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Iron-Ham/spyglass/internal/util"
)

// defaultTimestampFormat is used when RenderState carries no layout.
const defaultTimestampFormat = "15:04:05.000"

// EventsPanel renders the captured event stream with optional filter
// status, selection highlight, and inline payload expansion.
type EventsPanel struct {
	height int
}

// NewEventsPanel creates a new EventsPanel.
func NewEventsPanel() *EventsPanel {
	return &EventsPanel{}
}

// Render produces the event stream output.
func (p *EventsPanel) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[events panel: render error]"
	}

	var lines []string

	lines = append(lines, p.renderStatus(state))
	if state.FilterActive {
		lines = append(lines, p.renderFilter(state))
	}
	lines = append(lines, "")

	if !state.HasEvents() {
		placeholder := "Waiting for events..."
		if state.FilterActive && state.TotalEvents > 0 {
			placeholder = "No events match the current filter"
		}
		if state.Theme != nil {
			placeholder = state.Theme.Muted().Render(placeholder)
		}
		lines = append(lines, placeholder)
		p.height = len(lines)
		return strings.Join(lines, "\n")
	}

	availableSlots := state.Height - len(lines) - 1
	start, end := state.VisibleRange(availableSlots)

	for i := start; i < end; i++ {
		entry := state.Events[i]
		lines = append(lines, p.renderRow(state, i))
		if entry.Expanded {
			lines = append(lines, p.renderPayload(state, entry.Event.Payload())...)
		}
	}

	if end < state.EventCount() {
		more := fmt.Sprintf("  ... %d more below", state.EventCount()-end)
		if state.Theme != nil {
			more = state.Theme.Muted().Render(more)
		}
		lines = append(lines, more)
	}

	p.height = len(lines)
	return strings.Join(lines, "\n")
}

// renderStatus builds the top status line: capture state and counts.
func (p *EventsPanel) renderStatus(state *RenderState) string {
	count := fmt.Sprintf("%d events", state.EventCount())
	if state.FilterActive && state.EventCount() != state.TotalEvents {
		count = fmt.Sprintf("%d of %d events", state.EventCount(), state.TotalEvents)
	}
	if state.Theme != nil {
		count = state.Theme.Secondary().Render(count)
	}

	if !state.Paused {
		return count
	}

	badge := "PAUSED"
	if state.Theme != nil {
		badge = state.Theme.Warning().Bold(true).Render(badge)
	}
	return count + "  " + badge
}

// renderFilter builds the active-filter summary line.
func (p *EventsPanel) renderFilter(state *RenderState) string {
	var parts []string
	if state.TypeQuery != "" {
		parts = append(parts, "type~"+state.TypeQuery)
	}
	if state.SourceQuery != "" {
		parts = append(parts, "source~"+state.SourceQuery)
	}
	line := "filter: " + strings.Join(parts, "  ")
	if state.Theme != nil {
		line = state.Theme.Secondary().Render(line)
	}
	return line
}

// renderRow builds a single event row: sequence id, timestamp, type, source.
func (p *EventsPanel) renderRow(state *RenderState, index int) string {
	entry := state.Events[index]

	layout := state.TimestampFormat
	if layout == "" {
		layout = defaultTimestampFormat
	}

	seq := fmt.Sprintf("#%d", entry.Seq)
	ts := entry.Event.Timestamp().Format(layout)
	eventType := entry.Event.EventType()
	source := entry.Event.Source()

	marker := "  "
	if index == state.Selected {
		marker = "> "
	}

	if state.Theme != nil {
		seq = state.Theme.Muted().Render(util.PadRight(seq, 6))
		ts = state.Theme.Muted().Render(ts)
		eventType = state.Theme.Primary().Render(eventType)
		source = state.Theme.Secondary().Render(source)
		if index == state.Selected {
			marker = state.Theme.Primary().Render(marker)
		}
	} else {
		seq = util.PadRight(seq, 6)
	}

	row := fmt.Sprintf("%s%s %s  %s  %s", marker, seq, ts, eventType, source)
	return util.TruncateANSI(row, state.Width)
}

// renderPayload builds the indented payload block for an expanded row.
func (p *EventsPanel) renderPayload(state *RenderState, payload any) []string {
	var body string
	if payload == nil {
		body = "(no payload)"
	} else if data, err := json.MarshalIndent(payload, "", "  "); err == nil {
		body = string(data)
	} else {
		body = fmt.Sprintf("%+v", payload)
	}

	raw := strings.Split(body, "\n")
	capped := raw
	if state.PayloadLines > 0 && len(raw) > state.PayloadLines {
		capped = raw[:state.PayloadLines]
	}

	out := make([]string, 0, len(capped)+1)
	for _, line := range capped {
		styled := "    " + line
		if state.Theme != nil {
			styled = "    " + state.Theme.Muted().Render(line)
		}
		out = append(out, util.TruncateANSI(styled, state.Width))
	}
	if len(capped) < len(raw) {
		trimmed := fmt.Sprintf("    ... %d more lines", len(raw)-len(capped))
		if state.Theme != nil {
			trimmed = state.Theme.Muted().Render(trimmed)
		}
		out = append(out, trimmed)
	}
	return out
}

// Height returns the rendered height of the panel.
func (p *EventsPanel) Height() int {
	return p.height
}
