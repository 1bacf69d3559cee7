package panel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Iron-Ham/spyglass/internal/util"
)

// AgentPanel renders the agent capability viewer: identity, capability
// flags, and tool descriptors from the loaded manifest.
type AgentPanel struct {
	height int
}

// NewAgentPanel creates a new AgentPanel.
func NewAgentPanel() *AgentPanel {
	return &AgentPanel{}
}

// Render produces the agent viewer output.
func (p *AgentPanel) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[agent panel: render error]"
	}

	var lines []string

	if state.ManifestErr != nil {
		msg := "Manifest error: " + state.ManifestErr.Error()
		if state.Theme != nil {
			msg = state.Theme.Error().Render(msg)
		}
		lines = append(lines, util.TruncateANSI(msg, state.Width))
		lines = append(lines, "")
	}

	if state.Manifest == nil {
		placeholder := "No agent loaded"
		hint := "Start with --agent <manifest> to view agent capabilities"
		if state.Theme != nil {
			placeholder = state.Theme.Muted().Render(placeholder)
			hint = state.Theme.Muted().Render(hint)
		}
		lines = append(lines, placeholder, hint)
		p.height = len(lines)
		return strings.Join(lines, "\n")
	}

	m := state.Manifest

	lines = append(lines, p.renderIdentity(state)...)
	lines = append(lines, "")
	lines = append(lines, p.renderCapabilities(state)...)
	lines = append(lines, "")

	toolsTitle := fmt.Sprintf("Tools (%d)", len(m.Tools))
	if state.Theme != nil {
		toolsTitle = state.Theme.Primary().Bold(true).Render(toolsTitle)
	}
	lines = append(lines, toolsTitle)

	if len(m.Tools) == 0 {
		none := "  No tools defined"
		if state.Theme != nil {
			none = state.Theme.Muted().Render(none)
		}
		lines = append(lines, none)
	}

	for _, tool := range m.Tools {
		lines = append(lines, p.renderTool(state, tool.Name, tool.Description,
			tool.InputSchema.Summary(), tool.OutputSchema.Summary())...)
	}

	// Scroll window over the assembled lines
	availableSlots := state.Height - 1
	if availableSlots < 1 {
		availableSlots = 1
	}
	scroll := min(max(state.ScrollOffset, 0), max(len(lines)-availableSlots, 0))
	endLine := min(scroll+availableSlots, len(lines))
	visible := lines[scroll:endLine]

	p.height = len(visible)
	return strings.Join(visible, "\n")
}

// renderIdentity builds the name/version/id/description block.
func (p *AgentPanel) renderIdentity(state *RenderState) []string {
	m := state.Manifest

	name := m.DisplayName()
	if m.Version != "" {
		name = name + " v" + m.Version
	}
	if state.Theme != nil {
		name = state.Theme.Primary().Bold(true).Render(name)
	}

	out := []string{util.TruncateANSI(name, state.Width)}

	if m.ID != "" && m.ID != m.DisplayName() {
		id := "id: " + m.ID
		if state.Theme != nil {
			id = state.Theme.Muted().Render(id)
		}
		out = append(out, util.TruncateANSI(id, state.Width))
	}

	if m.Description != "" {
		desc := m.Description
		if state.Theme != nil {
			desc = state.Theme.Muted().Render(desc)
		}
		out = append(out, util.TruncateANSI(desc, state.Width))
	}

	return out
}

// renderCapabilities builds the capability flag list, enabled first.
func (p *AgentPanel) renderCapabilities(state *RenderState) []string {
	m := state.Manifest

	title := fmt.Sprintf("Capabilities (%d)", len(m.Capabilities))
	if state.Theme != nil {
		title = state.Theme.Primary().Bold(true).Render(title)
	}
	out := []string{title}

	if len(m.Capabilities) == 0 {
		none := "  No capabilities declared"
		if state.Theme != nil {
			none = state.Theme.Muted().Render(none)
		}
		return append(out, none)
	}

	names := make([]string, 0, len(m.Capabilities))
	for name := range m.Capabilities {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := names[i], names[j]
		if m.Capabilities[a] != m.Capabilities[b] {
			return m.Capabilities[a]
		}
		return a < b
	})

	for _, name := range names {
		mark := "✗"
		label := name
		if m.Capabilities[name] {
			mark = "✓"
		}
		if state.Theme != nil {
			if m.Capabilities[name] {
				mark = state.Theme.Secondary().Render(mark)
			} else {
				mark = state.Theme.Muted().Render(mark)
				label = state.Theme.Muted().Render(label)
			}
		}
		out = append(out, util.TruncateANSI("  "+mark+" "+label, state.Width))
	}

	return out
}

// renderTool builds the block for one tool descriptor.
func (p *AgentPanel) renderTool(state *RenderState, name, desc, inSummary, outSummary string) []string {
	toolName := name
	if state.Theme != nil {
		toolName = state.Theme.Secondary().Render(toolName)
	}

	out := []string{util.TruncateANSI("  "+toolName, state.Width)}

	if desc != "" {
		d := "    " + desc
		if state.Theme != nil {
			d = "    " + state.Theme.Muted().Render(desc)
		}
		out = append(out, util.TruncateANSI(d, state.Width))
	}

	in := "    in:  " + inSummary
	o := "    out: " + outSummary
	if state.Theme != nil {
		in = state.Theme.Muted().Render(in)
		o = state.Theme.Muted().Render(o)
	}
	out = append(out, util.TruncateANSI(in, state.Width), util.TruncateANSI(o, state.Width))

	return out
}

// Height returns the rendered height of the panel.
func (p *AgentPanel) Height() int {
	return p.height
}
