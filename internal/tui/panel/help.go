package panel

import (
	"fmt"
	"strings"
)

// HelpPanel renders the help overlay with keybindings and scrolling support.
type HelpPanel struct {
	height int
}

// NewHelpPanel creates a new HelpPanel.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{}
}

// Render produces the help panel output.
func (p *HelpPanel) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[help panel: render error]"
	}

	// Use provided sections or fall back to defaults
	sections := state.HelpSections
	if len(sections) == 0 {
		sections = DefaultHelpSections()
	}

	var lines []string

	// Title
	title := "Spyglass Help"
	subtitle := "Use j/k to scroll, ? to close."
	if state.Theme != nil {
		title = state.Theme.Primary().Render(title)
		subtitle = state.Theme.Muted().Render(subtitle)
	}
	lines = append(lines, title)
	lines = append(lines, subtitle)
	lines = append(lines, "")

	// Build sections
	for _, section := range sections {
		sectionTitle := "▸ " + section.Title
		if state.Theme != nil {
			sectionTitle = state.Theme.Primary().Bold(true).Render(sectionTitle)
		}
		lines = append(lines, sectionTitle)

		for _, item := range section.Items {
			keyStr := item.Key
			descStr := item.Description
			if state.Theme != nil {
				keyStr = state.Theme.Secondary().Render(keyStr)
				descStr = state.Theme.Muted().Render(descStr)
			}
			lines = append(lines, fmt.Sprintf("    %s  %s", keyStr, descStr))
		}
		lines = append(lines, "")
	}

	// Calculate visible lines based on available height
	maxLines := state.Height - 4 // Leave room for borders and scroll indicator
	if maxLines < 8 {
		maxLines = 8
	}

	// Clamp scroll to valid range
	maxScroll := len(lines) - maxLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := state.ScrollOffset
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}

	// Slice visible lines
	endLine := scroll + maxLines
	if endLine > len(lines) {
		endLine = len(lines)
	}
	visibleLines := lines[scroll:endLine]

	// Build content
	var content string
	if maxScroll > 0 {
		scrollInfo := fmt.Sprintf(" [%d/%d] ", scroll+1, maxScroll+1)
		if state.Theme != nil {
			scrollInfo = state.Theme.Muted().Render(scrollInfo)
		}
		if scroll > 0 {
			upArrow := "▲ "
			if state.Theme != nil {
				upArrow = state.Theme.Warning().Render(upArrow)
			}
			scrollInfo = upArrow + scrollInfo
		}
		if scroll < maxScroll {
			downArrow := " ▼"
			if state.Theme != nil {
				downArrow = state.Theme.Warning().Render(downArrow)
			}
			scrollInfo = scrollInfo + downArrow
		}
		content = strings.Join(visibleLines, "\n") + "\n" + scrollInfo
	} else {
		content = strings.Join(visibleLines, "\n")
	}

	p.height = len(visibleLines) + 1

	return content
}

// Height returns the rendered height of the panel.
func (p *HelpPanel) Height() int {
	return p.height
}

// DefaultHelpSections returns the default spyglass help sections.
func DefaultHelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Items: []HelpItem{
				{Key: "Tab", Description: "Switch between Events and Agent panels"},
				{Key: "j/↓  k/↑", Description: "Move selection / scroll down / up"},
				{Key: "g  G", Description: "Jump to top / bottom"},
			},
		},
		{
			Title: "Capture",
			Items: []HelpItem{
				{Key: "p  Space", Description: "Pause/resume capture (paused events are dropped)"},
				{Key: "c", Description: "Clear the buffer (sequence ids keep counting)"},
				{Key: "Enter", Description: "Expand/collapse the selected event's payload"},
			},
		},
		{
			Title: "Filtering",
			Items: []HelpItem{
				{Key: "f  /", Description: "Edit type and source filters"},
				{Key: "Tab", Description: "Switch between filter fields (while editing)"},
				{Key: "Enter  Esc", Description: "Apply / cancel filter edit"},
				{Key: "Ctrl+X", Description: "Reset both filters"},
			},
		},
		{
			Title: "Session",
			Items: []HelpItem{
				{Key: "?", Description: "Toggle this help panel"},
				{Key: "q  Ctrl+C", Description: "Quit"},
			},
		},
	}
}
