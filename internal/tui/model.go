package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/spyglass/internal/agent"
	"github.com/Iron-Ham/spyglass/internal/logging"
	"github.com/Iron-Ham/spyglass/internal/monitor"
	"github.com/Iron-Ham/spyglass/internal/tui/panel"
	"github.com/Iron-Ham/spyglass/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab identifiers
const (
	tabEvents = iota
	tabAgent
	tabCount
)

// Layout constants
const (
	// HeaderHeight covers the tab bar and its separator
	HeaderHeight = 2
	// FooterHeight covers the help bar
	FooterHeight = 2
)

// Model is the Bubbletea model for the spyglass TUI.
type Model struct {
	width  int
	height int
	ready  bool

	activeTab int

	buffer *monitor.Buffer
	filter *monitor.Filter

	eventsPanel *panel.EventsPanel
	agentPanel  *panel.AgentPanel
	helpPanel   *panel.HelpPanel
	theme       panel.Theme

	// Event panel state
	selected     int
	scrollOffset int

	// Agent panel state
	agentScroll int

	manifest    *agent.Manifest
	manifestErr error

	// Filter edit state
	filterMode  bool
	filterFocus int // 0 = type input, 1 = source input
	typeInput   textinput.Model
	sourceInput textinput.Model
	savedType   string
	savedSource string

	showHelp   bool
	helpScroll int

	timestampFormat string
	payloadLines    int

	logger   *logging.Logger
	quitting bool
}

// NewModel creates the initial model from app options.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	typeInput := textinput.New()
	typeInput.Placeholder = "type contains..."
	typeInput.CharLimit = 64
	typeInput.Width = 24

	sourceInput := textinput.New()
	sourceInput.Placeholder = "source contains..."
	sourceInput.CharLimit = 64
	sourceInput.Width = 24

	return Model{
		buffer:          opts.Buffer,
		filter:          monitor.NewFilter(),
		eventsPanel:     panel.NewEventsPanel(),
		agentPanel:      panel.NewAgentPanel(),
		helpPanel:       panel.NewHelpPanel(),
		theme:           styles.Theme{},
		selected:        -1,
		manifest:        opts.Manifest,
		manifestErr:     opts.ManifestErr,
		typeInput:       typeInput,
		sourceInput:     sourceInput,
		timestampFormat: opts.TimestampFormat,
		payloadLines:    opts.PayloadLines,
		logger:          logger.WithComponent("tui"),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case bufferChangedMsg:
		// The panel re-snapshots on render; just keep the selection
		// inside the visible list.
		m.clampSelection()
		return m, nil

	case manifestMsg:
		if msg.err != nil {
			// Keep the stale manifest visible alongside the error
			m.manifestErr = msg.err
			m.logger.Warn("manifest reload failed", "error", msg.err)
		} else {
			m.manifest = msg.manifest
			m.manifestErr = nil
			m.logger.Info("manifest reloaded", "agent", msg.manifest.DisplayName())
		}
		return m, nil
	}

	return m, nil
}

// handleKeypress processes keyboard input
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterMode {
		return m.handleFilterInput(msg)
	}

	if m.showHelp {
		return m.handleHelpKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		m.helpScroll = 0
		return m, nil

	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil

	case "shift+tab":
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m, nil

	case "p", " ":
		if m.buffer != nil {
			paused := !m.buffer.Paused()
			m.buffer.SetPaused(paused)
			m.logger.Info("capture toggled", "paused", paused)
		}
		return m, nil

	case "c":
		if m.buffer != nil {
			m.buffer.Clear()
			m.selected = -1
			m.scrollOffset = 0
		}
		return m, nil

	case "enter":
		if m.activeTab == tabEvents {
			m.toggleExpanded()
		}
		return m, nil

	case "f", "/":
		m.enterFilterMode()
		return m, nil

	case "ctrl+x":
		m.filter.Reset()
		m.clampSelection()
		return m, nil

	case "j", "down":
		m.moveDown(1)
		return m, nil

	case "k", "up":
		m.moveUp(1)
		return m, nil

	case "g":
		m.moveToTop()
		return m, nil

	case "G":
		m.moveToBottom()
		return m, nil
	}

	return m, nil
}

// handleHelpKeys processes input while the help overlay is open.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?", "esc":
		m.showHelp = false
		return m, nil
	case "j", "down":
		m.helpScroll++
		return m, nil
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
		return m, nil
	case "g":
		m.helpScroll = 0
		return m, nil
	}
	return m, nil
}

// enterFilterMode opens the filter inputs seeded from current queries.
func (m *Model) enterFilterMode() {
	m.filterMode = true
	m.filterFocus = 0
	m.savedType = m.filter.TypeQuery()
	m.savedSource = m.filter.SourceQuery()
	m.typeInput.SetValue(m.filter.TypeQuery())
	m.sourceInput.SetValue(m.filter.SourceQuery())
	m.typeInput.Focus()
	m.sourceInput.Blur()
}

// handleFilterInput processes input while editing filters. Queries are
// applied live so the list narrows as the user types.
func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Discard the edit
		m.filter.SetTypeQuery(m.savedType)
		m.filter.SetSourceQuery(m.savedSource)
		m.filterMode = false
		m.typeInput.Blur()
		m.sourceInput.Blur()
		m.clampSelection()
		return m, nil

	case tea.KeyEnter:
		m.filterMode = false
		m.typeInput.Blur()
		m.sourceInput.Blur()
		m.clampSelection()
		return m, nil

	case tea.KeyTab, tea.KeyShiftTab:
		m.filterFocus = 1 - m.filterFocus
		if m.filterFocus == 0 {
			m.typeInput.Focus()
			m.sourceInput.Blur()
		} else {
			m.sourceInput.Focus()
			m.typeInput.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.filterFocus == 0 {
		m.typeInput, cmd = m.typeInput.Update(msg)
	} else {
		m.sourceInput, cmd = m.sourceInput.Update(msg)
	}

	m.filter.SetTypeQuery(m.typeInput.Value())
	m.filter.SetSourceQuery(m.sourceInput.Value())
	m.clampSelection()

	return m, cmd
}

// visibleEvents snapshots the buffer and applies the current filter.
func (m *Model) visibleEvents() []monitor.Captured {
	if m.buffer == nil {
		return nil
	}
	return m.filter.Apply(m.buffer.Snapshot())
}

// toggleExpanded flips payload expansion on the selected event.
func (m *Model) toggleExpanded() {
	visible := m.visibleEvents()
	if m.selected < 0 || m.selected >= len(visible) {
		return
	}
	entry := visible[m.selected]
	m.buffer.SetExpanded(entry.Seq, !entry.Expanded)
}

// clampSelection keeps the selection and scroll inside the visible list.
func (m *Model) clampSelection() {
	count := len(m.visibleEvents())
	if count == 0 {
		m.selected = -1
		m.scrollOffset = 0
		return
	}
	if m.selected >= count {
		m.selected = count - 1
	}
	if m.scrollOffset > count-1 {
		m.scrollOffset = count - 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

func (m *Model) moveDown(n int) {
	switch m.activeTab {
	case tabEvents:
		count := len(m.visibleEvents())
		if count == 0 {
			return
		}
		if m.selected < 0 {
			m.selected = 0
		} else {
			m.selected = min(m.selected+n, count-1)
		}
		m.followSelection(count)
	case tabAgent:
		m.agentScroll += n
	}
}

func (m *Model) moveUp(n int) {
	switch m.activeTab {
	case tabEvents:
		count := len(m.visibleEvents())
		if count == 0 {
			return
		}
		if m.selected < 0 {
			m.selected = 0
		} else {
			m.selected = max(m.selected-n, 0)
		}
		m.followSelection(count)
	case tabAgent:
		m.agentScroll = max(m.agentScroll-n, 0)
	}
}

func (m *Model) moveToTop() {
	switch m.activeTab {
	case tabEvents:
		if len(m.visibleEvents()) > 0 {
			m.selected = 0
		}
		m.scrollOffset = 0
	case tabAgent:
		m.agentScroll = 0
	}
}

func (m *Model) moveToBottom() {
	switch m.activeTab {
	case tabEvents:
		count := len(m.visibleEvents())
		if count == 0 {
			return
		}
		m.selected = count - 1
		m.followSelection(count)
	case tabAgent:
		m.agentScroll += m.contentHeight()
	}
}

// followSelection adjusts the scroll window so the selection stays visible.
func (m *Model) followSelection(count int) {
	slots := m.contentHeight() - 3
	if slots < 1 {
		slots = 1
	}
	if m.selected < m.scrollOffset {
		m.scrollOffset = m.selected
	}
	if m.selected >= m.scrollOffset+slots {
		m.scrollOffset = m.selected - slots + 1
	}
	if m.scrollOffset > count-1 {
		m.scrollOffset = count - 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// contentHeight is the rows available to the active panel.
func (m *Model) contentHeight() int {
	h := m.height - HeaderHeight - FooterHeight
	if m.filterMode || m.filter.Active() {
		h--
	}
	if h < 4 {
		h = 4
	}
	return h
}

// View renders the full TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.filterMode {
		b.WriteString(m.renderFilterInputs())
		b.WriteString("\n")
	}

	state := m.renderState()

	if m.showHelp {
		state.ScrollOffset = m.helpScroll
		b.WriteString(m.helpPanel.Render(state))
	} else {
		switch m.activeTab {
		case tabEvents:
			b.WriteString(m.eventsPanel.Render(state))
		case tabAgent:
			state.ScrollOffset = m.agentScroll
			b.WriteString(m.agentPanel.Render(state))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderState assembles the snapshot handed to panel renderers.
func (m Model) renderState() *panel.RenderState {
	visible := m.visibleEvents()

	paused := false
	total := 0
	if m.buffer != nil {
		paused = m.buffer.Paused()
		total = m.buffer.Len()
	}

	return &panel.RenderState{
		Width:           m.width,
		Height:          m.contentHeight(),
		Theme:           m.theme,
		Events:          visible,
		TotalEvents:     total,
		Paused:          paused,
		TypeQuery:       m.filter.TypeQuery(),
		SourceQuery:     m.filter.SourceQuery(),
		FilterActive:    m.filter.Active(),
		Selected:        m.selected,
		ScrollOffset:    m.scrollOffset,
		TimestampFormat: m.timestampFormat,
		PayloadLines:    m.payloadLines,
		Manifest:        m.manifest,
		ManifestErr:     m.manifestErr,
	}
}

// renderTabs builds the header tab bar.
func (m Model) renderTabs() string {
	labels := []string{"Events", "Agent"}

	tabs := make([]string, len(labels))
	for i, label := range labels {
		if i == tabEvents && m.buffer != nil {
			label = fmt.Sprintf("%s (%d)", label, m.buffer.Len())
		}
		if i == m.activeTab {
			tabs[i] = styles.TabActive.Render(label)
		} else {
			tabs[i] = styles.TabInactive.Render(label)
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	if m.buffer != nil && m.buffer.Paused() {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, "  ", styles.PausedBadge.Render("PAUSED"))
	}

	return bar
}

// renderFilterInputs builds the filter edit line.
func (m Model) renderFilterInputs() string {
	typeLabel := "type:"
	sourceLabel := "source:"
	if m.filterFocus == 0 {
		typeLabel = styles.FilterLabel.Render(typeLabel)
	} else {
		sourceLabel = styles.FilterLabel.Render(sourceLabel)
	}

	return fmt.Sprintf("%s %s  %s %s",
		typeLabel, m.typeInput.View(),
		sourceLabel, m.sourceInput.View())
}

// renderHelpBar builds the footer keybinding hints.
func (m Model) renderHelpBar() string {
	var hints []string
	if m.filterMode {
		hints = []string{
			styles.HelpKey.Render("tab") + " switch field",
			styles.HelpKey.Render("enter") + " apply",
			styles.HelpKey.Render("esc") + " cancel",
		}
	} else {
		hints = []string{
			styles.HelpKey.Render("tab") + " panel",
			styles.HelpKey.Render("p") + " pause",
			styles.HelpKey.Render("c") + " clear",
			styles.HelpKey.Render("f") + " filter",
			styles.HelpKey.Render("enter") + " expand",
			styles.HelpKey.Render("?") + " help",
			styles.HelpKey.Render("q") + " quit",
		}
	}
	return styles.HelpBar.Render(strings.Join(hints, "  "))
}
