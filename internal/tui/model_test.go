package tui

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/spyglass/internal/agent"
	"github.com/Iron-Ham/spyglass/internal/event"
	"github.com/Iron-Ham/spyglass/internal/monitor"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	buffer := monitor.NewBuffer(monitor.DefaultMaxEvents)
	m := NewModel(Options{Buffer: buffer})

	// Simulate the initial window size message
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		m = updated.(Model)
	}
	return m
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q"} {
		m := newTestModel(t)
		updated, cmd := m.Update(key(k))
		if !updated.(Model).quitting {
			t.Errorf("Key %q should set quitting", k)
		}
		if cmd == nil {
			t.Errorf("Key %q should return the quit command", k)
		}
	}
}

func TestModel_TabSwitchesPanels(t *testing.T) {
	m := newTestModel(t)
	if m.activeTab != tabEvents {
		t.Fatalf("Initial tab = %d, want events", m.activeTab)
	}

	m = press(t, m, "tab")
	if m.activeTab != tabAgent {
		t.Errorf("After tab, activeTab = %d, want agent", m.activeTab)
	}

	m = press(t, m, "tab")
	if m.activeTab != tabEvents {
		t.Errorf("Tab should wrap back to events, got %d", m.activeTab)
	}
}

func TestModel_PauseToggle(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "p")
	if !m.buffer.Paused() {
		t.Error("p should pause capture")
	}

	m = press(t, m, " ")
	if m.buffer.Paused() {
		t.Error("Space should resume capture")
	}
}

func TestModel_ClearResetsSelection(t *testing.T) {
	m := newTestModel(t)
	m.buffer.Append(event.NewRecord("panel:toggle", "host", nil))
	m.buffer.Append(event.NewRecord("file:opened", "editor", nil))

	m = press(t, m, "j", "j")
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}

	m = press(t, m, "c")
	if m.buffer.Len() != 0 {
		t.Error("c should clear the buffer")
	}
	if m.selected != -1 {
		t.Errorf("Clear should reset selection, got %d", m.selected)
	}
}

func TestModel_ExpandSelected(t *testing.T) {
	m := newTestModel(t)
	m.buffer.Append(event.NewRecord("file:opened", "editor", map[string]any{"path": "/tmp/x"}))

	m = press(t, m, "j", "enter")

	snapshot := m.buffer.Snapshot()
	if !snapshot[0].Expanded {
		t.Error("Enter should expand the selected event")
	}

	m = press(t, m, "enter")
	if m.buffer.Snapshot()[0].Expanded {
		t.Error("Enter again should collapse the event")
	}
}

func TestModel_FilterModeLiveApply(t *testing.T) {
	m := newTestModel(t)
	m.buffer.Append(event.NewRecord("panel:toggle", "host", nil))
	m.buffer.Append(event.NewRecord("file:opened", "editor", nil))

	m = press(t, m, "f")
	if !m.filterMode {
		t.Fatal("f should enter filter mode")
	}

	m = press(t, m, "f", "i", "l", "e")
	if got := m.filter.TypeQuery(); got != "file" {
		t.Errorf("Typing should update the filter live, got %q", got)
	}
	if got := len(m.visibleEvents()); got != 1 {
		t.Errorf("Visible events = %d, want 1", got)
	}

	m = press(t, m, "enter")
	if m.filterMode {
		t.Error("Enter should leave filter mode")
	}
	if m.filter.TypeQuery() != "file" {
		t.Error("Enter should keep the applied query")
	}
}

func TestModel_FilterModeEscRestores(t *testing.T) {
	m := newTestModel(t)
	m.filter.SetTypeQuery("panel")

	m = press(t, m, "f", "x", "y", "esc")

	if m.filterMode {
		t.Error("Esc should leave filter mode")
	}
	if got := m.filter.TypeQuery(); got != "panel" {
		t.Errorf("Esc should restore the previous query, got %q", got)
	}
}

func TestModel_FilterFieldSwitch(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "f")
	if m.filterFocus != 0 {
		t.Fatal("Filter mode should start on the type field")
	}

	m = press(t, m, "tab")
	if m.filterFocus != 1 {
		t.Error("Tab should move focus to the source field")
	}

	m = press(t, m, "g", "w")
	if got := m.filter.SourceQuery(); got != "gw" {
		t.Errorf("Typing should edit the source query, got %q", got)
	}
}

func TestModel_FilterReset(t *testing.T) {
	m := newTestModel(t)
	m.filter.SetTypeQuery("file")
	m.filter.SetSourceQuery("editor")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	m = updated.(Model)

	if m.filter.Active() {
		t.Error("Ctrl+X should reset both queries")
	}
}

func TestModel_NavigationClamps(t *testing.T) {
	m := newTestModel(t)
	m.buffer.Append(event.NewRecord("a:b", "s", nil))
	m.buffer.Append(event.NewRecord("c:d", "s", nil))

	m = press(t, m, "j", "j", "j", "j")
	if m.selected != 1 {
		t.Errorf("Selection should clamp at last event, got %d", m.selected)
	}

	m = press(t, m, "k", "k", "k")
	if m.selected != 0 {
		t.Errorf("Selection should clamp at first event, got %d", m.selected)
	}

	m = press(t, m, "G")
	if m.selected != 1 {
		t.Errorf("G should jump to bottom, got %d", m.selected)
	}

	m = press(t, m, "g")
	if m.selected != 0 {
		t.Errorf("g should jump to top, got %d", m.selected)
	}
}

func TestModel_NavigationEmptyBuffer(t *testing.T) {
	m := newTestModel(t)

	// Must not panic
	m = press(t, m, "j", "k", "g", "G", "enter")
	if m.selected != -1 {
		t.Errorf("Empty buffer should keep selection at -1, got %d", m.selected)
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "?")
	if !m.showHelp {
		t.Fatal("? should open help")
	}

	view := m.View()
	if !strings.Contains(view, "Spyglass Help") {
		t.Error("Help overlay should render the help panel")
	}

	m = press(t, m, "?")
	if m.showHelp {
		t.Error("? again should close help")
	}
}

func TestModel_ManifestMsg(t *testing.T) {
	m := newTestModel(t)

	manifest := &agent.Manifest{ID: "demo", Name: "Demo Agent"}
	updated, _ := m.Update(manifestMsg{manifest: manifest})
	m = updated.(Model)

	if m.manifest == nil || m.manifest.ID != "demo" {
		t.Error("Manifest message should install the new manifest")
	}
	if m.manifestErr != nil {
		t.Error("Successful reload should clear the error")
	}
}

func TestModel_ManifestErrorKeepsStale(t *testing.T) {
	m := newTestModel(t)
	m.manifest = &agent.Manifest{ID: "demo"}

	updated, _ := m.Update(manifestMsg{err: errTest})
	m = updated.(Model)

	if m.manifest == nil {
		t.Error("Failed reload should keep the stale manifest")
	}
	if m.manifestErr == nil {
		t.Error("Failed reload should record the error")
	}
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "boom" }

func TestModel_ViewRendersEvents(t *testing.T) {
	m := newTestModel(t)
	m.buffer.Append(event.NewRecord("net:request", "gateway", nil))

	view := m.View()
	if !strings.Contains(view, "net:request") {
		t.Errorf("View should include captured events:\n%s", view)
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	buffer := monitor.NewBuffer(10)
	m := NewModel(Options{Buffer: buffer})

	if got := m.View(); got != "Loading..." {
		t.Errorf("Pre-ready view = %q", got)
	}
}

func TestModel_BufferChangedClampsSelection(t *testing.T) {
	m := newTestModel(t)
	buffer := monitor.NewBuffer(2)
	m.buffer = buffer

	buffer.Append(event.NewRecord("a:b", "s", nil))
	buffer.Append(event.NewRecord("c:d", "s", nil))
	m = press(t, m, "G")

	buffer.Clear()
	updated, _ := m.Update(bufferChangedMsg{})
	m = updated.(Model)

	if m.selected != -1 {
		t.Errorf("Selection should reset when buffer empties, got %d", m.selected)
	}
}
