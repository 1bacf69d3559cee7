package panel

import (
	"errors"
	"strings"
	"testing"

	"github.com/Iron-Ham/spyglass/internal/agent"
)

func sampleManifest() *agent.Manifest {
	return &agent.Manifest{
		ID:          "fs-agent",
		Name:        "Filesystem Agent",
		Description: "Watches and reports on file activity",
		Version:     "1.2.0",
		Capabilities: map[string]bool{
			"streaming": true,
			"tools":     true,
			"vision":    false,
		},
		Tools: []agent.Tool{
			{
				Name:        "read_file",
				Description: "Read a file from disk",
				InputSchema: agent.Schema{
					Type: "object",
					Properties: map[string]agent.Property{
						"path":  {Type: "string"},
						"limit": {Type: "integer"},
					},
					Required: []string{"path"},
				},
				OutputSchema: agent.Schema{
					Type: "object",
					Properties: map[string]agent.Property{
						"content": {Type: "string"},
					},
				},
			},
		},
	}
}

func TestAgentPanel_NoManifest(t *testing.T) {
	p := NewAgentPanel()
	state := NewRenderState(80, 24)

	output := p.Render(state)
	if !strings.Contains(output, "No agent loaded") {
		t.Errorf("Missing manifest should render placeholder, got %q", output)
	}
}

func TestAgentPanel_Identity(t *testing.T) {
	p := NewAgentPanel()
	state := NewRenderState(80, 40)
	state.Manifest = sampleManifest()

	output := p.Render(state)

	for _, want := range []string{
		"Filesystem Agent v1.2.0",
		"id: fs-agent",
		"Watches and reports on file activity",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestAgentPanel_Capabilities(t *testing.T) {
	p := NewAgentPanel()
	state := NewRenderState(80, 40)
	state.Manifest = sampleManifest()

	output := p.Render(state)

	if !strings.Contains(output, "Capabilities (3)") {
		t.Errorf("Expected capability count header:\n%s", output)
	}
	if !strings.Contains(output, "✓ streaming") {
		t.Errorf("Enabled capability should have a check:\n%s", output)
	}
	if !strings.Contains(output, "✗ vision") {
		t.Errorf("Disabled capability should have a cross:\n%s", output)
	}

	// Enabled capabilities come before disabled ones
	if strings.Index(output, "vision") < strings.Index(output, "streaming") {
		t.Error("Enabled capabilities should be listed first")
	}
}

func TestAgentPanel_Tools(t *testing.T) {
	p := NewAgentPanel()
	state := NewRenderState(80, 40)
	state.Manifest = sampleManifest()

	output := p.Render(state)

	for _, want := range []string{
		"Tools (1)",
		"read_file",
		"Read a file from disk",
		"in:  object{path*, limit}",
		"out: object{content}",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestAgentPanel_EmptySections(t *testing.T) {
	p := NewAgentPanel()
	state := NewRenderState(80, 40)
	state.Manifest = &agent.Manifest{ID: "bare"}

	output := p.Render(state)

	if !strings.Contains(output, "No capabilities declared") {
		t.Errorf("Empty capability map should render placeholder:\n%s", output)
	}
	if !strings.Contains(output, "No tools defined") {
		t.Errorf("Empty tool list should render placeholder:\n%s", output)
	}
}

func TestAgentPanel_ManifestError(t *testing.T) {
	p := NewAgentPanel()
	state := NewRenderState(80, 24)
	state.ManifestErr = errors.New("yaml: line 3: mapping values are not allowed")

	output := p.Render(state)
	if !strings.Contains(output, "Manifest error") {
		t.Errorf("Load failure should be surfaced:\n%s", output)
	}
	// Error display does not suppress the placeholder
	if !strings.Contains(output, "No agent loaded") {
		t.Errorf("Placeholder should still render:\n%s", output)
	}
}

func TestAgentPanel_ErrorWithStaleManifest(t *testing.T) {
	p := NewAgentPanel()
	state := NewRenderState(80, 40)
	state.Manifest = sampleManifest()
	state.ManifestErr = errors.New("reload failed")

	output := p.Render(state)
	if !strings.Contains(output, "Manifest error") || !strings.Contains(output, "Filesystem Agent") {
		t.Errorf("Stale manifest should render alongside the error:\n%s", output)
	}
}

func TestAgentPanel_InvalidState(t *testing.T) {
	p := NewAgentPanel()
	output := p.Render(&RenderState{})
	if !strings.Contains(output, "render error") {
		t.Errorf("Invalid state should render an error marker, got %q", output)
	}
}
