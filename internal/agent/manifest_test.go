package agent

import (
	"os"
	"path/filepath"
	"testing"
)

const jsonManifest = `{
  "id": "code-helper",
  "name": "Code Helper",
  "description": "Reads and edits project files",
  "version": "1.2.0",
  "capabilities": {"streaming": true, "vision": false},
  "tools": [
    {
      "name": "read_file",
      "description": "Read a file from disk",
      "input_schema": {
        "type": "object",
        "properties": {
          "path": {"type": "string", "description": "File path"},
          "limit": {"type": "integer"}
        },
        "required": ["path"]
      },
      "output_schema": {
        "type": "object",
        "properties": {
          "content": {"type": "string"}
        }
      }
    }
  ]
}`

const yamlManifest = `
id: code-helper
name: Code Helper
version: 1.2.0
capabilities:
  streaming: true
tools:
  - name: read_file
    description: Read a file from disk
    input_schema:
      type: object
      properties:
        path:
          type: string
      required: [path]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test manifest: %v", err)
	}
	return path
}

func TestLoad_JSON(t *testing.T) {
	m, err := Load(writeFile(t, "agent.json", jsonManifest))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.ID != "code-helper" {
		t.Errorf("Expected id 'code-helper', got %q", m.ID)
	}
	if m.Name != "Code Helper" {
		t.Errorf("Expected name 'Code Helper', got %q", m.Name)
	}
	if !m.Capabilities["streaming"] {
		t.Error("Expected streaming capability to be true")
	}
	if m.Capabilities["vision"] {
		t.Error("Expected vision capability to be false")
	}
	if len(m.Tools) != 1 {
		t.Fatalf("Expected 1 tool, got %d", len(m.Tools))
	}

	tool := m.Tools[0]
	if tool.Name != "read_file" {
		t.Errorf("Expected tool 'read_file', got %q", tool.Name)
	}
	if tool.InputSchema.Properties["path"].Type != "string" {
		t.Errorf("Expected path property type 'string', got %q", tool.InputSchema.Properties["path"].Type)
	}
	if len(tool.InputSchema.Required) != 1 || tool.InputSchema.Required[0] != "path" {
		t.Errorf("Expected required [path], got %v", tool.InputSchema.Required)
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"agent.yaml", "agent.yml"} {
		m, err := Load(writeFile(t, name, yamlManifest))
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}
		if m.ID != "code-helper" {
			t.Errorf("%s: expected id 'code-helper', got %q", name, m.ID)
		}
		if len(m.Tools) != 1 || m.Tools[0].Name != "read_file" {
			t.Errorf("%s: tools not parsed: %+v", name, m.Tools)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	if _, err := Load(writeFile(t, "bad.json", "{not json")); err == nil {
		t.Error("Load should fail for malformed JSON")
	}
}

func TestLoad_PartialManifest(t *testing.T) {
	// Missing optional fields parse fine; rendering degrades to
	// placeholders elsewhere.
	m, err := Load(writeFile(t, "partial.json", `{"id": "bare"}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.ID != "bare" {
		t.Errorf("Expected id 'bare', got %q", m.ID)
	}
	if len(m.Tools) != 0 {
		t.Errorf("Expected no tools, got %d", len(m.Tools))
	}
}

func TestManifest_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		expected string
	}{
		{"name preferred", Manifest{ID: "x", Name: "Helper"}, "Helper"},
		{"id fallback", Manifest{ID: "x"}, "x"},
		{"placeholder", Manifest{}, "(unnamed agent)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.manifest.DisplayName(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSchema_Summary(t *testing.T) {
	tests := []struct {
		name     string
		schema   Schema
		expected string
	}{
		{
			name:     "empty schema",
			schema:   Schema{},
			expected: "-",
		},
		{
			name:     "type only",
			schema:   Schema{Type: "string"},
			expected: "string",
		},
		{
			name: "required before optional",
			schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"limit": {Type: "integer"},
					"path":  {Type: "string"},
				},
				Required: []string{"path"},
			},
			expected: "object{path*, limit}",
		},
		{
			name: "defaults to object",
			schema: Schema{
				Properties: map[string]Property{"a": {Type: "string"}},
			},
			expected: "object{a}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schema.Summary(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
