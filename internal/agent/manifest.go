// Package agent defines the agent manifest rendered by the capability
// viewer panel. The manifest is a pass-through data contract: spyglass
// parses the file into this shape and renders it as-is, with no
// validation, transformation, or persistence. Missing optional fields
// degrade to placeholder rendering, never an error.
package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is a static descriptor of an agent's identity, capabilities,
// and available tools.
type Manifest struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Description  string          `json:"description" yaml:"description"`
	Version      string          `json:"version" yaml:"version"`
	Capabilities map[string]bool `json:"capabilities" yaml:"capabilities"`
	Tools        []Tool          `json:"tools" yaml:"tools"`
}

// Tool describes a single tool the agent exposes. Input and output are
// JSON-Schema-shaped descriptors; spyglass displays them without ever
// executing the described behavior.
type Tool struct {
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	InputSchema  Schema `json:"input_schema" yaml:"input_schema"`
	OutputSchema Schema `json:"output_schema" yaml:"output_schema"`
}

// Schema is the subset of JSON Schema that agent manifests use for tool
// parameter descriptors.
type Schema struct {
	Type       string              `json:"type" yaml:"type"`
	Properties map[string]Property `json:"properties" yaml:"properties"`
	Required   []string            `json:"required" yaml:"required"`
}

// Property describes a single schema property.
type Property struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// Summary renders a one-line shape for the schema, e.g.
// "object{path, recursive*}" where * marks required properties.
// Returns "-" for an empty schema.
func (s Schema) Summary() string {
	if s.Type == "" && len(s.Properties) == 0 {
		return "-"
	}

	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	// Stable output: required first, then lexicographic
	sortProperties(names, required)

	for i, name := range names {
		if required[name] {
			names[i] = name + "*"
		}
	}

	ty := s.Type
	if ty == "" {
		ty = "object"
	}
	if len(names) == 0 {
		return ty
	}
	return fmt.Sprintf("%s{%s}", ty, strings.Join(names, ", "))
}

// sortProperties orders names with required properties first, each
// group lexicographic.
func sortProperties(names []string, required map[string]bool) {
	less := func(a, b string) bool {
		if required[a] != required[b] {
			return required[a]
		}
		return a < b
	}
	// Insertion sort; property lists are tiny.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && less(names[j], names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// DisplayName returns the best available human-readable identity:
// Name, then ID, then a placeholder.
func (m *Manifest) DisplayName() string {
	switch {
	case m.Name != "":
		return m.Name
	case m.ID != "":
		return m.ID
	default:
		return "(unnamed agent)"
	}
}

// Load reads a manifest from path. Files ending in .yaml or .yml are
// parsed as YAML; everything else is parsed as JSON.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
		}
	}

	return &m, nil
}
