package cmd

import (
	"fmt"
	"sort"

	"github.com/Iron-Ham/spyglass/internal/agent"
	"github.com/Iron-Ham/spyglass/internal/config"
	"github.com/spf13/cobra"
)

var agentCmd = &cobra.Command{
	Use:   "agent [manifest]",
	Short: "Print an agent manifest summary",
	Long: `Parse an agent manifest and print its identity, capabilities, and tool
descriptors to stdout. Useful for checking a manifest without opening
the dashboard. When no path is given, agent.manifest from the config
is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAgent,
}

func init() {
	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		path = cfg.Agent.Manifest
	}

	if path == "" {
		return fmt.Errorf("no manifest given: pass a path or set agent.manifest")
	}

	manifest, err := agent.Load(path)
	if err != nil {
		return err
	}

	printManifest(cmd, manifest)
	return nil
}

// printManifest writes a plain-text summary of the manifest.
func printManifest(cmd *cobra.Command, m *agent.Manifest) {
	out := cmd.OutOrStdout()

	name := m.DisplayName()
	if m.Version != "" {
		name += " v" + m.Version
	}
	fmt.Fprintln(out, name)
	if m.ID != "" {
		fmt.Fprintf(out, "  id: %s\n", m.ID)
	}
	if m.Description != "" {
		fmt.Fprintf(out, "  %s\n", m.Description)
	}

	fmt.Fprintf(out, "\nCapabilities (%d):\n", len(m.Capabilities))
	names := make([]string, 0, len(m.Capabilities))
	for name := range m.Capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mark := "disabled"
		if m.Capabilities[name] {
			mark = "enabled"
		}
		fmt.Fprintf(out, "  %-20s %s\n", name, mark)
	}

	fmt.Fprintf(out, "\nTools (%d):\n", len(m.Tools))
	for _, tool := range m.Tools {
		fmt.Fprintf(out, "  %s\n", tool.Name)
		if tool.Description != "" {
			fmt.Fprintf(out, "    %s\n", tool.Description)
		}
		fmt.Fprintf(out, "    in:  %s\n", tool.InputSchema.Summary())
		fmt.Fprintf(out, "    out: %s\n", tool.OutputSchema.Summary())
	}
}
