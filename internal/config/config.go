// Package config defines the spyglass configuration and its defaults.
// Configuration is read through viper from a config file, environment
// variables (SPYGLASS_ prefix), and command-line flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete spyglass configuration
type Config struct {
	Monitor MonitorConfig `mapstructure:"monitor"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Agent   AgentConfig   `mapstructure:"agent"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MonitorConfig controls the event capture buffer
type MonitorConfig struct {
	// MaxEvents is the retention window of the capture buffer (default: 200)
	MaxEvents int `mapstructure:"max_events"`
	// StartPaused starts the monitor with capture suspended
	StartPaused bool `mapstructure:"start_paused"`
	// DemoIntervalMs is the publish cadence of the demo feed in milliseconds
	DemoIntervalMs int `mapstructure:"demo_interval_ms"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// TimestampFormat is the Go time layout used for event rows
	TimestampFormat string `mapstructure:"timestamp_format"`
	// PayloadLines limits how many payload lines an expanded row shows (0 = unlimited)
	PayloadLines int `mapstructure:"payload_lines"`
}

// AgentConfig controls the agent capability viewer
type AgentConfig struct {
	// Manifest is the path to the agent manifest file (JSON or YAML)
	Manifest string `mapstructure:"manifest"`
	// Watch reloads the manifest when the file changes on disk
	Watch bool `mapstructure:"watch"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is the minimum level logged: debug, info, warn, error
	Level string `mapstructure:"level"`
	// File is the log destination; empty logs to stderr
	File string `mapstructure:"file"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		Monitor: MonitorConfig{
			MaxEvents:      200,
			StartPaused:    false,
			DemoIntervalMs: 400,
		},
		TUI: TUIConfig{
			TimestampFormat: "15:04:05.000",
			PayloadLines:    12,
		},
		Agent: AgentConfig{
			Watch: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers all default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("monitor.max_events", defaults.Monitor.MaxEvents)
	viper.SetDefault("monitor.start_paused", defaults.Monitor.StartPaused)
	viper.SetDefault("monitor.demo_interval_ms", defaults.Monitor.DemoIntervalMs)

	viper.SetDefault("tui.timestamp_format", defaults.TUI.TimestampFormat)
	viper.SetDefault("tui.payload_lines", defaults.TUI.PayloadLines)

	viper.SetDefault("agent.manifest", defaults.Agent.Manifest)
	viper.SetDefault("agent.watch", defaults.Agent.Watch)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spyglass")
	}
	// Fall back to ~/.config/spyglass
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spyglass"
	}
	return filepath.Join(home, ".config", "spyglass")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
