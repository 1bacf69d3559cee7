// Package cmd defines the spyglass command-line interface.
package cmd

import (
	"strings"

	"github.com/Iron-Ham/spyglass/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "spyglass",
	Short: "Terminal monitor for event streams and agent capabilities",
	Long: `Spyglass is a terminal dashboard with two panels: a live event-stream
monitor with pause, clear, and substring filtering, and a read-only
viewer for an agent's declared capabilities and tools.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/spyglass/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/spyglass")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SPYGLASS")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SPYGLASS_MONITOR_MAX_EVENTS for monitor.max_events
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
