package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Iron-Ham/spyglass/internal/agent"
	"github.com/Iron-Ham/spyglass/internal/config"
	"github.com/Iron-Ham/spyglass/internal/event"
	"github.com/Iron-Ham/spyglass/internal/feed"
	"github.com/Iron-Ham/spyglass/internal/logging"
	"github.com/Iron-Ham/spyglass/internal/monitor"
	"github.com/Iron-Ham/spyglass/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Open the event monitor dashboard",
	Long: `Open the TUI dashboard. The Events panel captures everything published
on the event bus into a bounded buffer; the Agent panel shows the
capabilities and tools declared by a manifest file.

With --demo, a synthetic feed publishes plausible events so the monitor
can be explored without a real host.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().Bool("demo", false, "publish synthetic demo events")
	monitorCmd.Flags().String("agent", "", "path to an agent manifest (JSON or YAML)")
	monitorCmd.Flags().Int("max-events", 0, "retention window of the capture buffer")
	monitorCmd.Flags().Bool("paused", false, "start with capture suspended")

	_ = viper.BindPFlag("agent.manifest", monitorCmd.Flags().Lookup("agent"))
	_ = viper.BindPFlag("monitor.start_paused", monitorCmd.Flags().Lookup("paused"))

	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// --max-events overrides the config file when set
	if cmd.Flags().Changed("max-events") {
		maxEvents, _ := cmd.Flags().GetInt("max-events")
		if maxEvents < 1 {
			return fmt.Errorf("--max-events must be at least 1, got %d", maxEvents)
		}
		cfg.Monitor.MaxEvents = maxEvents
	}

	logger, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	bus := event.NewBus()
	buffer := monitor.NewBuffer(cfg.Monitor.MaxEvents)
	buffer.SetPaused(cfg.Monitor.StartPaused)
	session := monitor.NewSession(buffer)

	// Load the manifest up front; a failure is shown in the panel, not
	// treated as fatal
	var manifest *agent.Manifest
	var manifestErr error
	if cfg.Agent.Manifest != "" {
		manifest, manifestErr = agent.Load(cfg.Agent.Manifest)
		if manifestErr != nil {
			logger.Warn("failed to load agent manifest",
				"path", cfg.Agent.Manifest, "error", manifestErr)
		}
	}

	demo, _ := cmd.Flags().GetBool("demo")
	if demo {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		interval := time.Duration(cfg.Monitor.DemoIntervalMs) * time.Millisecond
		go feed.New(bus, interval).Run(ctx)
		logger.Info("demo feed started", "interval_ms", cfg.Monitor.DemoIntervalMs)
	}

	app := tui.New(tui.Options{
		Buffer:          buffer,
		Session:         session,
		Source:          bus,
		Manifest:        manifest,
		ManifestErr:     manifestErr,
		ManifestPath:    cfg.Agent.Manifest,
		WatchManifest:   cfg.Agent.Watch,
		TimestampFormat: cfg.TUI.TimestampFormat,
		PayloadLines:    cfg.TUI.PayloadLines,
		Logger:          logger,
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
