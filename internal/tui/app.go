// Package tui implements the spyglass terminal interface: a tabbed
// Bubbletea program with an event stream panel and an agent capability
// viewer.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/spyglass/internal/agent"
	"github.com/Iron-Ham/spyglass/internal/event"
	"github.com/Iron-Ham/spyglass/internal/logging"
	"github.com/Iron-Ham/spyglass/internal/monitor"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a TUI application.
type Options struct {
	// Buffer is the capture buffer displayed by the events panel.
	Buffer *monitor.Buffer

	// Session owns the wildcard subscription feeding Buffer.
	Session *monitor.Session

	// Source is the host event stream the session attaches to.
	// May be nil when no source is available.
	Source event.Source

	// Manifest is the initially loaded agent manifest, if any.
	Manifest *agent.Manifest

	// ManifestErr is the initial manifest load failure, if any.
	ManifestErr error

	// ManifestPath is the manifest file to watch for reloads.
	// Empty disables watching.
	ManifestPath string

	// WatchManifest enables live manifest reload via the file watcher.
	WatchManifest bool

	// TimestampFormat is the time layout for event rows.
	TimestampFormat string

	// PayloadLines caps expanded payload rendering. Zero means no cap.
	PayloadLines int

	// Logger receives structured diagnostics. Nil falls back to a
	// no-op logger.
	Logger *logging.Logger
}

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	opts    Options
}

// New creates a new TUI application
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	return &App{
		model: NewModel(opts),
		opts:  opts,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	log := a.opts.Logger.WithComponent("tui")

	// Subscribe before the program starts so no events are missed
	if a.opts.Source != nil && a.opts.Session != nil {
		if a.opts.Session.Attach(a.opts.Source) {
			defer a.opts.Session.Detach()
			log.Info("attached to event source")
		} else {
			// Source lacks wildcard subscription: monitor shows an
			// empty stream rather than failing
			log.Warn("event source does not support wildcard subscription")
		}
	}

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Repaint whenever the buffer changes
	if a.opts.Buffer != nil {
		cancel := a.opts.Buffer.OnChange(func() {
			a.program.Send(bufferChangedMsg{})
		})
		defer cancel()
	}

	// Live manifest reload
	if a.opts.WatchManifest && a.opts.ManifestPath != "" {
		watcher, err := agent.Watch(a.opts.ManifestPath, func(m *agent.Manifest, err error) {
			a.program.Send(manifestMsg{manifest: m, err: err})
		})
		if err != nil {
			log.Warn("manifest watch unavailable", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}

// Messages

// bufferChangedMsg signals that the capture buffer mutated and the
// event panel should re-snapshot.
type bufferChangedMsg struct{}

// manifestMsg carries a manifest reload result from the file watcher.
type manifestMsg struct {
	manifest *agent.Manifest
	err      error
}
