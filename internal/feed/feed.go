// Package feed generates synthetic events for demo sessions.
// It exists so the monitor can be exercised without a real host; the
// core never owns a timer, only this harness does.
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/Iron-Ham/spyglass/internal/event"
)

// DefaultInterval is the publish cadence used when none is configured.
const DefaultInterval = 400 * time.Millisecond

// sample is one entry in the rotating script of demo events.
type sample struct {
	eventType string
	source    string
	payload   func(n int) any
}

var samples = []sample{
	{"panel:toggle", "host", func(n int) any { return map[string]any{"panel": "events", "visible": n%2 == 0} }},
	{"file:opened", "editor", func(n int) any { return map[string]any{"path": fmt.Sprintf("src/module_%d.go", n%7)} }},
	{"file:closed", "editor", func(n int) any { return map[string]any{"path": fmt.Sprintf("src/module_%d.go", n%7)} }},
	{"net:request", "gateway", func(n int) any { return map[string]any{"method": "GET", "status": 200 + 100*(n%3)} }},
	{"agent:message", "agent", func(n int) any { return map[string]any{"turn": n, "role": "assistant"} }},
	{"file:error", "watcher", func(n int) any { return map[string]any{"path": "src/broken.go", "reason": "permission denied"} }},
}

// Feed publishes a rotating script of plausible events to a bus at a
// fixed interval.
type Feed struct {
	bus      *event.Bus
	interval time.Duration
}

// New creates a feed targeting bus. A non-positive interval falls back
// to DefaultInterval.
func New(bus *event.Bus, interval time.Duration) *Feed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Feed{bus: bus, interval: interval}
}

// Run publishes events until ctx is cancelled. It blocks; callers run
// it on its own goroutine.
func (f *Feed) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := samples[n%len(samples)]
			f.bus.Publish(event.NewRecord(s.eventType, s.source, s.payload(n)))
			n++
		}
	}
}
