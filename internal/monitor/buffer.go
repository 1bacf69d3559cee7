package monitor

import (
	"sync"

	"github.com/Iron-Ham/spyglass/internal/event"
)

// DefaultMaxEvents is the retention window used when no explicit
// capacity is configured.
const DefaultMaxEvents = 200

// Captured is a single retained entry in the capture buffer.
type Captured struct {
	// Seq is a monotonically increasing sequence id assigned at capture
	// time. Ids are unique for the lifetime of the buffer and are never
	// reused, even across Clear.
	Seq uint64

	// Event is the captured event as delivered by the host.
	Event event.Event

	// Expanded marks whether the UI shows the event payload inline.
	// It has no effect on capture or filtering.
	Expanded bool
}

// Buffer retains the most recent events appended to it, up to a fixed
// capacity. When the buffer is full, appending drops the oldest entry
// (FIFO eviction), never the newest.
//
// All methods are safe for concurrent use. The expected topology is a
// single writer (the subscription handler) and one reader (the UI), but
// the demo feed publishes from its own goroutine, so the buffer keeps a
// mutex the same way the output ring buffer does.
type Buffer struct {
	mu           sync.RWMutex
	entries      []Captured
	max          int
	nextSeq      uint64
	paused       bool
	listeners    map[uint64]func()
	nextListener uint64
}

// NewBuffer creates an empty capture buffer that retains at most
// maxEvents entries. Values below 1 are clamped to 1.
func NewBuffer(maxEvents int) *Buffer {
	if maxEvents < 1 {
		maxEvents = 1
	}
	return &Buffer{
		max:       maxEvents,
		listeners: make(map[uint64]func()),
	}
}

// Append captures an event, assigning it the next sequence id.
// If the buffer is at capacity the oldest entry is evicted. While the
// buffer is paused the event is dropped silently; there is no queueing
// and no backpressure. Append never fails.
func (b *Buffer) Append(ev event.Event) {
	b.mu.Lock()
	if b.paused {
		b.mu.Unlock()
		return
	}

	b.nextSeq++
	b.entries = append(b.entries, Captured{Seq: b.nextSeq, Event: ev})
	if len(b.entries) > b.max {
		b.entries = b.entries[len(b.entries)-b.max:]
	}
	b.mu.Unlock()

	b.notify()
}

// Clear empties the buffer. The sequence counter is not reset, so ids
// assigned after a clear continue the global ordering.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.entries = nil
	b.mu.Unlock()

	b.notify()
}

// SetPaused toggles capture. While paused, Append calls are no-ops; the
// subscription that feeds the buffer stays registered.
func (b *Buffer) SetPaused(paused bool) {
	b.mu.Lock()
	changed := b.paused != paused
	b.paused = paused
	b.mu.Unlock()

	if changed {
		b.notify()
	}
}

// Paused reports whether capture is currently suspended.
func (b *Buffer) Paused() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.paused
}

// Snapshot returns a copy of the current contents in insertion order.
// The returned slice is independent of the buffer; mutating it does not
// affect retained entries.
func (b *Buffer) Snapshot() []Captured {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Captured, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of retained entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Cap returns the retention window size.
func (b *Buffer) Cap() int {
	return b.max
}

// LastSeq returns the most recently assigned sequence id, or 0 if no
// event has ever been captured.
func (b *Buffer) LastSeq() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.nextSeq
}

// SetExpanded sets the UI expansion flag on the retained entry with the
// given sequence id. Returns false if the entry has been evicted or
// never existed.
func (b *Buffer) SetExpanded(seq uint64, expanded bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.entries {
		if b.entries[i].Seq == seq {
			b.entries[i].Expanded = expanded
			return true
		}
	}
	return false
}

// OnChange registers a listener invoked after every buffer mutation
// (append, clear, pause toggle). The returned cancel function removes
// the listener and is safe to call more than once.
//
// Listeners are called outside the buffer lock and must not block.
func (b *Buffer) OnChange(fn func()) (cancel func()) {
	b.mu.Lock()
	b.nextListener++
	id := b.nextListener
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// notify invokes registered listeners with the lock released.
func (b *Buffer) notify() {
	b.mu.RLock()
	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
