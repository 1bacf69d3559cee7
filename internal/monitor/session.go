package monitor

import "github.com/Iron-Ham/spyglass/internal/event"

// Session owns the wildcard subscription that feeds a capture buffer.
// Its lifecycle is Unsubscribed -> Subscribed -> Unsubscribed: Attach
// registers the handler with the host source, Detach releases it.
// Pause and resume are buffer-level toggles and never touch the
// subscription itself.
//
// A Session is driven from a single goroutine (the panel lifecycle);
// it is not safe for concurrent Attach/Detach.
type Session struct {
	buffer *Buffer
	cancel func()
}

// NewSession creates a session that appends captured events to buffer.
func NewSession(buffer *Buffer) *Session {
	return &Session{buffer: buffer}
}

// Attach subscribes to every event the source dispatches and begins
// feeding the buffer. If the session was already attached, the previous
// subscription is released first.
//
// Wildcard subscription is an optional host capability: if src does not
// implement event.WildcardSource the session stays detached and Attach
// returns false. The monitor then simply displays nothing; absence of
// the capability is not an error.
func (s *Session) Attach(src event.Source) bool {
	s.Detach()

	ws, ok := src.(event.WildcardSource)
	if !ok {
		return false
	}

	s.cancel = ws.SubscribeAll(func(ev event.Event) {
		s.buffer.Append(ev)
	})
	return true
}

// Detach releases the wildcard handler. It is idempotent and safe to
// call on a session that never attached. No events are captured after
// Detach returns.
func (s *Session) Detach() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Subscribed reports whether the session currently holds a live
// subscription.
func (s *Session) Subscribed() bool {
	return s.cancel != nil
}

// Buffer returns the capture buffer this session feeds.
func (s *Session) Buffer() *Buffer {
	return s.buffer
}
