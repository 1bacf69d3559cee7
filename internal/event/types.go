package event

import "time"

// Event is the interface that all events must implement.
// It provides a common way to identify, attribute, and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category:action" (e.g., "panel:toggle", "file:opened")
	EventType() string

	// Source returns the identifier of the component that emitted the event.
	Source() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time

	// Payload returns the structured data carried by the event.
	// May be nil for events that carry no data.
	Payload() any
}

// Record is a generic event envelope. Components that do not define their
// own event types publish Records directly.
type Record struct {
	eventType string
	source    string
	timestamp time.Time
	payload   any
}

// NewRecord creates a Record with the current time.
func NewRecord(eventType, source string, payload any) Record {
	return Record{
		eventType: eventType,
		source:    source,
		timestamp: time.Now(),
		payload:   payload,
	}
}

// NewRecordAt creates a Record with an explicit timestamp.
// Used when replaying or translating events that carry their own clock.
func NewRecordAt(eventType, source string, timestamp time.Time, payload any) Record {
	return Record{
		eventType: eventType,
		source:    source,
		timestamp: timestamp,
		payload:   payload,
	}
}

func (r Record) EventType() string    { return r.eventType }
func (r Record) Source() string       { return r.source }
func (r Record) Timestamp() time.Time { return r.timestamp }
func (r Record) Payload() any         { return r.payload }

// Handler is a function that handles an event.
type Handler func(Event)

// Source is the capability surface a host event stream must provide.
// Subscribe registers a handler for a single event type and returns a
// cancel function that deregisters it.
type Source interface {
	Subscribe(eventType string, handler Handler) (cancel func())
}

// WildcardSource is the optional wildcard-subscription capability.
// A Source may or may not implement it; callers detect support with a
// type assertion before use.
type WildcardSource interface {
	SubscribeAll(handler Handler) (cancel func())
}
