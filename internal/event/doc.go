// Package event defines the event envelope carried between spyglass
// components and the synchronous pub-sub bus that dispatches it.
//
// Events are identified by a namespaced type string (e.g. "panel:toggle")
// and a source string naming the emitter. The Bus delivers published
// events synchronously, first to type-scoped subscribers and then to
// wildcard subscribers, in registration order within each group.
//
// Hosts that provide an event stream are modeled by the Source interface.
// Wildcard subscription is an optional capability expressed by the
// separate WildcardSource interface; consumers detect it with a type
// assertion and must treat its absence as an empty stream rather than an
// error. Bus satisfies both interfaces.
package event
