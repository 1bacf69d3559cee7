// Package monitor implements the core of the event-stream monitor:
// a bounded capture buffer over an incoming event stream, a filter
// evaluator that computes the visible subset of the buffer, and the
// subscription session that ties a buffer to a host event source.
//
// The package is independent of any rendering framework. The TUI layer
// consumes snapshots and change notifications; it never reaches into
// buffer internals.
package monitor
