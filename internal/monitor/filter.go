package monitor

import "strings"

// Filter holds the type and source substring queries applied to a
// capture buffer snapshot. Filter state is independent of buffer
// content; editing a query never mutates the buffer.
type Filter struct {
	typeQuery   string
	sourceQuery string
}

// NewFilter creates a Filter with no active queries (identity filter).
func NewFilter() *Filter {
	return &Filter{}
}

// TypeQuery returns the current event-type substring query.
func (f *Filter) TypeQuery() string { return f.typeQuery }

// SourceQuery returns the current source substring query.
func (f *Filter) SourceQuery() string { return f.sourceQuery }

// SetTypeQuery sets the event-type substring query.
func (f *Filter) SetTypeQuery(q string) { f.typeQuery = q }

// SetSourceQuery sets the source substring query.
func (f *Filter) SetSourceQuery(q string) { f.sourceQuery = q }

// Reset clears both queries, restoring the identity filter.
func (f *Filter) Reset() {
	f.typeQuery = ""
	f.sourceQuery = ""
}

// Active reports whether any query is set.
func (f *Filter) Active() bool {
	return f.typeQuery != "" || f.sourceQuery != ""
}

// Apply computes the visible subset of a buffer snapshot: every entry
// whose event type contains the type query AND whose source contains
// the source query, both as case-insensitive substrings. Empty queries
// match everything. Apply is pure: the input slice is not mutated and
// output order matches insertion order.
func (f *Filter) Apply(entries []Captured) []Captured {
	if !f.Active() {
		return entries
	}

	typeQ := strings.ToLower(f.typeQuery)
	sourceQ := strings.ToLower(f.sourceQuery)

	visible := make([]Captured, 0, len(entries))
	for _, c := range entries {
		if typeQ != "" && !strings.Contains(strings.ToLower(c.Event.EventType()), typeQ) {
			continue
		}
		if sourceQ != "" && !strings.Contains(strings.ToLower(c.Event.Source()), sourceQ) {
			continue
		}
		visible = append(visible, c)
	}
	return visible
}

// Matches reports whether a single entry passes the current queries.
func (f *Filter) Matches(c Captured) bool {
	if f.typeQuery != "" &&
		!strings.Contains(strings.ToLower(c.Event.EventType()), strings.ToLower(f.typeQuery)) {
		return false
	}
	if f.sourceQuery != "" &&
		!strings.Contains(strings.ToLower(c.Event.Source()), strings.ToLower(f.sourceQuery)) {
		return false
	}
	return true
}

// UniqueTypes returns the distinct event types present in the snapshot,
// in first-seen order. Used to power autocomplete in the filter input.
func UniqueTypes(entries []Captured) []string {
	return uniqueBy(entries, func(c Captured) string { return c.Event.EventType() })
}

// UniqueSources returns the distinct sources present in the snapshot,
// in first-seen order.
func UniqueSources(entries []Captured) []string {
	return uniqueBy(entries, func(c Captured) string { return c.Event.Source() })
}

func uniqueBy(entries []Captured, key func(Captured) string) []string {
	seen := make(map[string]struct{}, len(entries))
	var out []string
	for _, c := range entries {
		k := key(c)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
