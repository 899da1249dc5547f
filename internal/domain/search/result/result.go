// Package result defines the search pipeline output handed to renderers.
package result

// Item is a single ranked match.
type Item struct {
	Name    string
	Score   float64
	Reasons []string
}

// Result is the ordered, annotated outcome of one search invocation.
// Items is never longer than the configured limit. ActiveFilters holds the
// display labels for the filter-summary widget, in a fixed order.
type Result struct {
	Items         []Item
	ActiveFilters []string
}

// Empty reports whether the search produced no matches.
func (r Result) Empty() bool { return len(r.Items) == 0 }
