package metrics

import "github.com/meeplelab/gamescout/internal/session"

// SearchRecorder consumes search outcomes and feeds the search metrics.
type SearchRecorder struct{}

// OnSearch implements session.Consumer.
func (SearchRecorder) OnSearch(o session.Outcome) {
	switch {
	case !o.Known:
		SearchesTotal.WithLabelValues("unknown_base").Inc()
	case len(o.Result.Items) == 0:
		SearchesTotal.WithLabelValues("empty").Inc()
	default:
		SearchesTotal.WithLabelValues("matched").Inc()
	}
	SearchResults.Observe(float64(len(o.Result.Items)))
}
