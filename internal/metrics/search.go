package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchesTotal counts search invocations by outcome
	// (matched, empty, unknown_base).
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamescout",
			Name:      "searches_total",
			Help:      "Total number of similarity searches by outcome",
		},
		[]string{"outcome"},
	)

	// SearchResults observes how many matches each search returned
	// after filtering and truncation.
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "gamescout",
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// DatasetGames reports the number of catalog records loaded.
	DatasetGames = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gamescout",
			Name:      "dataset_games",
			Help:      "Number of games in the loaded catalog",
		},
	)

	// DatasetNeighborLists reports the number of neighbor lists loaded.
	DatasetNeighborLists = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gamescout",
			Name:      "dataset_neighbor_lists",
			Help:      "Number of neighbor lists in the loaded index",
		},
	)
)

// RegisterSearchMetrics registers the search collectors explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(DatasetGames)
	prometheus.MustRegister(DatasetNeighborLists)
}
