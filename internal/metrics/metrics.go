package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Search outcome label values
const (
	OutcomeResults = "results"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
	OutcomeStale   = "stale"
)

var (
	// SearchesTotal counts submitted searches by how they ended.
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showsearch_searches_total",
			Help: "Total number of submitted searches by outcome.",
		},
		[]string{"outcome"},
	)

	// UpstreamRequestDuration observes TVMaze round trips. The status label is the
	// HTTP status code, or "error" when no response was received.
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "showsearch_upstream_request_duration_seconds",
			Help:    "Duration of requests to the show search API.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		SearchesTotal,
		UpstreamRequestDuration,
	)
}
