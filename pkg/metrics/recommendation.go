package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendations HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Latency of the fuzzy search handler
	FuzzySearchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fuzzy_search_latency_seconds",
		Help:    "Latency of the fuzzy product search handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of fuzzy search requests served
	FuzzySearchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fuzzy_search_requests_total",
		Help: "Total number of fuzzy search requests",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		FuzzySearchLatency,
		FuzzySearchRequests,
	)
}
