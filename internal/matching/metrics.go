// internal/matching/metrics.go

package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_searches_total",
			Help: "Total number of match searches performed",
		},
	)

	matchPercentages = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_match_percentages",
			Help:    "Distribution of computed match percentages",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

func recordSearch() {
	matchSearchesTotal.Inc()
}

func recordMatchPercentage(percentage int) {
	matchPercentages.Observe(float64(percentage))
}
