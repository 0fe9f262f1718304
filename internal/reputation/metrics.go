// internal/reputation/metrics.go

package reputation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ratingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_ratings_total",
			Help: "Total number of chat ratings applied",
		},
		[]string{"result"},
	)

	reviewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reputation_reviews_total",
			Help: "Total number of star reviews submitted",
		},
	)

	reviewStars = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reputation_review_stars",
			Help:    "Distribution of submitted review stars",
			Buckets: prometheus.LinearBuckets(1, 1, 5),
		},
	)
)

func recordRating(isGood bool) {
	result := "good"
	if !isGood {
		result = "bad"
	}
	ratingsTotal.WithLabelValues(result).Inc()
}

func recordReview(stars int) {
	reviewsTotal.Inc()
	reviewStars.Observe(float64(stars))
}
