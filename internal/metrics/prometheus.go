package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AssessmentDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "career_match_assessment_duration_seconds",
			Help:    "Assessment processing duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	AssessmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_match_assessments_total",
			Help: "Total number of assessments processed",
		},
		[]string{"status"},
	)

	MatchesReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "career_match_matches_returned",
			Help:    "Number of careers above threshold per assessment",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20},
		},
	)

	TopMatchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "career_match_top_score",
			Help:    "Composite score of the best match per assessment",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "career_match_cache_hits_total",
			Help: "Total result cache hits",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "career_match_cache_misses_total",
			Help: "Total result cache misses",
		},
	)

	SubmissionsLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "career_match_submissions_limited_total",
			Help: "Total assessment submissions rejected by the rate limiter",
		},
	)
)

func Init() {
	prometheus.MustRegister(AssessmentDuration)
	prometheus.MustRegister(AssessmentsTotal)
	prometheus.MustRegister(MatchesReturned)
	prometheus.MustRegister(TopMatchScore)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(SubmissionsLimited)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
