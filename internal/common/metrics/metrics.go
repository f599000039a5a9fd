// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Recommendation requests answered, by algorithm and generation strategy",
		},
		[]string{"algorithm", "strategy"},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of ranked results returned per request",
			Buckets: []float64{0, 1, 2, 3},
		},
	)

	RecommendationConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_confidence",
			Help:    "Confidence score of each returned recommendation",
			Buckets: prometheus.LinearBuckets(65, 5, 7),
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_cache_lookups_total",
			Help: "Response cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	LogSinkErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_log_errors_total",
			Help: "Failed appends to the recommendation log, by sink",
		},
		[]string{"sink"},
	)

	MentorContacts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentor_contacts_total",
			Help: "Mentor contact requests by delivery channel and status",
		},
		[]string{"channel", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "API request latency",
		},
		[]string{"route", "method", "status"},
	)
)

// ObserveRecommendation records one served response and the confidence of
// each recommendation in it.
func ObserveRecommendation(algorithm, strategy string, confidences []int) {
	RecommendationsServed.WithLabelValues(algorithm, strategy).Inc()
	RecommendationResults.Observe(float64(len(confidences)))
	for _, c := range confidences {
		RecommendationConfidence.Observe(float64(c))
	}
}
