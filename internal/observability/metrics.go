package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingRequestsTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "drively", Name: "booking_requests_total", Help: "Total booking requests created"})
	BookingConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "drively", Name: "booking_conflicts_total", Help: "Booking requests rejected for date conflicts"})
	QuotesTotal           = promauto.NewCounter(prometheus.CounterOpts{Namespace: "drively", Name: "quotes_total", Help: "Total pricing quotes computed"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "drively", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "drively",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "drively", Name: "job_runs_total", Help: "Scheduled job executions by outcome"},
		[]string{"job", "outcome"},
	)
)
