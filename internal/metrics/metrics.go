// Package metrics exposes Prometheus instrumentation for the estimator server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "premium_estimator_requests_total",
			Help: "Total number of HTTP requests per endpoint and status code",
		},
		[]string{"endpoint", "code"},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "premium_estimator_request_duration_seconds",
			Help:    "Request duration in seconds per endpoint",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ValidationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "premium_estimator_validation_errors_total",
			Help: "Total number of rejected estimate inputs per field",
		},
		[]string{"field"},
	)

	EstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "premium_estimator_estimates_total",
			Help: "Total number of priced estimates per coverage level and home type",
		},
		[]string{"coverage_level", "home_type"},
	)

	AnnualPremiumDollars = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "premium_estimator_annual_premium_dollars",
			Help:    "Distribution of estimated annual premiums in whole dollars",
			Buckets: prometheus.ExponentialBuckets(250, 2, 8),
		},
	)
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(endpoint string, status int, startedAt time.Time) {
	RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	RequestDurationSeconds.WithLabelValues(endpoint).Observe(time.Since(startedAt).Seconds())
}

// ObserveEstimate records one priced estimate.
func ObserveEstimate(coverageLevel, homeType string, annual int64) {
	EstimatesTotal.WithLabelValues(coverageLevel, homeType).Inc()
	AnnualPremiumDollars.Observe(float64(annual))
}

// ObserveValidationError records one rejected input field.
func ObserveValidationError(field string) {
	ValidationErrorsTotal.WithLabelValues(field).Inc()
}
