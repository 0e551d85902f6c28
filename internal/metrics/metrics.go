// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database metrics
var (
	// DBQueryDuration tracks database query latency in seconds by statement kind
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks failed database queries by statement kind
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total failed database queries",
		},
		[]string{"query"},
	)
)

// Connection pool metrics
var (
	// PoolAcquireDuration tracks how long callers wait for a pooled connection
	PoolAcquireDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "db_pool_acquire_duration_seconds",
			Help:    "Time spent waiting to acquire a pooled connection",
			Buckets: []float64{.0001, .001, .01, .05, .1, .5, 1, 5},
		},
	)

	// PoolAcquireTimeouts tracks acquire attempts that timed out
	PoolAcquireTimeouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "db_pool_acquire_timeouts_total",
			Help: "Total connection acquisitions that timed out",
		},
	)

	// PoolConnections tracks current pool connections by state (idle/in_use/max)
	PoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_pool_connections_current",
			Help: "Current pool connections by state (idle/in_use/max)",
		},
		[]string{"state"},
	)
)

// HTTP metrics
var (
	// HTTPRequestDuration tracks HTTP request latency by method, route, and status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestsTotal tracks HTTP requests by method, route, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPInFlight tracks requests currently being processed
	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)
