// Package metrics provides Prometheus metrics for drivesafe.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheLookups counts cache-aside reads by outcome (hit, miss).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "drivesafe",
			Name:      "cache_lookups_total",
			Help:      "Total number of cache-aside lookups by result",
		},
		[]string{"result"},
	)

	// CacheErrors counts swallowed cache failures. Requests still succeed when
	// this grows; it is the only signal of a cache outage.
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "drivesafe",
			Name:      "cache_errors_total",
			Help:      "Total number of cache operation failures",
		},
		[]string{"operation"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "drivesafe",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "drivesafe",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()
}

// RecordCacheError records a failed cache operation (get, set, delete, decode, encode).
func RecordCacheError(operation string) {
	CacheErrors.WithLabelValues(operation).Inc()
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route, status string, duration float64) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}
