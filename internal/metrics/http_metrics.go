// Package metrics defines HTTP surface metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTP counter vectors
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by path and status code",
	}, []string{"path", "status"})

	RateLimitedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of pick requests rejected by the rate limiter",
	})

	OverrideCacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "override_cache_lookups_total",
		Help:      "Override resolution cache lookups by result",
	}, []string{"result"})
)

// HTTP histogram vectors
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by path",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})
)

// RecordHTTPRequest records a served request.
func RecordHTTPRequest(path string, status int, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(path).Observe(durationSeconds)
}

// RecordRateLimited records a request rejected by the limiter.
func RecordRateLimited() {
	RateLimitedTotal.Inc()
}

// RecordOverrideCacheLookup records an override cache hit or miss.
func RecordOverrideCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	OverrideCacheLookupsTotal.WithLabelValues(result).Inc()
}
