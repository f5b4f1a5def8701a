package server

import (
	"net/http"
	"time"

	"github.com/yourusername/siggys-picks/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument records request count and latency per route
func instrument(next http.Handler, metricsPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.RecordHTTPRequest(routeLabel(r.URL.Path, metricsPath), rec.status, time.Since(start).Seconds())
	})
}

// routeLabel keeps label cardinality bounded to the known routes.
func routeLabel(path, metricsPath string) string {
	switch path {
	case "/health", "/ready", "/live", "/v1/picks", metricsPath:
		return path
	default:
		return "other"
	}
}
