package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pageRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "console_page_requests_total",
		Help: "Console page requests by method and status.",
	}, []string{"method", "status"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "console_upstream_request_seconds",
		Help:    "Latency of requests to the admin API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveUpstream records one admin API round trip. A zero status means the
// request failed before a response arrived.
func ObserveUpstream(method string, status int, elapsed time.Duration) {
	upstreamDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware counts every console request by method and response status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		pageRequests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}
