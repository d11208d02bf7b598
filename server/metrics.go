// SPDX-License-Identifier: MIT

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequests counts requests by route pattern and status code.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cofactor_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"route", "status"})

	// httpDuration tracks request latency.
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cofactor_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
	}, []string{"route"})

	// computations counts engine calls by operation and outcome.
	computations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cofactor_computations_total",
		Help: "Engine computations by operation and result",
	}, []string{"op", "result"})

	// matrixOrder tracks the order of accepted matrices.
	matrixOrder = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cofactor_matrix_order",
		Help:    "Order of matrices submitted to the engine",
		Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10, 12},
	})
)

// Metrics records request count and latency per chi route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		httpRequests.WithLabelValues(route, strconv.Itoa(rw.statusCode)).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
