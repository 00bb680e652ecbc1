package controller

import (
	"net/http"
	"strconv"
	"time"

	"campaigner/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// WithMetrics returns a middleware that observes request durations in
// metrics.HTTPRequestDuration, labelled by the matched chi route pattern so
// path parameters do not explode label cardinality. It must run inside a chi
// router.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
