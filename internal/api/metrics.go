package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "barbacoa",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by route pattern, method and status code.",
}, []string{"route", "method", "status"})

var httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "barbacoa",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by route pattern.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route"})

var closingsSaved = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "barbacoa",
	Subsystem: "corte",
	Name:      "closings_saved_total",
	Help:      "Cash closings created or updated.",
})

var lastCashVariance = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "barbacoa",
	Subsystem: "corte",
	Name:      "last_cash_variance",
	Help:      "Cash variance of the most recently saved closing.",
})

var ledgerEntries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "barbacoa",
	Subsystem: "ledger",
	Name:      "entries_total",
	Help:      "Orders, expenses and tips recorded through the API.",
}, []string{"kind"})

func observeVariance(v decimal.Decimal) {
	f, _ := v.Float64()
	lastCashVariance.Set(f)
}

// metricsMiddleware records request counts and latency per route pattern.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
