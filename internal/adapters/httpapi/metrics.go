package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chatflow",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "API requests by method and status code.",
	}, []string{"method", "code"})

	saveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "chatflow",
		Subsystem: "api",
		Name:      "save_duration_seconds",
		Help:      "Time spent handling automation create/update requests.",
		Buckets:   prometheus.DefBuckets,
	})
)

func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
	})
}
