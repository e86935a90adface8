package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	// Logins por rol resuelto y resultado (success, invalid_credentials, blocked).
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Login attempts by resolved role and result.",
		},
		[]string{"role", "result"},
	)
	RefreshRotations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_refresh_rotations_total",
			Help: "Refresh token rotations by origin (middleware, endpoint) and result.",
		},
		[]string{"origin", "result"},
	)
)

// Register agrega los collectors de la API y los del runtime de Go al registry.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(
		RequestCount, RequestDuration, Logins, RefreshRotations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
