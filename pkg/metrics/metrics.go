package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timetrack_http_requests_total",
			Help: "Total de peticiones HTTP procesadas",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "timetrack_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AgendaComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "timetrack_agenda_computations_total",
			Help: "Total de grillas de agenda calculadas",
		},
	)

	AgendaCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "timetrack_agenda_cache_hits_total",
			Help: "Total de aciertos de la caché de agenda",
		},
	)

	AgendaCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "timetrack_agenda_cache_misses_total",
			Help: "Total de fallos de la caché de agenda",
		},
	)

	ConflictRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "timetrack_conflict_rejections_total",
			Help: "Total de escrituras rechazadas por solapamiento",
		},
	)
)

// RecordHTTPRequest registra una petición procesada.
func RecordHTTPRequest(method, path, status string) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}
