// Package metrics exposes Prometheus collectors for the engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles Prometheus collectors for the engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry          *prometheus.Registry
	EmitsTotal        *prometheus.CounterVec
	PushesTotal       *prometheus.CounterVec
	TransportErrors   *prometheus.CounterVec
	StorageRecoveries *prometheus.CounterVec
	PageFetches       *prometheus.CounterVec
}

// New constructs and registers all metrics on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	emits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookmark_channel_emits_total",
			Help: "Events emitted to the backend.",
		},
		[]string{"event"},
	)
	pushes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookmark_channel_pushes_total",
			Help: "Server pushes received by event name.",
		},
		[]string{"event"},
	)
	transportErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookmark_transport_errors_total",
			Help: "Transport failures by operation.",
		},
		[]string{"op"},
	)
	recoveries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookmark_storage_recoveries_total",
			Help: "Corrupt local values read as empty, by key.",
		},
		[]string{"key"},
	)
	fetches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookmark_page_fetches_total",
			Help: "Book page lookups by result.",
		},
		[]string{"result"},
	)

	registry.MustRegister(emits, pushes, transportErrors, recoveries, fetches)

	return &Metrics{
		Registry:          registry,
		EmitsTotal:        emits,
		PushesTotal:       pushes,
		TransportErrors:   transportErrors,
		StorageRecoveries: recoveries,
		PageFetches:       fetches,
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// IncEmit counts an emitted event.
func (m *Metrics) IncEmit(event string) {
	if m == nil {
		return
	}
	m.EmitsTotal.WithLabelValues(event).Inc()
}

// IncPush counts a received push.
func (m *Metrics) IncPush(event string) {
	if m == nil {
		return
	}
	m.PushesTotal.WithLabelValues(event).Inc()
}

// IncTransportError counts a transport failure for op (dial, read, write, decode).
func (m *Metrics) IncTransportError(op string) {
	if m == nil {
		return
	}
	m.TransportErrors.WithLabelValues(op).Inc()
}

// IncStorageRecovery counts a corrupt value that was read as empty.
func (m *Metrics) IncStorageRecovery(key string) {
	if m == nil {
		return
	}
	m.StorageRecoveries.WithLabelValues(key).Inc()
}

// IncPageFetch counts a page lookup with result "hit", "miss" or "error".
func (m *Metrics) IncPageFetch(result string) {
	if m == nil {
		return
	}
	m.PageFetches.WithLabelValues(result).Inc()
}
