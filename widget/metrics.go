package widget

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the widget controller.
type Metrics struct {
	Registry            *prometheus.Registry
	LoadsTotal          *prometheus.CounterVec
	LoadDuration        prometheus.Histogram
	RecordsKeptTotal    prometheus.Counter
	RecordsDroppedTotal *prometheus.CounterVec
	SearchesTotal       prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	loads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_loads_total",
			Help: "Total catalog loads by result.",
		},
		[]string{"result"},
	)
	loadDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "widget_load_duration_seconds",
			Help:    "Catalog load latency, fetch through render.",
			Buckets: prometheus.DefBuckets,
		},
	)
	kept := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "widget_records_kept_total",
			Help: "Total feed records accepted into the catalog.",
		},
	)
	dropped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_records_dropped_total",
			Help: "Total feed records rejected during sanitization, by reason.",
		},
		[]string{"reason"},
	)
	searches := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "widget_searches_total",
			Help: "Total search queries applied to the catalog.",
		},
	)

	registry.MustRegister(loads, loadDuration, kept, dropped, searches)

	return &Metrics{
		Registry:            registry,
		LoadsTotal:          loads,
		LoadDuration:        loadDuration,
		RecordsKeptTotal:    kept,
		RecordsDroppedTotal: dropped,
		SearchesTotal:       searches,
	}
}

// IncLoad increments the loads counter for a result label.
func (m *Metrics) IncLoad(result string) {
	if m == nil {
		return
	}
	m.LoadsTotal.WithLabelValues(result).Inc()
}

// ObserveLoadDuration records how long one catalog load took.
func (m *Metrics) ObserveLoadDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.LoadDuration.Observe(d.Seconds())
}

// AddSanitized records the outcome of one sanitization pass.
func (m *Metrics) AddSanitized(kept int, drops map[string]int) {
	if m == nil {
		return
	}
	m.RecordsKeptTotal.Add(float64(kept))
	for reason, n := range drops {
		m.RecordsDroppedTotal.WithLabelValues(reason).Add(float64(n))
	}
}

// IncSearch increments the searches counter.
func (m *Metrics) IncSearch() {
	if m == nil {
		return
	}
	m.SearchesTotal.Inc()
}
