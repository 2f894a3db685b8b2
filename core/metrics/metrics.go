package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for position updates.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Metrics holds the sorter's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	Moves             prometheus.Counter
	PositionUpdates   *prometheus.CounterVec
	ReconcileDuration prometheus.Histogram
	FetchFailures     prometheus.Counter
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Moves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sorter_moves_total",
			Help: "Number of applied move operations.",
		}),
		PositionUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sorter_position_updates_total",
			Help: "Number of position writes sent to the host, by result.",
		}, []string{"result"}),
		ReconcileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sorter_reconcile_duration_seconds",
			Help:    "Time spent pushing a changed set to the host.",
			Buckets: prometheus.DefBuckets,
		}),
		FetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sorter_fetch_failures_total",
			Help: "Number of failed folder fetches.",
		}),
	}
	reg.MustRegister(
		m.Moves,
		m.PositionUpdates,
		m.ReconcileDuration,
		m.FetchFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveUpdates records the outcome of one reconciliation.
func (m *Metrics) ObserveUpdates(ok, failed int, seconds float64) {
	m.PositionUpdates.WithLabelValues(ResultOK).Add(float64(ok))
	m.PositionUpdates.WithLabelValues(ResultFailed).Add(float64(failed))
	m.ReconcileDuration.Observe(seconds)
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
