package live

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the live transport.
type metrics struct {
	activeSessions prometheus.Gauge
	eventsTotal    *prometheus.CounterVec
	filesAccepted  prometheus.Counter
	filesRejected  *prometheus.CounterVec
	capturesTotal  prometheus.Counter
	uploadsTotal   *prometheus.CounterVec
}

var (
	globalMetrics     *metrics
	globalMetricsOnce sync.Once
)

// getMetrics initializes the metric set on first use. Registration goes to
// the default registerer; a process hosting several handlers shares one set.
func getMetrics() *metrics {
	globalMetricsOnce.Do(func() {
		factory := promauto.With(prometheus.DefaultRegisterer)

		globalMetrics = &metrics{
			activeSessions: factory.NewGauge(prometheus.GaugeOpts{
				Namespace: "dropkit",
				Name:      "active_sessions",
				Help:      "Number of connected widget sessions",
			}),

			eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: "dropkit",
				Name:      "events_total",
				Help:      "Total gestures received from clients",
			}, []string{"event"}),

			filesAccepted: factory.NewCounter(prometheus.CounterOpts{
				Namespace: "dropkit",
				Name:      "files_accepted_total",
				Help:      "Total files accepted into pending sets",
			}),

			filesRejected: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: "dropkit",
				Name:      "files_rejected_total",
				Help:      "Total files refused by validation",
			}, []string{"reason"}),

			capturesTotal: factory.NewCounter(prometheus.CounterOpts{
				Namespace: "dropkit",
				Name:      "captures_total",
				Help:      "Total camera captures accepted",
			}),

			uploadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: "dropkit",
				Name:      "uploads_total",
				Help:      "Total upload attempts by outcome",
			}, []string{"status"}),
		}
	})
	return globalMetrics
}
