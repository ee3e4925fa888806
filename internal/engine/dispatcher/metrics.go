package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for dispatcher monitoring.
type Metrics struct {
	queueDepth prometheus.Gauge
	inFlight   prometheus.Gauge
	tasks      *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics() *Metrics {
	return &Metrics{
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "assetimport",
			Subsystem: "dispatcher",
			Name:      "queue_depth",
			Help:      "Fetch tasks waiting for a worker",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "assetimport",
			Subsystem: "dispatcher",
			Name:      "in_flight",
			Help:      "Fetch tasks currently executing",
		}),
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assetimport",
			Subsystem: "dispatcher",
			Name:      "tasks_total",
			Help:      "Fetch tasks finished, by kind and outcome",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "assetimport",
			Subsystem: "dispatcher",
			Name:      "task_duration_seconds",
			Help:      "Time spent executing fetch tasks",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"outcome"}),
	}
}

func (m *Metrics) register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.queueDepth, m.inFlight, m.tasks, m.duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
