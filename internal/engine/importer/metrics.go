package importer

import "github.com/prometheus/client_golang/prometheus"

const (
	decisionReady   = "ready"
	decisionVerify  = "verify"
	decisionFetch   = "fetch"
	decisionPending = "pending"
	decisionFailed  = "failed"
)

// Metrics holds Prometheus metrics for import decisions.
type Metrics struct {
	decisions *prometheus.CounterVec
	fields    prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assetimport",
			Subsystem: "importer",
			Name:      "decisions_total",
			Help:      "Import decisions, by result",
		}, []string{"decision"}),
		fields: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "assetimport",
			Subsystem: "importer",
			Name:      "bulk_fields_total",
			Help:      "Content fields visited by bulk imports",
		}),
	}
}

func (m *Metrics) register(reg prometheus.Registerer) error {
	if err := reg.Register(m.decisions); err != nil {
		return err
	}
	return reg.Register(m.fields)
}
