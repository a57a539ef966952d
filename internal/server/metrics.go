package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess    = "success"
	outcomeReadFailed = "read_failed"
	outcomeMalformed  = "malformed"
	outcomeError      = "error"
)

// Metrics holds the import service collectors.
type Metrics struct {
	ImportsTotal *prometheus.CounterVec
}

// NewMetrics creates the service collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ImportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scrambles_matcher",
			Name:      "imports_total",
			Help:      "Imports handled, by source and outcome.",
		}, []string{"source", "outcome"}),
	}
	reg.MustRegister(m.ImportsTotal)
	return m
}
