package observability

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/primer/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics collects run counters through lifecycle hooks.
type Metrics struct {
	registry   *prometheus.Registry
	NodeVisits *prometheus.CounterVec
	LogicCalls *prometheus.CounterVec
	Inputs     prometheus.Counter
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		NodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "primer_node_visits_total",
				Help: "Total number of node visits",
			},
			[]string{"node_id", "node_type"},
		),
		LogicCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "primer_logic_calls_total",
				Help: "Total number of logic function calls",
			},
			[]string{"function", "status"},
		),
		Inputs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "primer_inputs_total",
				Help: "Total number of answered questions",
			},
		),
	}
	m.registry.MustRegister(m.NodeVisits, m.LogicCalls, m.Inputs)
	return m
}

// Registry exposes the underlying registry (e.g. for testutil).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			m.NodeVisits.WithLabelValues(e.NodeID, e.NodeType).Inc()
		},
		OnNodeLeave: func(_ context.Context, e *domain.NodeEvent) {
			if e.NodeType == domain.NodeTypeQuestion {
				m.Inputs.Inc()
			}
		},
		OnLogicCall: func(_ context.Context, e *domain.LogicEvent) {
			status := "ok"
			if e.IsError {
				status = "error"
			}
			m.LogicCalls.WithLabelValues(e.Function, status).Inc()
		},
	}
}

// WriteText dumps every metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
