package compat

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/pipecheck/metric"
)

// checkerMetrics holds Prometheus metrics for compatibility evaluations.
type checkerMetrics struct {
	checksTotal   prometheus.Counter       // Evaluations performed
	warningsTotal *prometheus.CounterVec   // By severity
	ruleTriggers  *prometheus.CounterVec   // By rule id
	ruleFailures  *prometheus.CounterVec   // Recovered condition panics, by rule id
	checkDuration prometheus.Histogram     // Full evaluation duration
}

// newCheckerMetrics creates and registers checker metrics with the provided
// registry. A nil registry disables metrics.
func newCheckerMetrics(registry *metric.Registry) (*checkerMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &checkerMetrics{
		checksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipecheck",
			Subsystem: "compat",
			Name:      "checks_total",
			Help:      "Total number of pipeline compatibility evaluations",
		}),

		warningsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pipecheck",
			Subsystem: "compat",
			Name:      "warnings_total",
			Help:      "Total number of triggered compatibility warnings",
		}, []string{"severity"}),

		ruleTriggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pipecheck",
			Subsystem: "compat",
			Name:      "rule_triggers_total",
			Help:      "Total number of times each compatibility rule triggered",
		}, []string{"rule"}),

		ruleFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pipecheck",
			Subsystem: "compat",
			Name:      "rule_failures_total",
			Help:      "Total number of recovered rule condition panics",
		}, []string{"rule"}),

		checkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pipecheck",
			Subsystem: "compat",
			Name:      "check_duration_seconds",
			Help:      "Compatibility evaluation duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}

	if err := registry.RegisterCounter("compat", "checks_total", m.checksTotal); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("compat", "warnings_total", m.warningsTotal); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("compat", "rule_triggers", m.ruleTriggers); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("compat", "rule_failures", m.ruleFailures); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogram("compat", "check_duration", m.checkDuration); err != nil {
		return nil, err
	}

	return m, nil
}

// recordCheck records one completed evaluation.
func (m *checkerMetrics) recordCheck(warnings []Warning, duration time.Duration) {
	if m == nil {
		return
	}

	m.checksTotal.Inc()
	m.checkDuration.Observe(duration.Seconds())
	for _, w := range warnings {
		m.warningsTotal.WithLabelValues(string(w.Severity)).Inc()
		m.ruleTriggers.WithLabelValues(w.Rule).Inc()
	}
}

// recordRuleFailure records a recovered rule condition panic.
func (m *checkerMetrics) recordRuleFailure(ruleID string) {
	if m == nil {
		return
	}

	m.ruleFailures.WithLabelValues(ruleID).Inc()
}
