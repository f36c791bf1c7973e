package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/pipecheck/errors"
)

func newTestCounter(name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pipecheck",
		Subsystem: "test",
		Name:      name,
		Help:      "test counter",
	})
}

func TestRegistry_RegisterCounter(t *testing.T) {
	registry := NewRegistry()

	err := registry.RegisterCounter("compat", "ops_total", newTestCounter("ops_total"))
	require.NoError(t, err)
}

func TestRegistry_DuplicateRegistrationRejected(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.RegisterCounter("compat", "dup_total", newTestCounter("dup_total")))

	err := registry.RegisterCounter("compat", "dup_total", newTestCounter("dup_total"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegistry_PrometheusConflictClassifiedInvalid(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.RegisterCounter("compat", "one", newTestCounter("shared_total")))

	// Different registry key, same Prometheus identity.
	err := registry.RegisterCounter("compat", "two", newTestCounter("shared_total"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.RegisterCounter("compat", "gone_total", newTestCounter("gone_total")))

	assert.True(t, registry.Unregister("compat", "gone_total"))
	assert.False(t, registry.Unregister("compat", "gone_total"))
	assert.False(t, registry.Unregister("compat", "never_there"))

	// Slot is free again after unregistration.
	require.NoError(t, registry.RegisterCounter("compat", "gone_total", newTestCounter("gone_total")))
}

func TestRegistry_CounterVecAndHistogram(t *testing.T) {
	registry := NewRegistry()

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pipecheck", Subsystem: "test", Name: "vec_total", Help: "test vec",
	}, []string{"label"})
	require.NoError(t, registry.RegisterCounterVec("compat", "vec_total", vec))

	hist := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pipecheck", Subsystem: "test", Name: "dur_seconds", Help: "test histogram",
	})
	require.NoError(t, registry.RegisterHistogram("compat", "dur_seconds", hist))

	assert.NotNil(t, registry.PrometheusRegistry())
}
