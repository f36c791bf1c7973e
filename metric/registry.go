package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/pipecheck/errors"
)

// Registry manages the registration and lifecycle of pipecheck metrics.
// It wraps a dedicated Prometheus registry and rejects duplicate
// registrations by owner.name key.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates an empty metrics registry backed by a fresh Prometheus
// registry.
func NewRegistry() *Registry {
	return &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		registeredMetrics:  make(map[string]prometheus.Collector),
	}
}

// PrometheusRegistry returns the underlying Prometheus registry, for wiring
// into an exposition handler by the calling surface.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// RegisterCounter registers a counter metric for an owner.
func (r *Registry) RegisterCounter(owner, name string, counter prometheus.Counter) error {
	return r.register(owner, name, counter, "RegisterCounter")
}

// RegisterCounterVec registers a counter vector metric for an owner.
func (r *Registry) RegisterCounterVec(owner, name string, counterVec *prometheus.CounterVec) error {
	return r.register(owner, name, counterVec, "RegisterCounterVec")
}

// RegisterHistogram registers a histogram metric for an owner.
func (r *Registry) RegisterHistogram(owner, name string, histogram prometheus.Histogram) error {
	return r.register(owner, name, histogram, "RegisterHistogram")
}

// Unregister removes a metric from the registry. Returns false when no metric
// was registered under the owner.name key.
func (r *Registry) Unregister(owner, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", owner, name)

	collector, exists := r.registeredMetrics[key]
	if !exists {
		return false
	}

	success := r.prometheusRegistry.Unregister(collector)
	if success {
		delete(r.registeredMetrics, key)
	}

	return success
}

func (r *Registry) register(owner, name string, collector prometheus.Collector, operation string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", owner, name)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("metric %s already registered for %s", name, owner),
			"Registry", operation, "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.WrapInvalid(err, "Registry", operation,
				fmt.Sprintf("prometheus conflict for metric %s", name))
		}
		return errors.WrapFatal(err, "Registry", operation,
			"failed to register collector with prometheus")
	}

	r.registeredMetrics[key] = collector
	return nil
}
