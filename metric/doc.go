// Package metric provides a Prometheus metrics registry for pipecheck.
//
// The registry wraps a dedicated prometheus.Registry and tracks collectors by
// an owner.name key so that duplicate registrations are rejected with a
// classified error instead of a Prometheus panic. Instrumented components
// (the compatibility checker) register their collectors at construction time
// and the caller decides whether and where to expose them.
//
// Metrics are optional throughout: a nil registry disables instrumentation
// without changing any code path.
package metric
