// Package compat implements the compatibility rule engine: an ordered,
// static catalog of independent diagnostic rules evaluated against the
// canonical pipeline form, producing severity-ranked warnings.
//
// Rules are data. Each catalog entry pairs immutable metadata (id, severity,
// message, suggestion) with a pure condition function over *pipeline.Pipeline;
// no rule depends on another rule's outcome, so every rule is independently
// testable against a synthetic pipeline. The catalog is built once at process
// start and treated as read-only thereafter, which makes concurrent
// evaluation safe without locking.
//
// Evaluation is total: a condition that panics on an unexpected configuration
// shape is recovered at the per-rule boundary, logged, and treated as not
// triggered. A syntactically valid pipeline object never produces a program
// fault, only zero or more warnings.
//
// Severity classifies pipeline quality, not program health:
//
//   - error: the pipeline will not work as configured
//   - warning: the pipeline is risky or likely misconfigured
//   - info: advisory, a better pattern exists
package compat
