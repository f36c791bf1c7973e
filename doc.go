// Package pipecheck provides a compatibility rule engine for declarative
// stream-processing pipeline configurations.
//
// # Overview
//
// A pipeline configuration describes one input stage, an ordered list of
// transformation processors, one output stage, and named shared resources
// (caches, rate limiters). Pipecheck normalizes that heterogeneous,
// loosely-typed configuration into a canonical in-memory form and evaluates
// a static catalog of independent diagnostic rules against it, producing
// severity-ranked, human-actionable warnings.
//
// The engine is deliberately tolerant: malformed sections degrade to absent
// fields rather than failing the parse, and a rule condition that panics on
// an unexpected shape is isolated, logged, and treated as not triggered.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│        Raw pipeline config          │  plain map/slice structure
//	│   (decoded YAML/JSON, untyped)      │  from the calling surface
//	└─────────────────────────────────────┘
//	           ↓ pipeline.Parse
//	┌─────────────────────────────────────┐
//	│        pipeline.Pipeline            │  canonical form: input, ordered
//	│  (components, resources, scanners)  │  processors, output, resources
//	└─────────────────────────────────────┘
//	           ↓ compat.Checker
//	┌─────────────────────────────────────┐
//	│        compat rule catalog          │  ordered table of independent
//	│   (22 rules, pure conditions)       │  conditions, evaluated in order
//	└─────────────────────────────────────┘
//	           ↓
//	┌─────────────────────────────────────┐
//	│      []compat.Warning / report      │  severity-grouped text report
//	└─────────────────────────────────────┘
//
// # Packages
//
//   - pipeline: canonical pipeline model, tolerant normalizer, structural
//     scanners over ordered and nested processor regions
//   - compat: rule catalog, evaluator, warning formatter
//   - errors: classified error handling for the edges (CLI, metrics)
//   - metric: Prometheus metrics registry
//   - cmd/pipecheck: CLI surface that decodes YAML and prints the report
//
// Pipecheck does not execute or simulate pipelines, does not validate
// configurations against full component schemas, and performs no I/O of its
// own. Decoding YAML or JSON text belongs to the caller.
package pipecheck
