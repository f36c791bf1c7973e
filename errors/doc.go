// Package errors provides standardized error handling for pipecheck's edge
// surfaces: the CLI loader and the metrics registry.
//
// The compatibility engine itself never returns errors; a malformed pipeline
// configuration degrades to absent fields during normalization and a failing
// rule condition is isolated at the per-rule boundary. The classification
// machinery here exists for the code around the engine, where real faults
// (unreadable files, undecodable YAML, metric registration conflicts) occur.
//
// Errors are wrapped with component and operation context:
//
//	errors.WrapInvalid(err, "Loader", "Load", "YAML decoding")
//
// and classified as transient, invalid, or fatal so callers can decide
// between retrying, rejecting the input, and giving up.
package errors
