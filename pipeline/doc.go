// Package pipeline defines the canonical in-memory form of a declarative
// stream-processing pipeline configuration and the tolerant normalizer that
// produces it.
//
// A raw configuration is a plain nested map/slice structure (typically the
// result of decoding YAML or JSON) shaped roughly as:
//
//	input:
//	  kafka:
//	    addresses: ["localhost:9092"]
//	pipeline:
//	  processors:
//	    - mapping: "root = this"
//	output:
//	  aws_s3:
//	    bucket: archive
//	cache_resources:
//	  - label: mycache
//	    memory: {}
//
// Each component position is a single-key object whose key names the
// component type. Parse never fails: missing sections become nil fields,
// malformed entries are skipped, and multi-key component objects resolve to
// their first key in sorted order so repeated parses are deterministic.
//
// The package also provides structural scanners (sequence-position lookups
// and recursive walks into nested processor blocks) used by compatibility
// rules to inspect ordered and nested regions of the processor list.
package pipeline
