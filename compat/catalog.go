package compat

import (
	"net"
	"net/url"
	"strings"

	"github.com/c360/pipecheck/pipeline"
)

// Component-type catalogs consulted by rule conditions. Each is an explicit,
// extensible list; membership reflects the component sets the rules were
// written against and can be extended as new component types appear.
var (
	// BatchingCapableOutputs lists output types that honor upstream
	// batching hints instead of writing one message at a time.
	BatchingCapableOutputs = map[string]bool{
		"aws_s3":         true,
		"aws_sqs":        true,
		"aws_kinesis":    true,
		"gcp_pubsub":     true,
		"kafka":          true,
		"kafka_franz":    true,
		"nats_jetstream": true,
		"elasticsearch":  true,
		"sql_insert":     true,
	}

	// JSONOrientedOutputs lists output types that expect structured JSON
	// documents and will reject or corrupt binary payloads.
	JSONOrientedOutputs = map[string]bool{
		"elasticsearch": true,
		"opensearch":    true,
		"mongodb":       true,
		"couchbase":     true,
		"sql_insert":    true,
	}

	// DatabaseComponents lists component types that hold their own database
	// connection pool, regardless of whether they act as input, processor,
	// or output.
	DatabaseComponents = map[string]bool{
		"sql_select":   true,
		"sql_insert":   true,
		"sql_raw":      true,
		"mongodb":      true,
		"redis":        true,
		"cassandra":    true,
		"aws_dynamodb": true,
		"postgres_cdc": true,
		"mysql_cdc":    true,
	}

	// BlockingProcessors lists processor types that perform a blocking or
	// network round trip per message.
	BlockingProcessors = map[string]bool{
		"http":               true,
		"sql_select":         true,
		"sql_insert":         true,
		"sql_raw":            true,
		"nats_request_reply": true,
		"aws_lambda":         true,
		"subprocess":         true,
	}

	// CDCInputs lists change-data-capture input types, which emit ordered
	// row-level change events.
	CDCInputs = map[string]bool{
		"postgres_cdc":           true,
		"mysql_cdc":              true,
		"mongodb_cdc":            true,
		"cockroachdb_changefeed": true,
	}

	// IdempotentOutputs lists output types that key writes by document
	// identity, making replayed CDC events safe.
	IdempotentOutputs = map[string]bool{
		"aws_dynamodb":  true,
		"elasticsearch": true,
		"opensearch":    true,
		"mongodb":       true,
		"couchbase":     true,
		"redis_hash":    true,
		"gcp_bigtable":  true,
	}

	// SensitiveFieldKeywords are substrings that mark an interpolated field
	// as likely carrying credentials or personal data.
	SensitiveFieldKeywords = []string{
		"password",
		"secret",
		"token",
		"api_key",
		"apikey",
		"credential",
		"private_key",
		"ssn",
		"credit_card",
	}
)

// defaultRules is the catalog in evaluation order, built once at process
// start and read-only thereafter.
var defaultRules = buildRules()

// Rules returns the default compatibility rule catalog in evaluation order.
// The returned slice is shared; callers must treat it as read-only.
func Rules() []Rule {
	return defaultRules
}

func buildRules() []Rule {
	return []Rule{
		// Request/response pairing.
		{
			ID:          "sync-response-without-http-server",
			Name:        "Sync response without HTTP server",
			Description: "The sync_response output replies to the request that carried each message, which only exists when the input is http_server.",
			Severity:    SeverityError,
			Message:     "sync_response output requires an http_server input to respond to",
			Suggestion:  "Use an http_server input, or replace the output with a store-and-forward destination",
			Condition: func(p *pipeline.Pipeline) bool {
				return p.OutputType() == "sync_response" && p.InputType() != "http_server"
			},
		},
		{
			ID:          "sync-response-with-batching",
			Name:        "Sync response with batched input",
			Description: "Batching on the input delays messages past the lifetime of the HTTP request a sync_response output must answer.",
			Severity:    SeverityError,
			Message:     "sync_response cannot answer requests when the input batches messages",
			Suggestion:  "Remove the batching block from the input",
			Condition: func(p *pipeline.Pipeline) bool {
				return p.OutputType() == "sync_response" &&
					p.Input != nil && pipeline.HasField(p.Input.Config, "batching")
			},
		},
		{
			ID:          "http-server-without-sync-response",
			Name:        "HTTP server without sync response",
			Description: "An http_server input without a sync_response output acknowledges requests without returning pipeline results to the caller.",
			Severity:    SeverityInfo,
			Message:     "http_server input without a sync_response output returns no body to callers",
			Suggestion:  "Add a sync_response output if callers expect the processed result",
			Condition: func(p *pipeline.Pipeline) bool {
				return p.InputType() == "http_server" && p.OutputType() != "sync_response"
			},
		},

		// Batching.
		{
			ID:          "input-batching-output-no-batching",
			Name:        "Batched input into unbatched output",
			Description: "Batches formed at the input are flattened again when the output writes one message at a time, wasting the batching work.",
			Severity:    SeverityWarning,
			Message:     "input batching has no effect because the output writes messages individually",
			Suggestion:  "Move batching to an output that supports it, or drop the batching block",
			Condition: func(p *pipeline.Pipeline) bool {
				return p.Input != nil && pipeline.HasField(p.Input.Config, "batching") &&
					p.Output != nil && !BatchingCapableOutputs[p.Output.Type]
			},
		},
		{
			ID:          "batch-without-window",
			Name:        "Count-only batching",
			Description: "A batching policy with a count but no period can hold messages indefinitely on a quiet stream.",
			Severity:    SeverityInfo,
			Message:     "batching by count without a period can stall messages on low-volume streams",
			Suggestion:  "Add a period to the batching policy as an upper bound on latency",
			Condition: func(p *pipeline.Pipeline) bool {
				if p.Input == nil {
					return false
				}
				batching := pipeline.GetMap(p.Input.Config, "batching")
				return batching != nil &&
					pipeline.HasField(batching, "count") &&
					!pipeline.HasField(batching, "period")
			},
		},

		// Data format mismatches.
		{
			ID:          "csv-input-json-processor",
			Name:        "JSON parsing of CSV input",
			Description: "The csv input already produces structured objects; parsing message content as JSON again will fail on every message.",
			Severity:    SeverityWarning,
			Message:     "csv input produces structured data, parsing it as JSON will fail",
			Suggestion:  "Operate on the structured fields directly instead of calling parse_json",
			Condition: func(p *pipeline.Pipeline) bool {
				if p.InputType() != "csv" {
					return false
				}
				found := false
				p.Walk(func(c pipeline.Component) {
					if strings.Contains(pipeline.MappingText(c), "parse_json") {
						found = true
					}
				})
				return found
			},
		},
		{
			ID:          "binary-to-json-output",
			Name:        "Compressed payload into JSON output",
			Description: "A compress processor left unmatched by a decompress sends binary payloads into an output that expects JSON documents.",
			Severity:    SeverityError,
			Message:     "compressed binary payloads reach an output that expects JSON documents",
			Suggestion:  "Add a decompress processor before the output, or compress at the output layer instead",
			Condition: func(p *pipeline.Pipeline) bool {
				open := false
				for _, proc := range p.Processors {
					switch proc.Type {
					case "compress":
						open = true
					case "decompress":
						open = false
					}
				}
				return open && JSONOrientedOutputs[p.OutputType()]
			},
		},
		{
			ID:          "multiple-db-connections",
			Name:        "Multiple database connections",
			Description: "Each distinct database component opens its own connection pool; several in one pipeline multiply connection pressure on the databases.",
			Severity:    SeverityWarning,
			Message:     "multiple components open separate database connections in the same pipeline",
			Suggestion:  "Consolidate database access, or size connection pools for the combined load",
			Condition: func(p *pipeline.Pipeline) bool {
				distinct := map[string]bool{}
				for _, c := range p.Components() {
					if DatabaseComponents[c.Type] {
						distinct[c.Type] = true
					}
				}
				return len(distinct) > 1
			},
		},

		// Resource references.
		{
			ID:          "cache-without-resource",
			Name:        "Cache processor without resource",
			Description: "A cache processor references a cache resource by label; the label must match a cache_resources declaration.",
			Severity:    SeverityError,
			Message:     "cache processor references a resource with no matching cache_resources entry",
			Suggestion:  "Declare the cache under cache_resources with the referenced label",
			Condition: func(p *pipeline.Pipeline) bool {
				missing := false
				p.Walk(func(c pipeline.Component) {
					if c.Type == "cache" && !p.HasCache(pipeline.GetString(c.Config, "resource", "")) {
						missing = true
					}
				})
				return missing
			},
		},
		{
			ID:          "rate-limit-without-resource",
			Name:        "Rate limit processor without resource",
			Description: "A rate_limit processor references a rate-limit resource by label; the label must match a rate_limit_resources declaration.",
			Severity:    SeverityError,
			Message:     "rate_limit processor references a resource with no matching rate_limit_resources entry",
			Suggestion:  "Declare the rate limiter under rate_limit_resources with the referenced label",
			Condition: func(p *pipeline.Pipeline) bool {
				missing := false
				p.Walk(func(c pipeline.Component) {
					if c.Type == "rate_limit" && !p.HasRateLimiter(pipeline.GetString(c.Config, "resource", "")) {
						missing = true
					}
				})
				return missing
			},
		},

		// Error handling order.
		{
			ID:          "try-without-catch",
			Name:        "Try without catch",
			Description: "A try block without a later catch silently drops messages that fail inside it.",
			Severity:    SeverityWarning,
			Message:     "try processor has no catch processor after it, failed messages are dropped silently",
			Suggestion:  "Add a catch processor after the try block to handle failed messages",
			Condition: func(p *pipeline.Pipeline) bool {
				last := p.LastIndex("try")
				return last >= 0 && !p.HasProcessorAfter("catch", last)
			},
		},
		{
			ID:          "catch-before-try",
			Name:        "Catch before try",
			Description: "A catch processor only handles failures from processors before it; placed before the first try it has nothing to catch.",
			Severity:    SeverityError,
			Message:     "catch processor appears before any try processor",
			Suggestion:  "Move the catch processor after the try block it is meant to guard",
			Condition: func(p *pipeline.Pipeline) bool {
				firstCatch := p.FirstIndex("catch")
				if firstCatch < 0 {
					return false
				}
				firstTry := p.FirstIndex("try")
				return firstTry < 0 || firstCatch < firstTry
			},
		},

		// Parallel execution.
		{
			ID:          "blocking-in-parallel",
			Name:        "Blocking call inside parallel",
			Description: "Blocking or network processors inside a parallel block tie up its workers and defeat the fan-out.",
			Severity:    SeverityWarning,
			Message:     "parallel block contains a blocking or network call",
			Suggestion:  "Set a cap sized for the downstream service, or move the call out of the parallel block",
			Condition: func(p *pipeline.Pipeline) bool {
				found := false
				p.Walk(func(c pipeline.Component) {
					if c.Type != "parallel" {
						return
					}
					for _, child := range c.Children() {
						if BlockingProcessors[child.Type] {
							found = true
						}
					}
				})
				return found
			},
		},
		{
			ID:          "unbounded-parallel",
			Name:        "Unbounded parallel",
			Description: "A parallel block without a cap spawns one branch per message in the batch, with no bound on concurrent work.",
			Severity:    SeverityWarning,
			Message:     "parallel block has no cap on concurrent branches",
			Suggestion:  "Set cap to bound concurrency",
			Condition: func(p *pipeline.Pipeline) bool {
				found := false
				p.Walk(func(c pipeline.Component) {
					if c.Type == "parallel" && !pipeline.HasField(c.Config, "cap") {
						found = true
					}
				})
				return found
			},
		},
		{
			ID:          "json-parse-every-message",
			Name:        "Repeated JSON parsing",
			Description: "Several processors independently parse message content as JSON; parsing once up front avoids the repeated work.",
			Severity:    SeverityInfo,
			Message:     "multiple processors parse the same content as JSON",
			Suggestion:  "Parse JSON once in an early mapping and let later processors use the structured result",
			Condition: func(p *pipeline.Pipeline) bool {
				count := 0
				p.Walk(func(c pipeline.Component) {
					if strings.Contains(pipeline.MappingText(c), "parse_json") {
						count++
					}
				})
				return count >= 3
			},
		},

		// Change data capture.
		{
			ID:          "cdc-without-ordering",
			Name:        "CDC with parallel processing",
			Description: "CDC inputs emit ordered change events; a parallel block reorders them and downstream state diverges from the source.",
			Severity:    SeverityWarning,
			Message:     "parallel processing breaks the event ordering a CDC input provides",
			Suggestion:  "Process CDC events sequentially, or partition the parallel work by primary key",
			Condition: func(p *pipeline.Pipeline) bool {
				if !CDCInputs[p.InputType()] {
					return false
				}
				found := false
				p.Walk(func(c pipeline.Component) {
					if c.Type == "parallel" {
						found = true
					}
				})
				return found
			},
		},
		{
			ID:          "cdc-to-non-idempotent-output",
			Name:        "CDC into non-idempotent output",
			Description: "CDC streams replay events after restarts; outputs that do not key writes by document identity will duplicate them.",
			Severity:    SeverityWarning,
			Message:     "CDC events replayed after a restart will be duplicated by this output",
			Suggestion:  "Write to a keyed store, or deduplicate on the change event's primary key",
			Condition: func(p *pipeline.Pipeline) bool {
				return CDCInputs[p.InputType()] &&
					p.Output != nil && !IdempotentOutputs[p.Output.Type]
			},
		},

		// Security.
		{
			ID:          "http-without-tls",
			Name:        "HTTP call without TLS",
			Description: "An http processor calling a non-loopback host over plain HTTP sends message content unencrypted.",
			Severity:    SeverityWarning,
			Message:     "http processor calls a remote host over plain HTTP",
			Suggestion:  "Use an https:// URL for non-local endpoints",
			Condition: func(p *pipeline.Pipeline) bool {
				found := false
				p.Walk(func(c pipeline.Component) {
					if c.Type == "http" && isPlainRemoteURL(pipeline.GetString(c.Config, "url", "")) {
						found = true
					}
				})
				return found
			},
		},
		{
			ID:          "sensitive-data-logging",
			Name:        "Sensitive data in log output",
			Description: "A log processor interpolating credential-like fields writes secrets into the log stream.",
			Severity:    SeverityWarning,
			Message:     "log processor interpolates a field that looks like sensitive data",
			Suggestion:  "Redact or drop sensitive fields before logging",
			Condition: func(p *pipeline.Pipeline) bool {
				found := false
				p.Walk(func(c pipeline.Component) {
					if c.Type != "log" {
						return
					}
					message := strings.ToLower(pipeline.GetString(c.Config, "message", ""))
					for _, keyword := range SensitiveFieldKeywords {
						if strings.Contains(message, keyword) {
							found = true
						}
					}
				})
				return found
			},
		},

		// Component-specific settings.
		{
			ID:          "kafka-consumer-group-missing",
			Name:        "Kafka input without consumer group",
			Description: "Without a consumer_group the kafka input cannot persist offsets or share partitions across instances.",
			Severity:    SeverityInfo,
			Message:     "kafka input has no consumer_group, offsets will not be persisted",
			Suggestion:  "Set consumer_group to enable offset tracking and scaling",
			Condition: func(p *pipeline.Pipeline) bool {
				typ := p.InputType()
				return (typ == "kafka" || typ == "kafka_franz") &&
					!pipeline.HasField(p.Input.Config, "consumer_group")
			},
		},
		{
			ID:          "nats-request-timeout",
			Name:        "NATS request without timeout",
			Description: "A nats_request_reply processor without an explicit timeout blocks the pipeline on an unresponsive responder.",
			Severity:    SeverityWarning,
			Message:     "nats_request_reply processor has no explicit timeout",
			Suggestion:  "Set a timeout so unresponsive responders cannot stall the pipeline",
			Condition: func(p *pipeline.Pipeline) bool {
				found := false
				p.Walk(func(c pipeline.Component) {
					if c.Type == "nats_request_reply" && !pipeline.HasField(c.Config, "timeout") {
						found = true
					}
				})
				return found
			},
		},
		{
			ID:          "switch-without-default",
			Name:        "Switch output without default case",
			Description: "A switch output whose cases all carry a check drops any message that matches none of them.",
			Severity:    SeverityWarning,
			Message:     "switch output has no default case, unmatched messages are dropped",
			Suggestion:  "Add a final case without a check as the fallthrough destination",
			Condition: func(p *pipeline.Pipeline) bool {
				if p.OutputType() != "switch" {
					return false
				}
				cases := pipeline.GetSlice(p.Output.Config, "cases")
				if cases == nil {
					return false
				}
				for _, cs := range cases {
					obj, ok := cs.(map[string]any)
					if !ok {
						continue
					}
					if !pipeline.HasField(obj, "check") {
						return false
					}
				}
				return true
			},
		},
	}
}

// isPlainRemoteURL reports whether raw is an absolute http:// URL whose host
// is not loopback.
func isPlainRemoteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "http" || u.Host == "" {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return false
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return false
	}
	return true
}
