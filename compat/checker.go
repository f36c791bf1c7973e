package compat

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/c360/pipecheck/metric"
	"github.com/c360/pipecheck/pipeline"
)

// Checker evaluates a compatibility rule catalog against pipeline
// configurations. A Checker holds no per-evaluation state; a single instance
// is safe for concurrent use.
type Checker struct {
	rules   []Rule
	logger  *slog.Logger
	metrics *checkerMetrics
}

// NewChecker creates a checker over the given rule catalog. A nil catalog
// selects the default rules and a nil logger selects slog.Default(). The
// metrics registry is optional; pass nil to disable instrumentation.
func NewChecker(rules []Rule, logger *slog.Logger, registry *metric.Registry) (*Checker, error) {
	if rules == nil {
		rules = Rules()
	}
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := newCheckerMetrics(registry)
	if err != nil {
		return nil, err
	}

	return &Checker{
		rules:   rules,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Check normalizes the raw configuration once and evaluates every rule in
// catalog order, returning the triggered warnings in that same order. The
// call is deterministic, never mutates raw, and never fails: a rule condition
// that panics is logged and treated as not triggered.
func (c *Checker) Check(raw map[string]any) []Warning {
	start := time.Now()
	parsed := pipeline.Parse(raw)

	var warnings []Warning
	for _, rule := range c.rules {
		if c.evaluate(rule, parsed) {
			warnings = append(warnings, Warning{
				Rule:       rule.ID,
				Severity:   rule.Severity,
				Message:    rule.Message,
				Suggestion: rule.Suggestion,
			})
		}
	}

	c.metrics.recordCheck(warnings, time.Since(start))
	return warnings
}

// evaluate runs one rule condition behind a recovery boundary. A condition
// that panics on an unexpected shape must not abort evaluation of the
// remaining rules.
func (c *Checker) evaluate(rule Rule, p *pipeline.Pipeline) (triggered bool) {
	defer func() {
		if r := recover(); r != nil {
			triggered = false
			c.loggerOrDefault().Warn("rule condition failed, treating as not triggered",
				"rule", rule.ID,
				"panic", r)
			c.metrics.recordRuleFailure(rule.ID)
		}
	}()

	if rule.Condition == nil {
		return false
	}
	return rule.Condition(p)
}

// Result is the response of one compatibility analysis.
type Result struct {
	ID       string    `json:"id"`
	Warnings []Warning `json:"warnings"`
	Report   string    `json:"report,omitempty"`
}

// defaultChecker evaluates the default catalog without metrics. Built once;
// read-only thereafter.
var defaultChecker = &Checker{rules: defaultRules}

// Check evaluates the default rule catalog against a raw pipeline
// configuration and returns the triggered warnings in catalog order.
func Check(raw map[string]any) []Warning {
	return defaultChecker.Check(raw)
}

// CheckCompatibility evaluates the default rule catalog against a raw
// pipeline configuration and returns the warnings together with a rendered
// report and a unique analysis id. This is the library's tool-call surface;
// decoding YAML or JSON text into raw belongs to the caller.
func CheckCompatibility(raw map[string]any) Result {
	warnings := defaultChecker.Check(raw)
	return Result{
		ID:       uuid.NewString(),
		Warnings: warnings,
		Report:   FormatWarnings(warnings),
	}
}

// loggerOrDefault resolves the logger at call time so the package-level
// checker honors the process-wide slog default configured by the calling
// surface.
func (c *Checker) loggerOrDefault() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}
