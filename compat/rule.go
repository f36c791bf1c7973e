package compat

import "github.com/c360/pipecheck/pipeline"

// Severity is the diagnostic classification of a triggered rule. It grades
// pipeline quality, not program faults; evaluation itself never fails.
type Severity string

// Severity levels, ordered from blocking to advisory.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Valid reports whether s is one of the defined severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Rule is one entry of the compatibility catalog. Condition must be a pure
// function of the pipeline with no observable side effects and no dependency
// on any other rule's outcome.
type Rule struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
	Message     string
	Suggestion  string
	Condition   func(*pipeline.Pipeline) bool
}

// Warning is one triggered diagnostic. Produced per evaluation call and never
// persisted.
type Warning struct {
	Rule       string   `json:"rule"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}
