package compat

import "strings"

// Severity markers used in rendered reports.
const (
	glyphError   = "❌"
	glyphWarning = "⚠️"
	glyphInfo    = "ℹ️"
)

// FormatWarnings renders a warnings list into a human-readable report.
// An empty list renders to an empty string. Warnings are grouped by severity
// (errors first, then warnings, then infos); within a severity, the original
// trigger order is preserved. A suggestion, when present, follows its warning
// on an indented arrow-prefixed line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Compatibility Warnings\n")

	for _, severity := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		for _, w := range warnings {
			if w.Severity != severity {
				continue
			}
			b.WriteString(severityGlyph(severity))
			b.WriteString(" ")
			b.WriteString(w.Message)
			b.WriteString("\n")
			if w.Suggestion != "" {
				b.WriteString("   → ")
				b.WriteString(w.Suggestion)
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func severityGlyph(s Severity) string {
	switch s {
	case SeverityError:
		return glyphError
	case SeverityWarning:
		return glyphWarning
	default:
		return glyphInfo
	}
}
