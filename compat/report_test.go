package compat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWarnings_Empty(t *testing.T) {
	assert.Equal(t, "", FormatWarnings(nil))
	assert.Equal(t, "", FormatWarnings([]Warning{}))
}

func TestFormatWarnings_GroupsBySeverity(t *testing.T) {
	warnings := []Warning{
		{Rule: "a", Severity: SeverityInfo, Message: "advisory one"},
		{Rule: "b", Severity: SeverityError, Message: "broken one", Suggestion: "fix it"},
		{Rule: "c", Severity: SeverityWarning, Message: "risky one"},
		{Rule: "d", Severity: SeverityError, Message: "broken two"},
	}

	report := FormatWarnings(warnings)

	expected := "Compatibility Warnings\n" +
		"❌ broken one\n" +
		"   → fix it\n" +
		"❌ broken two\n" +
		"⚠️ risky one\n" +
		"ℹ️ advisory one\n"
	assert.Equal(t, expected, report)
}

func TestFormatWarnings_PreservesOrderWithinSeverity(t *testing.T) {
	warnings := []Warning{
		{Rule: "first", Severity: SeverityWarning, Message: "first warning"},
		{Rule: "second", Severity: SeverityWarning, Message: "second warning"},
	}

	report := FormatWarnings(warnings)

	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Compatibility Warnings", lines[0])
	assert.Contains(t, lines[1], "first warning")
	assert.Contains(t, lines[2], "second warning")
}

func TestFormatWarnings_SuggestionOnlyWhenPresent(t *testing.T) {
	report := FormatWarnings([]Warning{
		{Rule: "a", Severity: SeverityError, Message: "no suggestion here"},
	})

	assert.NotContains(t, report, "→")
}
