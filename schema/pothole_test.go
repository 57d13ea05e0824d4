package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	testCases := []struct {
		input    string
		expected Severity
	}{
		{"LOW", SeverityLow},
		{"MEDIUM", SeverityMedium},
		{"HIGH", SeverityHigh},
		{"high", SeverityHigh},
		{"Medium", SeverityMedium},
		{"", SeverityLow},
		{"CRITICAL", SeverityLow},
		{"severe", SeverityLow},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseSeverity(tc.input), "input: %q", tc.input)
	}
}

func TestValidSeverity(t *testing.T) {
	assert.True(t, ValidSeverity("LOW"))
	assert.True(t, ValidSeverity("MEDIUM"))
	assert.True(t, ValidSeverity("HIGH"))

	// update paths reject instead of falling back, so matching is exact
	assert.False(t, ValidSeverity("high"))
	assert.False(t, ValidSeverity(""))
	assert.False(t, ValidSeverity("CRITICAL"))
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "In Progress", "Fixed"} {
		status, ok := ParseStatus(valid)
		assert.True(t, ok, "input: %q", valid)
		assert.Equal(t, Status(valid), status)
	}

	for _, invalid := range []string{"", "pending", "IN PROGRESS", "Done", "fixed"} {
		_, ok := ParseStatus(invalid)
		assert.False(t, ok, "input: %q", invalid)
	}
}
