package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		want     string
	}{
		{name: "info", severity: SeverityInfo, want: "info"},
		{name: "warning", severity: SeverityWarning, want: "warning"},
		{name: "critical", severity: SeverityCritical, want: "critical"},
		{name: "unknown value", severity: Severity(99), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.String())
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	// The levels are ordered least to most severe
	assert.Less(t, SeverityInfo, SeverityWarning)
	assert.Less(t, SeverityWarning, SeverityCritical)
}
