package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasdowngrade/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name: "info issue",
			issue: Issue{
				Path:     "components.schemas.Pet.properties.tag",
				Message:  "Rewrote 'const' to single-value 'enum'",
				Severity: severity.SeverityInfo,
			},
			want: "ℹ components.schemas.Pet.properties.tag: Rewrote 'const' to single-value 'enum'",
		},
		{
			name: "warning issue",
			issue: Issue{
				Path:     "openapi",
				Message:  "Source is not an OAS 3.1.x document",
				Severity: severity.SeverityWarning,
			},
			want: "⚠ openapi: Source is not an OAS 3.1.x document",
		},
		{
			name: "critical issue",
			issue: Issue{
				Path:     "swagger",
				Message:  "OAS 2.0 documents cannot be downgraded",
				Severity: severity.SeverityCritical,
			},
			want: "✗ swagger: OAS 2.0 documents cannot be downgraded",
		},
		{
			name: "issue with context",
			issue: Issue{
				Path:     "components.schemas.Pet",
				Message:  "Removed 'null' from type array",
				Severity: severity.SeverityInfo,
				Context:  "set nullable: true",
			},
			want: "ℹ components.schemas.Pet: Removed 'null' from type array\n    Context: set nullable: true",
		},
		{
			name: "unknown severity",
			issue: Issue{
				Path:     "info",
				Message:  "something",
				Severity: severity.Severity(42),
			},
			want: "? info: something",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}
