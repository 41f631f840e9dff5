// Package severity provides severity level constants and utilities
// for issues reported by the downgrader package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

// Severity indicates the severity level of an issue found during a downgrade.
type Severity int

const (
	// SeverityInfo indicates informational messages about rewrite choices.
	// Every schema rewrite the downgrader applies is reported at this level.
	SeverityInfo Severity = iota

	// SeverityWarning indicates best-effort transformations or input that is
	// outside the expected 3.1.x range but can still be processed.
	SeverityWarning

	// SeverityCritical indicates documents that cannot be downgraded
	// (for example an OAS 2.0 source).
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
