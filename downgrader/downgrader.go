package downgrader

import (
	"fmt"
	"time"

	"github.com/erraggy/oasdowngrade/internal/issues"
	"github.com/erraggy/oasdowngrade/internal/severity"
	"github.com/erraggy/oasdowngrade/parser"
)

// TargetVersion is the OAS version string that downgraded documents declare.
const TargetVersion = "3.0.3"

// Severity indicates the severity level of a downgrade issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about rewrites applied
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates best-effort transformations or unexpected input versions
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates documents that cannot be downgraded
	SeverityCritical = severity.SeverityCritical
)

// Issue represents a single downgrade rewrite, notice, or problem
type Issue = issues.Issue

// Result contains the results of downgrading an OpenAPI specification
type Result struct {
	// Document contains the downgraded document tree.
	// This is the same tree that was passed in: the rewrite mutates in place.
	Document map[string]any
	// SourcePath is the input source path the document was read from
	SourcePath string
	// SourceVersion is the detected source OAS version string
	SourceVersion string
	// SourceOASVersion is the enumerated source OAS version
	SourceOASVersion parser.OASVersion
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// TargetVersion is always "3.0.3"
	TargetVersion string
	// Issues contains all downgrade issues, one per rewrite applied
	Issues []Issue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if the downgrade completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// HasCriticalIssues returns true if there are any critical issues
func (r *Result) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// Downgrader rewrites OpenAPI 3.1 documents to OAS 3.0.3
type Downgrader struct {
	// StrictMode causes the downgrade to fail on any issues (even warnings)
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Downgrader instance with default settings
func New() *Downgrader {
	return &Downgrader{
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (d *Downgrader) log() parser.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return parser.NopLogger{}
}

// Downgrade is a convenience function that downgrades an OpenAPI specification
// file to OAS 3.0.3 with default settings. It's equivalent to creating a
// Downgrader with New() and calling Downgrade().
//
// Example:
//
//	result, err := downgrader.Downgrade("openapi-3.1.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Success {
//	    // Handle critical issues
//	}
func Downgrade(specPath string) (*Result, error) {
	return New().Downgrade(specPath)
}

// DowngradeParsed is a convenience function that downgrades an already-parsed
// OpenAPI specification to OAS 3.0.3.
//
// Example:
//
//	parseResult, _ := parser.New().Parse("openapi-3.1.yaml")
//	result, err := downgrader.DowngradeParsed(*parseResult)
func DowngradeParsed(parseResult parser.ParseResult) (*Result, error) {
	return New().DowngradeParsed(parseResult)
}

// Downgrade parses an OpenAPI specification file or URL and downgrades it to OAS 3.0.3
func (d *Downgrader) Downgrade(specPath string) (*Result, error) {
	p := parser.New()
	p.Logger = d.Logger

	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("downgrader: failed to parse specification: %w", err)
	}

	return d.DowngradeParsed(*parseResult)
}

// DowngradeParsed downgrades an already-parsed OpenAPI specification to OAS 3.0.3.
//
// The document tree in parseResult.Document is rewritten in place and is also
// returned via Result.Document.
func (d *Downgrader) DowngradeParsed(parseResult parser.ParseResult) (*Result, error) {
	if parseResult.Document == nil {
		return nil, fmt.Errorf("downgrader: parse result has no document")
	}

	result := &Result{
		SourcePath:       parseResult.SourcePath,
		SourceVersion:    parseResult.Version,
		SourceOASVersion: parseResult.OASVersion,
		SourceFormat:     parseResult.SourceFormat,
		TargetVersion:    TargetVersion,
		Issues:           make([]Issue, 0),
		LoadTime:         parseResult.LoadTime,
		SourceSize:       parseResult.SourceSize,
	}

	if parseResult.OASVersion.IsOAS2() {
		// A 2.0 document has no 3.0.3 equivalent reachable by these rewrites
		result.Issues = append(result.Issues, Issue{
			Path:     "swagger",
			Message:  "OAS 2.0 (Swagger) documents cannot be downgraded to 3.0.3",
			Severity: SeverityCritical,
			Context:  "use a 2.0 to 3.x converter first",
		})
		result.Document = parseResult.Document
		d.updateCounts(result)
		result.Success = false
		if d.StrictMode {
			return result, fmt.Errorf("downgrader: downgrade failed in strict mode: %d critical issue(s)", result.CriticalCount)
		}
		return result, nil
	}

	if !parseResult.IsOAS31() {
		result.Issues = append(result.Issues, Issue{
			Path:     "openapi",
			Message:  fmt.Sprintf("Source declares OAS %s, not a 3.1.x version", parseResult.Version),
			Severity: SeverityWarning,
			Context:  "downgrading best-effort; the rewrites are no-ops on well-formed 3.0.x schemas",
		})
	}

	w := &rewriter{
		result: result,
		log:    d.log(),
	}
	w.rewriteDocument(parseResult.Document)
	result.Document = parseResult.Document

	d.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// In strict mode, fail on any issues
	if d.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("downgrader: downgrade failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !d.IncludeInfo {
		filtered := make([]Issue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// updateCounts updates the issue counts in the result
func (d *Downgrader) updateCounts(result *Result) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}
