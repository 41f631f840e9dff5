package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdowngrade"
)

// Parser handles loading OpenAPI specification documents
type Parser struct {
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "oasdowngrade" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		UserAgent: oasdowngrade.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the loaded OpenAPI specification document and metadata.
//
// The Document field holds the raw parsed tree and is owned by the caller.
// The downgrader package mutates it in place, so parse a fresh copy (or deep
// copy the map) if the original tree must be preserved.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the detected OAS version string (e.g., "2.0", "3.0.3", "3.1.0")
	Version string
	// OASVersion is the enumerated version of the OpenAPI specification.
	// Unknown when the version string is not a recognized release.
	OASVersion OASVersion
	// Document contains the raw parsed document tree
	Document map[string]any
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// IsOAS31 returns true if the loaded document declares an OpenAPI 3.1.x version,
// including patch releases newer than this library knows about.
func (pr *ParseResult) IsOAS31() bool {
	return pr.OASVersion.IsOAS31() || IsOAS31Series(pr.Version)
}

// Parse parses an OpenAPI specification file or URL
// For URLs (http:// or https://), the content is fetched and parsed
// For local files, the file is read and parsed
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat
	var loadStart time.Time
	var loadTime time.Duration

	if isURL(specPath) {
		// Fetch content from URL
		var contentType string
		loadStart = time.Now()
		data, contentType, err = p.fetchURL(specPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, err
		}

		// Try to detect format from URL path and Content-Type header
		format = detectFormatFromURL(specPath, contentType)
	} else {
		// Read from file
		loadStart = time.Now()
		data, err = os.ReadFile(specPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}

		// Detect format from file extension
		format = detectFormatFromPath(specPath)
	}

	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}

	res.SourcePath = specPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))

	// If format was detected from path/URL, it wins over content sniffing
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}

	p.log().Debug("parsed specification",
		"path", specPath, "format", string(res.SourceFormat), "version", res.Version)

	return res, nil
}

// ParseReader parses an OpenAPI specification from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}

	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}

	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	return res, nil
}

// ParseBytes parses an OpenAPI specification from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}

	res.SourceSize = int64(len(data))
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	return res, nil
}

// parseBytes decodes the raw content into a generic document tree and detects
// the declared OAS version.
func (p *Parser) parseBytes(data []byte) (*ParseResult, error) {
	result := &ParseResult{}

	// Detect format early for the JSON fast-path
	format := detectFormatFromContent(data)
	result.SourceFormat = format

	var rawData map[string]any
	if format == SourceFormatJSON {
		// JSON fast-path: skip YAML decoding overhead when input sniffs as JSON
		if err := json.Unmarshal(data, &rawData); err != nil {
			return nil, fmt.Errorf("parser: failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &rawData); err != nil {
			return nil, fmt.Errorf("parser: failed to parse YAML/JSON: %w", err)
		}
	}

	if rawData == nil {
		return nil, fmt.Errorf("parser: document root is not a mapping")
	}
	result.Document = rawData

	version, err := detectVersion(rawData)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to detect OAS version: %w", err)
	}
	result.Version = version

	// Unknown enum values are fine: future 3.1.x patch releases still downgrade
	oasVersion, _ := ParseVersion(version)
	result.OASVersion = oasVersion

	return result, nil
}

// detectVersion extracts the OAS version string from the top-level
// 'openapi' (3.x) or 'swagger' (2.0) field.
func detectVersion(doc map[string]any) (string, error) {
	if v, ok := doc["openapi"]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s, nil
		}
		return "", fmt.Errorf("'openapi' field is not a non-empty string")
	}
	if v, ok := doc["swagger"]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s, nil
		}
		return "", fmt.Errorf("'swagger' field is not a non-empty string")
	}
	return "", fmt.Errorf("document has neither an 'openapi' nor a 'swagger' field")
}
