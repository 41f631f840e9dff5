package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Format selects the output serialization for a downgraded document
type Format string

const (
	// FormatJSON writes indented JSON (the default)
	FormatJSON Format = "json"
	// FormatYAML writes YAML
	FormatYAML Format = "yaml"
	// FormatRedoc writes a standalone Redoc HTML page embedding the document
	FormatRedoc Format = "redoc"
)

// DefaultFormat is the format used when the caller does not select one
const DefaultFormat = FormatJSON

// ValidFormats returns the supported output formats
func ValidFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatRedoc}
}

// ParseFormat parses a format name. An empty string selects DefaultFormat.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "":
		return DefaultFormat, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatRedoc:
		return FormatRedoc, nil
	default:
		return "", fmt.Errorf("writer: invalid format %q. Valid formats: %s, %s, %s", s, FormatJSON, FormatYAML, FormatRedoc)
	}
}

// extension returns the file extension for the format, without the dot
func (f Format) extension() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatRedoc:
		return "html"
	default:
		return "json"
	}
}

// Marshal serializes a document in the given format.
// The title is only used by the redoc format for the HTML page title; pass
// an empty string to use the default.
func Marshal(doc map[string]any, format Format, title string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("writer: marshaling to JSON: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("writer: marshaling to YAML: %w", err)
		}
		return data, nil
	case FormatRedoc:
		return renderRedocHTML(doc, title)
	default:
		return nil, fmt.Errorf("writer: invalid format %q. Valid formats: %s, %s, %s", format, FormatJSON, FormatYAML, FormatRedoc)
	}
}

// DeriveOutputPath derives an output file name from the source path and
// format, e.g. "api.yaml" with FormatJSON becomes "api.3.0.3.json".
// Sources without a recognizable file name derive from "openapi".
func DeriveOutputPath(sourcePath string, format Format) string {
	base := filepath.Base(sourcePath)
	if base == "." || base == "/" || base == "-" || base == "" {
		base = "openapi"
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return fmt.Sprintf("%s.3.0.3.%s", base, format.extension())
}

// WriteFile serializes the document and writes it to outputPath.
// If outputPath is empty, a name derived from sourcePath is used (see
// DeriveOutputPath). The written path is returned.
func WriteFile(doc map[string]any, outputPath, sourcePath string, format Format) (string, error) {
	if outputPath == "" {
		outputPath = DeriveOutputPath(sourcePath, format)
	}

	if err := rejectSymlink(outputPath); err != nil {
		return "", err
	}

	title := ""
	if format == FormatRedoc {
		title = TitleFromPath(sourcePath)
	}

	data, err := Marshal(doc, format, title)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return "", fmt.Errorf("writer: writing output file: %w", err)
	}
	return outputPath, nil
}

// rejectSymlink refuses to write through a symlink, which could redirect
// output to an unintended location.
func rejectSymlink(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("writer: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("writer: refusing to write to symlink: %s", path)
	}
	return nil
}
