package writer

import (
	"encoding/json"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// redocHTMLTemplate is the standalone Redoc page. The document is embedded as
// JSON and rendered client-side by the Redoc standalone bundle.
const redocHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta http-equiv="content-type" content="text/html; charset=UTF-8">
    <title>%s - ReDoc</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body {
            margin: 0;
            padding: 0;
        }
    </style>
</head>
<body>
    <div id="redoc-container"></div>
    <script src="https://cdn.jsdelivr.net/npm/redoc/bundles/redoc.standalone.js"> </script>
    <script>
        var spec = %s;
        Redoc.init(spec, {}, document.getElementById("redoc-container"));
    </script>
</body>
</html>
`

// defaultRedocTitle is used when no title can be derived from the source
const defaultRedocTitle = "API Reference"

// TitleFromPath derives a human-readable page title from a spec file path:
// "my-petstore.yaml" becomes "My Petstore". Returns defaultRedocTitle when
// nothing usable can be derived.
func TitleFromPath(sourcePath string) string {
	base := filepath.Base(sourcePath)
	if base == "." || base == "/" || base == "-" || base == "" {
		return defaultRedocTitle
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	// Word separators commonly found in spec file names
	base = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return defaultRedocTitle
	}

	// Use golang.org/x/text/cases for proper Unicode title casing
	return cases.Title(language.English).String(base)
}

// renderRedocHTML embeds the document as JSON in the Redoc HTML template.
// The title prefers the document's own info.title, then the derived title.
func renderRedocHTML(doc map[string]any, title string) ([]byte, error) {
	if infoTitle := documentTitle(doc); infoTitle != "" {
		title = infoTitle
	}
	if title == "" {
		title = defaultRedocTitle
	}

	specJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("writer: marshaling document for redoc: %w", err)
	}

	return fmt.Appendf(nil, redocHTMLTemplate, html.EscapeString(title), specJSON), nil
}

// documentTitle returns the document's info.title if present
func documentTitle(doc map[string]any) string {
	info, ok := doc["info"].(map[string]any)
	if !ok {
		return ""
	}
	title, _ := info["title"].(string)
	return title
}
