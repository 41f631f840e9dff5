// Package parser loads OpenAPI specification documents into generic in-memory trees.
//
// Unlike a full OpenAPI parser, this package does not decode documents into
// version-specific typed structures. The downgrader operates on the raw
// document tree (map[string]any), so the parser's job is limited to:
//
//   - reading the source from a file path, http(s) URL, io.Reader, or byte slice
//   - detecting the source format (JSON or YAML) from the path, Content-Type,
//     or content itself
//   - decoding the content into a map[string]any via YAML (a JSON superset),
//     with a JSON fast-path for JSON input
//   - detecting the OAS version from the top-level 'openapi' or 'swagger' field
//
// # Quick Start
//
//	p := parser.New()
//	result, err := p.Parse("openapi-3.1.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s Format: %s\n", result.Version, result.SourceFormat)
//
// The returned ParseResult.Document is owned by the caller and is what the
// downgrader package consumes.
package parser
